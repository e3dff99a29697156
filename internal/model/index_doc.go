package model

import (
	"time"

	"gorm.io/datatypes"
)

// IndexDoc 搜索索引文档 outbox
// 索引服务按商品维度落一行最新投影，外部索引消费方按 UpdatedAt 增量拉取
// 文档内容是 IndexProjector 的输出，记录 ID 由消费方自行补充
type IndexDoc struct {
	BaseModel

	ShopItemID int64 `gorm:"uniqueIndex;not null"`

	// 投影结果 {searchable, name, shop_id, category_id}
	Document datatypes.JSON `gorm:"type:jsonb"`

	// 最近一次投影时间
	ProjectedAt time.Time
}

func (IndexDoc) TableName() string {
	return "index_docs"
}
