package model

import "time"

// ItemStat 商品出站点击统计
// 每个商品一行，点击计数用原子自增更新，避免读改写竞争
type ItemStat struct {
	BaseModel

	ShopItemID int64     `gorm:"uniqueIndex;not null"`
	ShopItem   *ShopItem `gorm:"foreignKey:ShopItemID"`

	// 出站点击总数
	ClickCount int64 `gorm:"default:0"`
	// 最近一次点击时间
	LastClickAt *time.Time
}

func (ItemStat) TableName() string {
	return "item_stats"
}
