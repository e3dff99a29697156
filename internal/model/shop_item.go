package model

import (
	"github.com/lib/pq"
)

// 索引同步状态常量
const (
	IndexStatusSynced = 0 // 已同步
	IndexStatusDirty  = 1 // 待重建
	IndexStatusFailed = 2 // 失败
)

// 保留 slug 集合
// "to" 和 "stats" 是商品路径下的固定路由段 (/{slug}/to 跳转、/{slug}/stats 统计)，
// slug 撞上会产生二义性路径，入库前必须拦截
var reservedSlugs = map[string]struct{}{
	"stats": {},
	"to":    {},
}

// IsReservedSlug 判断 slug 是否命中保留字
func IsReservedSlug(slug string) bool {
	_, ok := reservedSlugs[slug]
	return ok
}

type ShopItem struct {
	BaseModel

	// --- 归属关系 ---
	ShopID int64 `gorm:"index:idx_shop_slug,unique;not null"`
	Shop   *Shop `gorm:"foreignKey:ShopID"`

	CategoryID int64         `gorm:"index;default:0"`
	Category   *ShopCategory `gorm:"foreignKey:CategoryID"`

	// --- 核心字段 ---
	// slug 店铺内唯一，与 ShopID 组成联合唯一索引
	Slug string `gorm:"size:100;index:idx_shop_slug,unique;not null"`
	Name string `gorm:"size:255;not null"`
	// 外部目标地址，导入时写入，店主可改
	// 上游保证是合法绝对 URL，本层只解析不校验
	Url         string `gorm:"size:512;not null"`
	Description string `gorm:"type:text"`

	// --- Etsy 来源信息 ---
	// 非 Etsy 来源商品 listing_id 为 0，图片回填任务会跳过
	EtsyListingID int64 `gorm:"index;default:0"`

	// --- 图片 ---
	// 只允许写入一次，已有值时图片回填为空操作
	PhotoID int64      `gorm:"default:0"`
	Photo   *ItemPhoto `gorm:"foreignKey:PhotoID"`

	// --- 标签 (Postgres Array) ---
	Tags pq.StringArray `gorm:"type:text[]"`

	// --- 搜索索引同步 ---
	IndexStatus int `gorm:"default:1;index"` // 0:已同步, 1:待重建, 2:失败

	// --- 关联关系 ---
	Stat      *ItemStat  `gorm:"foreignKey:ShopItemID"`
	Favorites []Favorite `gorm:"foreignKey:ShopItemID"`
	// 收藏该商品的用户列表 (Many to Many, 忽略收藏时间)
	// 连接表复用 Favorite 模型，迁移时 SetupJoinTable
	FavoritedBy []SysUser  `gorm:"many2many:favorites;foreignKey:ID;joinForeignKey:ShopItemID;references:ID;joinReferences:SysUserID"`
	Wishlists   []Wishlist `gorm:"many2many:wishlist_items;"`
}

func (ShopItem) TableName() string {
	return "shop_items"
}

// ItemPhoto 商品图片
// 来自 Etsy listing 图片回填，文件本体存对象存储，这里只存引用
type ItemPhoto struct {
	BaseModel

	// Etsy 侧图片 ID
	EtsyImageID int64 `gorm:"index;default:0"`

	// 远端原图地址
	SourceUrl string `gorm:"size:512"`
	// 本地存储对象名
	ObjectKey string `gorm:"size:255"`

	Height int `gorm:"default:0"`
	Width  int `gorm:"default:0"`
}

func (ItemPhoto) TableName() string {
	return "item_photos"
}
