package model

// Shop 状态常量
const (
	ShopStatusPending  = 0 // 待审核
	ShopStatusActive   = 1 // 正常
	ShopStatusInactive = 2 // 已下架
)

type Shop struct {
	BaseModel
	// 1. 核心身份
	// 店铺在站内的唯一 slug，用于拼接站内路径 /shops/{slug}
	Slug string `gorm:"size:100;uniqueIndex;not null"`
	Name string `gorm:"size:255;not null"`

	// 对应 Etsy 平台的 shop_id，非 Etsy 来源店铺为 0
	EtsyShopID int64 `gorm:"index;default:0"`

	// 2. 展示信息
	Description string `gorm:"type:text"`
	IconUrl     string `gorm:"size:255"`
	Url         string `gorm:"size:255"` // 店铺官网外链

	// 3. 状态
	Status int `gorm:"default:0;comment:状态 0-待审核 1-正常 2-已下架"`

	// 4. 关联关系
	Items      []ShopItem     `gorm:"foreignKey:ShopID"`
	Categories []ShopCategory `gorm:"foreignKey:ShopID"`
}

// BaseURL 店铺站内根路径，不带尾部斜杠
// 商品站内路径 = BaseURL() + "/" + item.Slug
func (s *Shop) BaseURL() string {
	return "/shops/" + s.Slug
}

func (Shop) TableName() string {
	return "shops"
}
