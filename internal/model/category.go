package model

// ShopCategory 店铺内的商品分类
// 分类属于单个店铺，商品可以不挂分类
type ShopCategory struct {
	BaseModel

	ShopID int64 `gorm:"index;not null"`
	Shop   *Shop `gorm:"foreignKey:ShopID"`

	Name string `gorm:"size:255;not null"`
	Rank int    `gorm:"default:0;comment:排序权重"`

	Items []ShopItem `gorm:"foreignKey:CategoryID"`
}

func (ShopCategory) TableName() string {
	return "shop_categories"
}
