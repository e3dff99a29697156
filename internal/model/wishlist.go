package model

// Favorite 用户收藏商品
// GORM 自定义连接表 (Join Table)
// 联合唯一索引保证一个用户对一个商品只有一条收藏记录
type Favorite struct {
	BaseModel

	SysUserID  int64 `gorm:"index;uniqueIndex:idx_user_item;not null"`
	ShopItemID int64 `gorm:"index;uniqueIndex:idx_user_item;not null"`

	SysUser  *SysUser  `gorm:"foreignKey:SysUserID"`
	ShopItem *ShopItem `gorm:"foreignKey:ShopItemID"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// Wishlist 用户心愿单
type Wishlist struct {
	BaseModel

	SysUserID int64    `gorm:"index;not null"`
	SysUser   *SysUser `gorm:"foreignKey:SysUserID"`

	Name string `gorm:"size:255;not null"`
	// 是否公开可分享
	IsPublic bool `gorm:"default:false"`

	Items []ShopItem `gorm:"many2many:wishlist_items;"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
