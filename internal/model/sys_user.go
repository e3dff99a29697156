package model

// SysUser 站点用户
// 鉴权不在本服务范围内，这里只保留收藏/心愿单关联需要的最小字段
type SysUser struct {
	BaseModel

	Username string `gorm:"size:100;uniqueIndex;not null"`
	Email    string `gorm:"size:100;index"`
	Status   int    `gorm:"default:1;comment:状态 0-停用 1-正常"`

	Favorites []Favorite `gorm:"foreignKey:SysUserID"`
	Wishlists []Wishlist `gorm:"foreignKey:SysUserID"`
}

func (SysUser) TableName() string {
	return "sys_users"
}
