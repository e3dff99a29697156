package dto

// ==================== 响应 DTO ====================

// ItemResp 商品详情响应
// Domain/ButtonText/ButtonClass/TrackedUrl 都是派生字段，不落库
type ItemResp struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`

	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`

	// 外部目标地址（原始值）
	Url string `json:"url"`
	// 站内路径 /shops/{shop}/{slug}
	InternalUrl string `json:"internal_url"`
	// 出站跳转链接 {internal}/to?website&url=...
	TrackedUrl string `json:"tracked_url"`
	// 完整绝对地址
	CanonicalUrl string `json:"canonical_url"`

	// 零售商展示名与按钮
	Domain      string `json:"domain"`
	ButtonText  string `json:"button_text"`
	ButtonClass string `json:"button_class"`

	ShopID       int64    `json:"shop_id"`
	ShopName     string   `json:"shop_name"`
	CategoryID   int64    `json:"category_id"`
	CategoryName string   `json:"category_name,omitempty"`
	PhotoUrl     string   `json:"photo_url,omitempty"`
	Tags         []string `json:"tags,omitempty"`

	FavoriteCount int64 `json:"favorite_count"`
}

// ItemListResp 商品列表响应
type ItemListResp struct {
	Code     int        `json:"code"`
	Message  string     `json:"message"`
	Data     []ItemResp `json:"data"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// ItemStatsResp 商品出站点击统计响应
type ItemStatsResp struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	ItemID     int64  `json:"item_id"`
	ClickCount int64  `json:"click_count"`
	LastClick  string `json:"last_click,omitempty"`
}

// ==================== 请求 DTO ====================

// CreateItemReq 创建商品请求
type CreateItemReq struct {
	ShopID      int64    `json:"shop_id" binding:"required"`
	CategoryID  int64    `json:"category_id"`
	Slug        string   `json:"slug" binding:"required,max=100"`
	Name        string   `json:"name" binding:"required,max=255"`
	Url         string   `json:"url" binding:"required,url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags" binding:"max=13"`
}

// FavoriteReq 收藏请求
// 鉴权不在本服务范围内，user_id 由上游网关注入
type FavoriteReq struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// CreateWishlistReq 创建心愿单请求
type CreateWishlistReq struct {
	UserID   int64  `json:"user_id" binding:"required"`
	Name     string `json:"name" binding:"required,max=255"`
	IsPublic bool   `json:"is_public"`
}
