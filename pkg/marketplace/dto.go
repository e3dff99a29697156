package marketplace

// ==================== 响应 DTO ====================

// ListingImagesResp listing 图片列表响应
type ListingImagesResp struct {
	Count   int            `json:"count"`
	Results []ListingImage `json:"results"`
}

// ListingImage listing 图片
// rank 越小越靠前，回填时取 rank 最小的一张
type ListingImage struct {
	ListingImageID int64  `json:"listing_image_id"`
	ListingID      int64  `json:"listing_id"`
	Rank           int    `json:"rank"`
	URLFullxFull   string `json:"url_fullxfull"`
	URL570xN       string `json:"url_570xN"`
	FullHeight     int    `json:"full_height"`
	FullWidth      int    `json:"full_width"`
}
