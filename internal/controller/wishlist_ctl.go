package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdir_dev_v1_202608/internal/api/dto"
	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/service"
)

type WishlistController struct {
	favoriteService *service.FavoriteService
}

func NewWishlistController(favoriteService *service.FavoriteService) *WishlistController {
	return &WishlistController{favoriteService: favoriteService}
}

// Create 创建心愿单
// POST /api/wishlists
func (ctrl *WishlistController) Create(c *gin.Context) {
	var req dto.CreateWishlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	wishlist := &model.Wishlist{
		SysUserID: req.UserID,
		Name:      req.Name,
		IsPublic:  req.IsPublic,
	}
	ctx := c.Request.Context()
	if err := ctrl.favoriteService.CreateWishlist(ctx, wishlist); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "创建失败: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": gin.H{"id": wishlist.ID}})
}

// Get 获取心愿单（带商品）
// GET /api/wishlists/:id
func (ctrl *WishlistController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的心愿单ID"})
		return
	}

	ctx := c.Request.Context()
	wishlist, err := ctrl.favoriteService.GetWishlist(ctx, id)
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "心愿单不存在"})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": wishlist})
}

// AddItem 把商品加入心愿单
// POST /api/wishlists/:id/items/:item_id
func (ctrl *WishlistController) AddItem(c *gin.Context) {
	wishlistID, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	itemID, err2 := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err1 != nil || err2 != nil || wishlistID <= 0 || itemID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的参数"})
		return
	}

	ctx := c.Request.Context()
	if err := ctrl.favoriteService.AddToWishlist(ctx, wishlistID, itemID); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "加入失败: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success"})
}

// RemoveItem 把商品移出心愿单
// DELETE /api/wishlists/:id/items/:item_id
func (ctrl *WishlistController) RemoveItem(c *gin.Context) {
	wishlistID, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	itemID, err2 := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err1 != nil || err2 != nil || wishlistID <= 0 || itemID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的参数"})
		return
	}

	ctx := c.Request.Context()
	if err := ctrl.favoriteService.RemoveFromWishlist(ctx, wishlistID, itemID); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "移出失败: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success"})
}
