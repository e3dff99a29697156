package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdir_dev_v1_202608/internal/api/dto"
	"shopdir_dev_v1_202608/internal/service"
)

type FavoriteController struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteController(favoriteService *service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// Favorite 收藏商品
// POST /api/items/:id/favorite
func (ctrl *FavoriteController) Favorite(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	var req dto.FavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := ctrl.favoriteService.Favorite(ctx, req.UserID, itemID); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "收藏失败: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success"})
}

// Unfavorite 取消收藏
// DELETE /api/items/:id/favorite
func (ctrl *FavoriteController) Unfavorite(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	var req dto.FavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := ctrl.favoriteService.Unfavorite(ctx, req.UserID, itemID); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "取消收藏失败: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success"})
}
