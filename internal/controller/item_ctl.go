package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shopdir_dev_v1_202608/internal/api/dto"
	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/service"
)

type ItemController struct {
	itemService *service.ItemService
}

func NewItemController(itemService *service.ItemService) *ItemController {
	return &ItemController{itemService: itemService}
}

// ==================== 查询接口 ====================

// GetItems 获取指定店铺的商品列表
// GET /api/items?shop_id=1&page=1&page_size=20
func (ctrl *ItemController) GetItems(c *gin.Context) {
	shopIDStr := c.Query("shop_id")
	shopID, err := strconv.ParseInt(shopIDStr, 10, 64)
	if err != nil || shopID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 shop_id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	ctx := c.Request.Context()
	items, total, err := ctrl.itemService.GetShopItems(ctx, shopID, page, pageSize)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	respList := make([]dto.ItemResp, 0, len(items))
	for i := range items {
		respList = append(respList, ctrl.itemService.ToItemResp(&items[i]))
	}

	c.JSON(200, dto.ItemListResp{
		Code:     0,
		Message:  "success",
		Data:     respList,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetItem 获取商品详情（带派生展示字段）
// GET /api/items/:id
func (ctrl *ItemController) GetItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	ctx := c.Request.Context()
	item, err := ctrl.itemService.GetItemByID(ctx, id)
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "商品不存在"})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.itemService.ToItemDetailResp(ctx, item),
	})
}

// ==================== 写接口 ====================

// CreateItem 创建商品
// POST /api/items
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	var req dto.CreateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	item := &model.ShopItem{
		ShopID:      req.ShopID,
		CategoryID:  req.CategoryID,
		Slug:        req.Slug,
		Name:        req.Name,
		Url:         req.Url,
		Description: req.Description,
		Tags:        req.Tags,
	}

	ctx := c.Request.Context()
	if err := ctrl.itemService.CreateItem(ctx, item); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "创建失败: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": gin.H{"id": item.ID}})
}

// DeleteItem 下架商品（软删除）
// DELETE /api/items/:id
func (ctrl *ItemController) DeleteItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	ctx := c.Request.Context()
	if err := ctrl.itemService.DeleteItem(ctx, id); err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "删除失败: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success"})
}
