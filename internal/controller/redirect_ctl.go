package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"shopdir_dev_v1_202608/internal/api/dto"
	"shopdir_dev_v1_202608/internal/middleware"
	"shopdir_dev_v1_202608/internal/service"
)

// 同一来源对同一商品的点击冷却时间
const clickCooldown = 2 * time.Second

// RedirectController 出站跳转与统计
type RedirectController struct {
	itemService *service.ItemService
	linkService *service.LinkService
}

func NewRedirectController(itemService *service.ItemService, linkService *service.LinkService) *RedirectController {
	return &RedirectController{
		itemService: itemService,
		linkService: linkService,
	}
}

// ==================== 跳转接口 ====================

// Redirect 出站跳转
// GET /shops/:shop/:slug/to?website&url=...
// 记录点击后 302 到商品库内外链；url 参数只是埋点载荷，
// 跳转目标永远取库内地址，避免开放跳转
func (ctrl *RedirectController) Redirect(c *gin.Context) {
	shopSlug := c.Param("shop")
	itemSlug := c.Param("slug")

	ctx := c.Request.Context()
	item, err := ctrl.itemService.GetItemBySlug(ctx, shopSlug, itemSlug)
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "商品不存在"})
		return
	}

	// 限流命中时照常跳转，只是不计数
	key := "click:" + c.ClientIP() + ":" + shopSlug + "/" + itemSlug
	if middleware.GetLimiter().Check(key, clickCooldown).Allowed {
		// 点击计数失败不阻断跳转
		_ = ctrl.linkService.RecordClick(ctx, item.ID)
	}

	c.Redirect(302, item.Url)
}

// GetStats 商品出站点击统计
// GET /shops/:shop/:slug/stats
func (ctrl *RedirectController) GetStats(c *gin.Context) {
	shopSlug := c.Param("shop")
	itemSlug := c.Param("slug")

	ctx := c.Request.Context()
	item, err := ctrl.itemService.GetItemBySlug(ctx, shopSlug, itemSlug)
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "商品不存在"})
		return
	}

	resp := dto.ItemStatsResp{
		Code:    0,
		Message: "success",
		ItemID:  item.ID,
	}

	stat, err := ctrl.itemService.GetItemStats(ctx, item.ID)
	if err == nil {
		resp.ClickCount = stat.ClickCount
		if stat.LastClickAt != nil {
			resp.LastClick = stat.LastClickAt.Format(time.RFC3339)
		}
	}

	c.JSON(200, resp)
}
