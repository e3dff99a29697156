package router

import (
	"github.com/gin-gonic/gin"

	"shopdir_dev_v1_202608/internal/controller"
)

// Controllers 控制器集合
type Controllers struct {
	Item     *controller.ItemController
	Redirect *controller.RedirectController
	Favorite *controller.FavoriteController
	Wishlist *controller.WishlistController
}

// SetupRouter 注册所有路由
func SetupRouter(ctls *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// 1. 站内跳转/统计路由
	// slug 保留字 to/stats 在入库时拦截，不会与这里的路由段冲突
	shops := r.Group("/shops/:shop/:slug")
	{
		// GET /shops/acme/widget-42/to?website&url=...
		shops.GET("/to", ctls.Redirect.Redirect)
		// GET /shops/acme/widget-42/stats
		shops.GET("/stats", ctls.Redirect.GetStats)
	}

	// 2. API 路由组
	api := r.Group("/api")
	{
		items := api.Group("/items")
		{
			// GET /api/items?shop_id=1
			items.GET("", ctls.Item.GetItems)
			items.GET("/:id", ctls.Item.GetItem)
			items.POST("", ctls.Item.CreateItem)
			items.DELETE("/:id", ctls.Item.DeleteItem)

			// 收藏
			items.POST("/:id/favorite", ctls.Favorite.Favorite)
			items.DELETE("/:id/favorite", ctls.Favorite.Unfavorite)
		}

		wishlists := api.Group("/wishlists")
		{
			wishlists.POST("", ctls.Wishlist.Create)
			wishlists.GET("/:id", ctls.Wishlist.Get)
			wishlists.POST("/:id/items/:item_id", ctls.Wishlist.AddItem)
			wishlists.DELETE("/:id/items/:item_id", ctls.Wishlist.RemoveItem)
		}
	}

	return r
}
