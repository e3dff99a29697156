package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/repository"
	"shopdir_dev_v1_202608/internal/service"
)

// ==================== 测试辅助 ====================

func setupRedirectTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Shop{}, &model.ShopCategory{}, &model.ShopItem{}, &model.ItemStat{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func setupRedirectRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	itemRepo := repository.NewShopItemRepository(db)
	shopRepo := repository.NewShopRepository(db)
	statRepo := repository.NewItemStatRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	linkSvc := service.NewLinkService("https://shopdir.example", statRepo)
	itemSvc := service.NewItemService(itemRepo, shopRepo, statRepo, favRepo, linkSvc)
	ctrl := NewRedirectController(itemSvc, linkSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	shops := r.Group("/shops/:shop/:slug")
	{
		shops.GET("/to", ctrl.Redirect)
		shops.GET("/stats", ctrl.GetStats)
	}
	return r
}

func seedRedirectItem(t *testing.T, db *gorm.DB) *model.ShopItem {
	shop := &model.Shop{Slug: "acme", Name: "Acme", Status: model.ShopStatusActive}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("建店铺失败: %v", err)
	}
	item := &model.ShopItem{
		ShopID: shop.ID,
		Slug:   "widget-42",
		Name:   "Widget",
		Url:    "https://www.chewy.com/dp/123",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("建商品失败: %v", err)
	}
	return item
}

// ==================== 单元测试 ====================

func TestRedirect_CountsAndForwards(t *testing.T) {
	db := setupRedirectTestDB(t)
	r := setupRedirectRouter(t, db)
	item := seedRedirectItem(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/shops/acme/widget-42/to?website&url=https%3A%2F%2Fwww.chewy.com%2Fdp%2F123", nil)
	// 限流器是全局单例，给每个用例独立来源 IP 避免互相干扰
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)

	// 302 到库内外链，而不是 url 参数
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://www.chewy.com/dp/123", w.Header().Get("Location"))

	// 点击已计数
	var stat model.ItemStat
	err := db.Where("shop_item_id = ?", item.ID).First(&stat).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stat.ClickCount)
	assert.NotNil(t, stat.LastClickAt)
}

func TestRedirect_UnknownItem(t *testing.T) {
	db := setupRedirectTestDB(t)
	r := setupRedirectRouter(t, db)
	seedRedirectItem(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shops/acme/nope/to", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRedirect_RateLimited(t *testing.T) {
	db := setupRedirectTestDB(t)
	r := setupRedirectRouter(t, db)
	item := seedRedirectItem(t, db)

	// 冷却期内连打三次，只计一次，但每次都正常跳转
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/shops/acme/widget-42/to", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
	}

	var stat model.ItemStat
	err := db.Where("shop_item_id = ?", item.ID).First(&stat).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stat.ClickCount)
}

func TestGetStats(t *testing.T) {
	db := setupRedirectTestDB(t)
	r := setupRedirectRouter(t, db)
	item := seedRedirectItem(t, db)

	// 预置 5 次点击
	statRepo := repository.NewItemStatRepository(db)
	for i := 0; i < 5; i++ {
		if err := statRepo.IncrClick(context.Background(), item.ID); err != nil {
			t.Fatalf("计数失败: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shops/acme/widget-42/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"click_count":5`)
}

func TestGetStats_NoClicksYet(t *testing.T) {
	db := setupRedirectTestDB(t)
	r := setupRedirectRouter(t, db)
	seedRedirectItem(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shops/acme/widget-42/stats", nil)
	r.ServeHTTP(w, req)

	// 没有统计行也要给 0，而不是 404
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"click_count":0`)
}
