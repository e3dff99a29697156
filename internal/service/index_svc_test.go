package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/repository"
)

// ==================== 纯投影 ====================

func TestProjectItem_Searchable(t *testing.T) {
	item := &model.ShopItem{Name: "Widget", ShopID: 7, CategoryID: 0}

	// 无分类：分类位为空串，拼接后 trim
	doc := ProjectItem(item, "Joe's & Sons", "")
	if doc.Searchable != "Joe's and Sons Widget" {
		t.Errorf("Searchable = %q, 期望 %q", doc.Searchable, "Joe's and Sons Widget")
	}
	if doc.Name != "Widget" || doc.ShopID != 7 || doc.CategoryID != 0 {
		t.Errorf("透传字段不对: %+v", doc)
	}
}

func TestProjectItem_NoAmpersand(t *testing.T) {
	// searchable 里永远不应该出现字面 "&"
	item := &model.ShopItem{Name: "Cat & Dog Toy", ShopID: 1, CategoryID: 2}
	doc := ProjectItem(item, "Paws & Claws", "Toys & Games")
	if strings.Contains(doc.Searchable, "&") {
		t.Errorf("searchable 残留 &: %q", doc.Searchable)
	}
	want := "Paws and Claws Cat and Dog Toy Toys and Games"
	if doc.Searchable != want {
		t.Errorf("Searchable = %q, 期望 %q", doc.Searchable, want)
	}
}

func TestProjectItem_WithCategory(t *testing.T) {
	item := &model.ShopItem{Name: "Widget", ShopID: 7, CategoryID: 3}
	doc := ProjectItem(item, "Acme", "Gadgets")
	if doc.Searchable != "Acme Widget Gadgets" {
		t.Errorf("Searchable = %q", doc.Searchable)
	}
}

// ==================== 索引同步服务 ====================

func setupIndexTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Shop{}, &model.ShopCategory{}, &model.ShopItem{}, &model.IndexDoc{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func TestIndexService_ReindexDirty(t *testing.T) {
	db := setupIndexTestDB(t)
	ctx := context.Background()

	shop := model.Shop{Slug: "acme", Name: "Acme & Co", Status: model.ShopStatusActive}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("建店铺失败: %v", err)
	}
	item := model.ShopItem{
		ShopID:      shop.ID,
		Slug:        "widget-42",
		Name:        "Widget",
		Url:         "https://example.com/widget",
		IndexStatus: model.IndexStatusDirty,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("建商品失败: %v", err)
	}

	itemRepo := repository.NewShopItemRepository(db)
	docRepo := repository.NewIndexDocRepository(db)
	svc := NewIndexService(itemRepo, docRepo)

	count, err := svc.ReindexDirty(ctx, 100)
	if err != nil {
		t.Fatalf("ReindexDirty 失败: %v", err)
	}
	if count != 1 {
		t.Fatalf("处理条数 = %d, 期望 1", count)
	}

	// outbox 里应有投影文档，& 已归一
	stored, err := docRepo.GetByItemID(ctx, item.ID)
	if err != nil {
		t.Fatalf("读取索引文档失败: %v", err)
	}
	var doc IndexDocument
	if err := json.Unmarshal(stored.Document, &doc); err != nil {
		t.Fatalf("文档反序列化失败: %v", err)
	}
	if doc.Searchable != "Acme and Co Widget" {
		t.Errorf("Searchable = %q", doc.Searchable)
	}
	if doc.ShopID != shop.ID {
		t.Errorf("ShopID = %d", doc.ShopID)
	}

	// 商品应被标记为已同步
	var refreshed model.ShopItem
	db.First(&refreshed, item.ID)
	if refreshed.IndexStatus != model.IndexStatusSynced {
		t.Errorf("IndexStatus = %d, 期望已同步", refreshed.IndexStatus)
	}

	// 再跑一轮应无事可做
	count, err = svc.ReindexDirty(ctx, 100)
	if err != nil {
		t.Fatalf("第二轮 ReindexDirty 失败: %v", err)
	}
	if count != 0 {
		t.Errorf("第二轮处理条数 = %d, 期望 0", count)
	}
}

func TestIndexService_ReindexItem_Upsert(t *testing.T) {
	db := setupIndexTestDB(t)
	ctx := context.Background()

	shop := model.Shop{Slug: "acme", Name: "Acme"}
	db.Create(&shop)
	item := model.ShopItem{ShopID: shop.ID, Slug: "w", Name: "Widget", Url: "https://example.com"}
	db.Create(&item)

	itemRepo := repository.NewShopItemRepository(db)
	docRepo := repository.NewIndexDocRepository(db)
	svc := NewIndexService(itemRepo, docRepo)

	if err := svc.ReindexItem(ctx, item.ID); err != nil {
		t.Fatalf("首次重建失败: %v", err)
	}

	// 改名后重建，文档应更新而不是新增
	db.Model(&model.ShopItem{}).Where("id = ?", item.ID).Update("name", "Gadget")
	if err := svc.ReindexItem(ctx, item.ID); err != nil {
		t.Fatalf("二次重建失败: %v", err)
	}

	var total int64
	db.Model(&model.IndexDoc{}).Count(&total)
	if total != 1 {
		t.Fatalf("索引文档行数 = %d, 期望 1", total)
	}

	stored, _ := docRepo.GetByItemID(ctx, item.ID)
	var doc IndexDocument
	_ = json.Unmarshal(stored.Document, &doc)
	if doc.Name != "Gadget" {
		t.Errorf("文档未更新: %+v", doc)
	}
}
