package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/repository"
)

// ==================== 搜索索引投影 ====================

// IndexDocument 商品的搜索索引文档
// 记录 ID 由索引消费方补充，这里不带
type IndexDocument struct {
	Searchable string `json:"searchable"`
	Name       string `json:"name"`
	ShopID     int64  `json:"shop_id"`
	CategoryID int64  `json:"category_id"`
}

// ProjectItem 把商品投影成索引文档
// searchable = 店铺名 + 商品名 + 分类名（无分类则空串）按单空格拼接后 trim，
// 再把所有 "&" 替换为 "and"（替换在拼接之后做，店铺/分类名里的 & 一并归一）
func ProjectItem(item *model.ShopItem, shopName, categoryName string) IndexDocument {
	searchable := strings.TrimSpace(shopName + " " + item.Name + " " + categoryName)
	searchable = strings.ReplaceAll(searchable, "&", "and")

	return IndexDocument{
		Searchable: searchable,
		Name:       item.Name,
		ShopID:     item.ShopID,
		CategoryID: item.CategoryID,
	}
}

// IndexService 索引同步服务
// 把待重建商品的投影写入 outbox，供外部索引消费
type IndexService struct {
	itemRepo repository.ShopItemRepository
	docRepo  repository.IndexDocRepository
}

// NewIndexService 创建索引服务
func NewIndexService(itemRepo repository.ShopItemRepository, docRepo repository.IndexDocRepository) *IndexService {
	return &IndexService{
		itemRepo: itemRepo,
		docRepo:  docRepo,
	}
}

// ReindexItem 重建单个商品的索引文档
func (s *IndexService) ReindexItem(ctx context.Context, itemID int64) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("商品不存在: %w", err)
	}
	if err := s.projectAndStore(ctx, item); err != nil {
		return err
	}
	return s.itemRepo.MarkIndexStatus(ctx, []int64{itemID}, model.IndexStatusSynced)
}

// ReindexDirty 批量重建待同步商品，返回处理条数
func (s *IndexService) ReindexDirty(ctx context.Context, limit int) (int, error) {
	items, err := s.itemRepo.ListByIndexStatus(ctx, model.IndexStatusDirty, limit)
	if err != nil {
		return 0, err
	}

	var synced []int64
	for i := range items {
		item := &items[i]
		if err := s.projectAndStore(ctx, item); err != nil {
			log.Printf("[IndexService] 商品 %d 投影失败: %v", item.ID, err)
			_ = s.itemRepo.MarkIndexStatus(ctx, []int64{item.ID}, model.IndexStatusFailed)
			continue
		}
		synced = append(synced, item.ID)
	}

	if err := s.itemRepo.MarkIndexStatus(ctx, synced, model.IndexStatusSynced); err != nil {
		return len(synced), err
	}
	return len(synced), nil
}

// projectAndStore 投影并写入 outbox
func (s *IndexService) projectAndStore(ctx context.Context, item *model.ShopItem) error {
	var shopName, categoryName string
	if item.Shop != nil {
		shopName = item.Shop.Name
	}
	if item.Category != nil {
		categoryName = item.Category.Name
	}

	doc := ProjectItem(item, shopName, categoryName)
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.docRepo.Upsert(ctx, item.ID, payload)
}
