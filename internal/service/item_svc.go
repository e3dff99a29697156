package service

import (
	"context"
	"fmt"
	"html"

	"shopdir_dev_v1_202608/internal/api/dto"
	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/repository"
)

// ==================== ItemService 商品服务 ====================

// ItemService 商品读写与详情拼装
type ItemService struct {
	itemRepo     repository.ShopItemRepository
	shopRepo     repository.ShopRepository
	statRepo     repository.ItemStatRepository
	favoriteRepo repository.FavoriteRepository
	linkService  *LinkService
}

// NewItemService 创建商品服务
func NewItemService(
	itemRepo repository.ShopItemRepository,
	shopRepo repository.ShopRepository,
	statRepo repository.ItemStatRepository,
	favoriteRepo repository.FavoriteRepository,
	linkService *LinkService,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		shopRepo:     shopRepo,
		statRepo:     statRepo,
		favoriteRepo: favoriteRepo,
		linkService:  linkService,
	}
}

// GetItemByID 获取商品（带店铺/分类/图片）
func (s *ItemService) GetItemByID(ctx context.Context, id int64) (*model.ShopItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// GetItemBySlug 按店铺 slug + 商品 slug 获取商品
func (s *ItemService) GetItemBySlug(ctx context.Context, shopSlug, itemSlug string) (*model.ShopItem, error) {
	shop, err := s.shopRepo.GetBySlug(ctx, shopSlug)
	if err != nil {
		return nil, fmt.Errorf("店铺不存在: %w", err)
	}
	return s.itemRepo.GetBySlug(ctx, shop.ID, itemSlug)
}

// GetShopItems 获取店铺商品列表
func (s *ItemService) GetShopItems(ctx context.Context, shopID int64, page, pageSize int) ([]model.ShopItem, int64, error) {
	return s.itemRepo.ListByShop(ctx, shopID, page, pageSize)
}

// CreateItem 创建商品（slug 保留字/重复在仓储层拦截）
func (s *ItemService) CreateItem(ctx context.Context, item *model.ShopItem) error {
	return s.itemRepo.Create(ctx, item)
}

// UpdateItem 更新商品，内容变更会触发索引重建标记
func (s *ItemService) UpdateItem(ctx context.Context, item *model.ShopItem) error {
	return s.itemRepo.Update(ctx, item)
}

// DeleteItem 软删除商品
func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}

// GetItemStats 获取商品出站点击统计
func (s *ItemService) GetItemStats(ctx context.Context, itemID int64) (*model.ItemStat, error) {
	return s.statRepo.GetByItemID(ctx, itemID)
}

// ==================== 响应拼装 ====================

// ToItemResp 拼装商品详情响应
// 派生链：站内路径 -> 跳转链接；外链 -> 品牌名 -> 按钮文案/样式
func (s *ItemService) ToItemResp(item *model.ShopItem) dto.ItemResp {
	resp := dto.ItemResp{
		ID:              item.ID,
		Slug:            item.Slug,
		Name:            item.Name,
		Description:     item.Description,
		DescriptionHTML: html.EscapeString(item.Description),
		Url:             item.Url,
		ShopID:          item.ShopID,
		CategoryID:      item.CategoryID,
		Tags:            item.Tags,
	}

	if item.Shop != nil {
		resp.ShopName = item.Shop.Name
		internal := InternalURL(item.Shop.BaseURL(), item.Slug)
		resp.InternalUrl = internal
		resp.TrackedUrl = TrackedURL(internal, item.Url)
		resp.CanonicalUrl = s.linkService.CanonicalURL(internal)
	}
	if item.Category != nil {
		resp.CategoryName = item.Category.Name
	}
	if item.Photo != nil {
		resp.PhotoUrl = item.Photo.SourceUrl
	}

	domain := ResolveDomain(item.Url)
	resp.Domain = domain
	resp.ButtonText = ButtonText(domain)
	resp.ButtonClass = ButtonClass(domain)

	return resp
}

// ToItemDetailResp 详情响应，额外带收藏数
func (s *ItemService) ToItemDetailResp(ctx context.Context, item *model.ShopItem) dto.ItemResp {
	resp := s.ToItemResp(item)
	if count, err := s.favoriteRepo.CountByItem(ctx, item.ID); err == nil {
		resp.FavoriteCount = count
	}
	return resp
}
