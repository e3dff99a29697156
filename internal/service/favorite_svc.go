package service

import (
	"context"

	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/repository"
)

// ==================== FavoriteService 收藏服务 ====================

type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	wishlistRepo repository.WishlistRepository
}

// NewFavoriteService 创建收藏服务
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, wishlistRepo repository.WishlistRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		wishlistRepo: wishlistRepo,
	}
}

// Favorite 收藏商品，重复收藏幂等
func (s *FavoriteService) Favorite(ctx context.Context, userID, itemID int64) error {
	return s.favoriteRepo.Add(ctx, userID, itemID)
}

// Unfavorite 取消收藏
func (s *FavoriteService) Unfavorite(ctx context.Context, userID, itemID int64) error {
	return s.favoriteRepo.Remove(ctx, userID, itemID)
}

// CountFavorites 商品收藏数
func (s *FavoriteService) CountFavorites(ctx context.Context, itemID int64) (int64, error) {
	return s.favoriteRepo.CountByItem(ctx, itemID)
}

// ListFavorites 用户收藏的商品列表
func (s *FavoriteService) ListFavorites(ctx context.Context, userID int64, page, pageSize int) ([]model.ShopItem, int64, error) {
	return s.favoriteRepo.ListItemsByUser(ctx, userID, page, pageSize)
}

// CreateWishlist 创建心愿单
func (s *FavoriteService) CreateWishlist(ctx context.Context, wishlist *model.Wishlist) error {
	return s.wishlistRepo.Create(ctx, wishlist)
}

// AddToWishlist 把商品加入心愿单
func (s *FavoriteService) AddToWishlist(ctx context.Context, wishlistID, itemID int64) error {
	return s.wishlistRepo.AddItem(ctx, wishlistID, &model.ShopItem{BaseModel: model.BaseModel{ID: itemID}})
}

// RemoveFromWishlist 把商品移出心愿单
func (s *FavoriteService) RemoveFromWishlist(ctx context.Context, wishlistID, itemID int64) error {
	return s.wishlistRepo.RemoveItem(ctx, wishlistID, &model.ShopItem{BaseModel: model.BaseModel{ID: itemID}})
}

// GetWishlist 获取心愿单（带商品）
func (s *FavoriteService) GetWishlist(ctx context.Context, id int64) (*model.Wishlist, error) {
	return s.wishlistRepo.GetByID(ctx, id)
}
