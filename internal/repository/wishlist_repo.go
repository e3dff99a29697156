package repository

import (
	"context"

	"gorm.io/gorm"

	"shopdir_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// WishlistRepository 心愿单仓储接口
type WishlistRepository interface {
	Create(ctx context.Context, wishlist *model.Wishlist) error
	GetByID(ctx context.Context, id int64) (*model.Wishlist, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Wishlist, error)
	AddItem(ctx context.Context, wishlistID int64, item *model.ShopItem) error
	RemoveItem(ctx context.Context, wishlistID int64, item *model.ShopItem) error
	Delete(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type wishlistRepo struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓储
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepo{db: db}
}

func (r *wishlistRepo) Create(ctx context.Context, wishlist *model.Wishlist) error {
	return r.db.WithContext(ctx).Create(wishlist).Error
}

func (r *wishlistRepo) GetByID(ctx context.Context, id int64) (*model.Wishlist, error) {
	var wishlist model.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Shop").
		First(&wishlist, id).Error
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepo) ListByUser(ctx context.Context, userID int64) ([]model.Wishlist, error) {
	var wishlists []model.Wishlist
	err := r.db.WithContext(ctx).
		Where("sys_user_id = ?", userID).
		Order("id ASC").
		Find(&wishlists).Error
	return wishlists, err
}

func (r *wishlistRepo) AddItem(ctx context.Context, wishlistID int64, item *model.ShopItem) error {
	return r.db.WithContext(ctx).
		Model(&model.Wishlist{BaseModel: model.BaseModel{ID: wishlistID}}).
		Association("Items").
		Append(item)
}

func (r *wishlistRepo) RemoveItem(ctx context.Context, wishlistID int64, item *model.ShopItem) error {
	return r.db.WithContext(ctx).
		Model(&model.Wishlist{BaseModel: model.BaseModel{ID: wishlistID}}).
		Association("Items").
		Delete(item)
}

func (r *wishlistRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Wishlist{}, id).Error
}
