package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopdir_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// FavoriteRepository 收藏仓储接口
type FavoriteRepository interface {
	// Add 收藏，重复收藏为空操作
	Add(ctx context.Context, userID, itemID int64) error
	Remove(ctx context.Context, userID, itemID int64) error
	CountByItem(ctx context.Context, itemID int64) (int64, error)
	ListItemsByUser(ctx context.Context, userID int64, page, pageSize int) ([]model.ShopItem, int64, error)
}

// ==================== 仓储实现 ====================

type favoriteRepo struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建收藏仓储
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Add(ctx context.Context, userID, itemID int64) error {
	// 唯一索引冲突时什么都不做
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sys_user_id"}, {Name: "shop_item_id"}},
		DoNothing: true,
	}).Create(&model.Favorite{
		SysUserID:  userID,
		ShopItemID: itemID,
	}).Error
}

func (r *favoriteRepo) Remove(ctx context.Context, userID, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("sys_user_id = ? AND shop_item_id = ?", userID, itemID).
		Delete(&model.Favorite{}).Error
}

func (r *favoriteRepo) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("shop_item_id = ?", itemID).
		Count(&count).Error
	return count, err
}

func (r *favoriteRepo) ListItemsByUser(ctx context.Context, userID int64, page, pageSize int) ([]model.ShopItem, int64, error) {
	var items []model.ShopItem
	var total int64

	sub := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Select("shop_item_id").
		Where("sys_user_id = ?", userID)

	query := r.db.WithContext(ctx).Model(&model.ShopItem{}).Where("id IN (?)", sub)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Shop").
		Order("updated_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
