package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopdir_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// ItemStatRepository 商品点击统计仓储接口
type ItemStatRepository interface {
	// IncrClick 出站点击计数 +1，统计行不存在时自动创建
	IncrClick(ctx context.Context, itemID int64) error
	GetByItemID(ctx context.Context, itemID int64) (*model.ItemStat, error)
}

// ==================== 仓储实现 ====================

type itemStatRepo struct {
	db *gorm.DB
}

// NewItemStatRepository 创建统计仓储
func NewItemStatRepository(db *gorm.DB) ItemStatRepository {
	return &itemStatRepo{db: db}
}

func (r *itemStatRepo) IncrClick(ctx context.Context, itemID int64) error {
	now := time.Now()
	// UPSERT: 冲突时计数自增，更新最近点击时间
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"click_count":   gorm.Expr("item_stats.click_count + 1"),
			"last_click_at": now,
			"updated_at":    now,
		}),
	}).Create(&model.ItemStat{
		ShopItemID:  itemID,
		ClickCount:  1,
		LastClickAt: &now,
	}).Error
}

func (r *itemStatRepo) GetByItemID(ctx context.Context, itemID int64) (*model.ItemStat, error) {
	var stat model.ItemStat
	err := r.db.WithContext(ctx).Where("shop_item_id = ?", itemID).First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}
