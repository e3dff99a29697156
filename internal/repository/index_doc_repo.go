package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopdir_dev_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// IndexDocRepository 搜索索引文档 outbox 仓储接口
type IndexDocRepository interface {
	// Upsert 按商品维度落最新投影
	Upsert(ctx context.Context, itemID int64, document datatypes.JSON) error
	GetByItemID(ctx context.Context, itemID int64) (*model.IndexDoc, error)
	// ListUpdatedSince 供外部索引消费方增量拉取
	ListUpdatedSince(ctx context.Context, since time.Time, limit int) ([]model.IndexDoc, error)
	DeleteByItemID(ctx context.Context, itemID int64) error
}

// ==================== 仓储实现 ====================

type indexDocRepo struct {
	db *gorm.DB
}

// NewIndexDocRepository 创建索引文档仓储
func NewIndexDocRepository(db *gorm.DB) IndexDocRepository {
	return &indexDocRepo{db: db}
}

func (r *indexDocRepo) Upsert(ctx context.Context, itemID int64, document datatypes.JSON) error {
	now := time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"document":     document,
			"projected_at": now,
			"updated_at":   now,
		}),
	}).Create(&model.IndexDoc{
		ShopItemID:  itemID,
		Document:    document,
		ProjectedAt: now,
	}).Error
}

func (r *indexDocRepo) GetByItemID(ctx context.Context, itemID int64) (*model.IndexDoc, error) {
	var doc model.IndexDoc
	err := r.db.WithContext(ctx).Where("shop_item_id = ?", itemID).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *indexDocRepo) ListUpdatedSince(ctx context.Context, since time.Time, limit int) ([]model.IndexDoc, error) {
	var docs []model.IndexDoc
	err := r.db.WithContext(ctx).
		Where("updated_at > ?", since).
		Order("updated_at ASC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}

func (r *indexDocRepo) DeleteByItemID(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("shop_item_id = ?", itemID).
		Delete(&model.IndexDoc{}).Error
}
