package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopdir_dev_v1_202608/internal/model"
)

// 业务错误
var (
	ErrReservedSlug  = errors.New("slug 为保留字")
	ErrDuplicateSlug = errors.New("slug 在店铺内已存在")
)

// ==================== 接口定义 ====================

// ShopItemRepository 商品仓储接口
type ShopItemRepository interface {
	// 基础 CRUD
	Create(ctx context.Context, item *model.ShopItem) error
	GetByID(ctx context.Context, id int64) (*model.ShopItem, error)
	GetBySlug(ctx context.Context, shopID int64, slug string) (*model.ShopItem, error)
	Update(ctx context.Context, item *model.ShopItem) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error

	// 列表查询
	ListByShop(ctx context.Context, shopID int64, page, pageSize int) ([]model.ShopItem, int64, error)
	ListByIndexStatus(ctx context.Context, status int, limit int) ([]model.ShopItem, error)
	ListMissingPhoto(ctx context.Context, limit int) ([]model.ShopItem, error)

	// 图片回填
	// photo_id 只允许从 0 写成非 0，一次生效；已有值时返回 0 行不报错
	CreatePhoto(ctx context.Context, photo *model.ItemPhoto) error
	SetPhotoOnce(ctx context.Context, itemID int64, photoID int64) error

	// 索引同步
	MarkIndexStatus(ctx context.Context, ids []int64, status int) error
}

// ==================== 仓储实现 ====================

type shopItemRepo struct {
	db *gorm.DB
}

// NewShopItemRepository 创建商品仓储
func NewShopItemRepository(db *gorm.DB) ShopItemRepository {
	return &shopItemRepo{db: db}
}

func (r *shopItemRepo) Create(ctx context.Context, item *model.ShopItem) error {
	// slug 保留字拦截，避免与 /to /stats 路由段冲突
	if model.IsReservedSlug(item.Slug) {
		return fmt.Errorf("%w: %s", ErrReservedSlug, item.Slug)
	}

	// 店铺内唯一性检查（联合唯一索引兜底）
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ShopItem{}).
		Where("shop_id = ? AND slug = ?", item.ShopID, item.Slug).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, item.Slug)
	}

	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shopItemRepo) GetByID(ctx context.Context, id int64) (*model.ShopItem, error) {
	var item model.ShopItem
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Category").
		Preload("Photo").
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shopItemRepo) GetBySlug(ctx context.Context, shopID int64, slug string) (*model.ShopItem, error) {
	var item model.ShopItem
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Category").
		Where("shop_id = ? AND slug = ?", shopID, slug).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shopItemRepo) Update(ctx context.Context, item *model.ShopItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return err
	}
	// 内容变更后索引文档需要重建
	return r.db.WithContext(ctx).Model(&model.ShopItem{}).
		Where("id = ?", item.ID).
		Update("index_status", model.IndexStatusDirty).Error
}

func (r *shopItemRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.ShopItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *shopItemRepo) Delete(ctx context.Context, id int64) error {
	// 软删除，不做物理删除
	return r.db.WithContext(ctx).Delete(&model.ShopItem{}, id).Error
}

func (r *shopItemRepo) ListByShop(ctx context.Context, shopID int64, page, pageSize int) ([]model.ShopItem, int64, error) {
	var items []model.ShopItem
	var total int64

	query := r.db.WithContext(ctx).Model(&model.ShopItem{}).Where("shop_id = ?", shopID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Category").
		Order("updated_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *shopItemRepo) ListByIndexStatus(ctx context.Context, status int, limit int) ([]model.ShopItem, error) {
	var items []model.ShopItem
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Category").
		Where("index_status = ?", status).
		Order("updated_at ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *shopItemRepo) ListMissingPhoto(ctx context.Context, limit int) ([]model.ShopItem, error) {
	var items []model.ShopItem
	err := r.db.WithContext(ctx).
		Where("photo_id = 0 AND etsy_listing_id > 0").
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *shopItemRepo) CreatePhoto(ctx context.Context, photo *model.ItemPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *shopItemRepo) SetPhotoOnce(ctx context.Context, itemID int64, photoID int64) error {
	// WHERE photo_id = 0 保证只写一次，并发回填也不会覆盖
	return r.db.WithContext(ctx).Model(&model.ShopItem{}).
		Where("id = ? AND photo_id = 0", itemID).
		Update("photo_id", photoID).Error
}

func (r *shopItemRepo) MarkIndexStatus(ctx context.Context, ids []int64, status int) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.ShopItem{}).
		Where("id IN ?", ids).
		Update("index_status", status).Error
}
