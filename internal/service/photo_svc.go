package service

import (
	"context"
	"log"
	"path"
	"time"

	"github.com/google/uuid"

	"shopdir_dev_v1_202608/internal/model"
	"shopdir_dev_v1_202608/internal/repository"
	"shopdir_dev_v1_202608/pkg/marketplace"
)

// ==================== 图片回填 ====================

// PhotoImportService 从 Etsy listing 回填商品主图
// 约定：photo_id 只写一次；已有图片或没有 listing_id 的商品直接跳过；
// 拉取失败不重试，留给下一轮回填任务
type PhotoImportService struct {
	itemRepo repository.ShopItemRepository
	client   MarketplaceImageClient
}

// MarketplaceImageClient 外部市场图片接口
type MarketplaceImageClient interface {
	ListingImages(ctx context.Context, listingID int64) ([]ListingImageInfo, error)
}

// ListingImageInfo 市场侧图片信息
type ListingImageInfo struct {
	EtsyImageID int64
	URL         string
	Rank        int
	Height      int
	Width       int
}

// NewPhotoImportService 创建图片回填服务
func NewPhotoImportService(itemRepo repository.ShopItemRepository, client MarketplaceImageClient) *PhotoImportService {
	return &PhotoImportService{
		itemRepo: itemRepo,
		client:   client,
	}
}

// ImportPhoto 为单个商品回填主图
// 所有前置条件不满足都静默返回 nil，调用方不感知失败
func (s *PhotoImportService) ImportPhoto(ctx context.Context, item *model.ShopItem) error {
	// 已有图片，幂等跳过
	if item.PhotoID != 0 {
		return nil
	}
	// 非 Etsy 来源，无从回填
	if item.EtsyListingID == 0 {
		return nil
	}

	images, err := s.client.ListingImages(ctx, item.EtsyListingID)
	if err != nil {
		log.Printf("[PhotoImport] 商品 %d 拉取图片失败: %v", item.ID, err)
		return nil
	}
	if len(images) == 0 {
		return nil
	}

	// rank 最小的作为主图
	best := images[0]
	for _, img := range images[1:] {
		if img.Rank < best.Rank {
			best = img
		}
	}

	photo := &model.ItemPhoto{
		EtsyImageID: best.EtsyImageID,
		SourceUrl:   best.URL,
		ObjectKey:   uuid.New().String() + path.Ext(best.URL),
		Height:      best.Height,
		Width:       best.Width,
	}
	if err := s.itemRepo.CreatePhoto(ctx, photo); err != nil {
		log.Printf("[PhotoImport] 商品 %d 图片落库失败: %v", item.ID, err)
		return nil
	}

	// WHERE photo_id = 0 的条件更新保证并发下也只写一次
	if err := s.itemRepo.SetPhotoOnce(ctx, item.ID, photo.ID); err != nil {
		log.Printf("[PhotoImport] 商品 %d 绑定图片失败: %v", item.ID, err)
		return nil
	}

	item.PhotoID = photo.ID
	return nil
}

// ==================== Etsy 客户端适配 ====================

// etsyImageClient 把 pkg/marketplace 客户端适配成 MarketplaceImageClient
type etsyImageClient struct {
	client *marketplace.Client
}

// NewEtsyImageClient 创建 Etsy 图片客户端适配器
func NewEtsyImageClient(client *marketplace.Client) MarketplaceImageClient {
	return &etsyImageClient{client: client}
}

func (c *etsyImageClient) ListingImages(ctx context.Context, listingID int64) ([]ListingImageInfo, error) {
	images, err := c.client.ListingImages(ctx, listingID)
	if err != nil {
		return nil, err
	}

	infos := make([]ListingImageInfo, 0, len(images))
	for _, img := range images {
		// 优先用原图，没有再退 570xN
		rawURL := img.URLFullxFull
		if rawURL == "" {
			rawURL = img.URL570xN
		}
		infos = append(infos, ListingImageInfo{
			EtsyImageID: img.ListingImageID,
			URL:         rawURL,
			Rank:        img.Rank,
			Height:      img.FullHeight,
			Width:       img.FullWidth,
		})
	}
	return infos, nil
}

// BackfillBatch 批量回填缺图商品，返回处理条数
// pace 是相邻两次外部拉取之间的间隔，0 表示不限速
func (s *PhotoImportService) BackfillBatch(ctx context.Context, limit int, pace time.Duration) (int, error) {
	items, err := s.itemRepo.ListMissingPhoto(ctx, limit)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range items {
		if i > 0 && pace > 0 {
			select {
			case <-ctx.Done():
				return count, ctx.Err()
			case <-time.After(pace):
			}
		}
		if err := s.ImportPhoto(ctx, &items[i]); err != nil {
			continue
		}
		if items[i].PhotoID != 0 {
			count++
		}
	}
	return count, nil
}
