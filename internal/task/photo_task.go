package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"shopdir_dev_v1_202608/internal/service"
)

// ==================== PhotoBackfillTask 图片回填任务 ====================

// PhotoBackfillTask 商品主图回填定时任务
// 扫描缺图且带 Etsy listing_id 的商品，逐个回填
// 失败不重试，留给下一轮
type PhotoBackfillTask struct {
	photoService *service.PhotoImportService
	cron         *cron.Cron

	batchSize int
	sleepTime time.Duration
}

// NewPhotoBackfillTask 创建图片回填任务
func NewPhotoBackfillTask(photoService *service.PhotoImportService) *PhotoBackfillTask {
	return &PhotoBackfillTask{
		photoService: photoService,
		cron:         cron.New(cron.WithSeconds()),
		batchSize:    50,
		sleepTime:    300 * time.Millisecond,
	}
}

// Start 启动定时任务
func (t *PhotoBackfillTask) Start() {
	// 每小时第 20 分执行，错开索引任务
	_, _ = t.cron.AddFunc("0 20 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		// sleepTime 限速，避免回填批次打满 Etsy 接口配额
		count, err := t.photoService.BackfillBatch(ctx, t.batchSize, t.sleepTime)
		if err != nil {
			log.Printf("[PhotoBackfillTask] 图片回填出错: %v", err)
			return
		}
		if count > 0 {
			log.Printf("[PhotoBackfillTask] 本轮回填 %d 张主图", count)
		}
	})

	t.cron.Start()
	log.Println("[PhotoBackfillTask] 已启动 (每小时)")
}

// Stop 停止任务
func (t *PhotoBackfillTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[PhotoBackfillTask] 已停止")
}
