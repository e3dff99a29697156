package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"shopdir_dev_v1_202608/internal/service"
)

// ==================== IndexSyncTask 索引同步任务 ====================

// IndexSyncTask 搜索索引同步定时任务
// 同步策略：
//   - 增量重建：每 5 分钟，只处理 index_status = dirty 的商品
type IndexSyncTask struct {
	indexService *service.IndexService
	cron         *cron.Cron

	batchSize int
}

// NewIndexSyncTask 创建索引同步任务
func NewIndexSyncTask(indexService *service.IndexService) *IndexSyncTask {
	return &IndexSyncTask{
		indexService: indexService,
		cron:         cron.New(cron.WithSeconds()),
		batchSize:    200,
	}
}

// SetBatchSize 设置单轮处理条数
func (t *IndexSyncTask) SetBatchSize(size int) {
	t.batchSize = size
}

// Start 启动定时任务
func (t *IndexSyncTask) Start() {
	// 首次执行（延迟 10 秒，等服务就绪）
	go func() {
		time.Sleep(10 * time.Second)
		t.runOnce()
	}()

	// 增量重建：每 5 分钟
	_, _ = t.cron.AddFunc("0 */5 * * * *", t.runOnce)

	t.cron.Start()
	log.Println("[IndexSyncTask] 已启动 (增量每5分钟)")
}

// Stop 停止任务
func (t *IndexSyncTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[IndexSyncTask] 已停止")
}

func (t *IndexSyncTask) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	count, err := t.indexService.ReindexDirty(ctx, t.batchSize)
	if err != nil {
		log.Printf("[IndexSyncTask] 索引重建出错: %v", err)
		return
	}
	if count > 0 {
		log.Printf("[IndexSyncTask] 本轮重建 %d 个商品索引", count)
	}
}
