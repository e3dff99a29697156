package task

import (
	"log"

	"shopdir_dev_v1_202608/internal/service"
)

// ==================== TaskManager 后台任务管理器 ====================

// TaskManager 统一管理后台定时任务
// 管理范围：索引同步、图片回填
type TaskManager struct {
	indexTask *IndexSyncTask
	photoTask *PhotoBackfillTask
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	// 索引同步
	IndexEnabled   bool
	IndexBatchSize int

	// 图片回填
	PhotoEnabled bool
}

// DefaultConfig 默认配置
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		IndexEnabled:   true,
		IndexBatchSize: 200,
		PhotoEnabled:   true,
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(
	indexService *service.IndexService,
	photoService *service.PhotoImportService,
	cfg *TaskManagerConfig,
) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	m := &TaskManager{}

	if cfg.IndexEnabled {
		m.indexTask = NewIndexSyncTask(indexService)
		m.indexTask.SetBatchSize(cfg.IndexBatchSize)
	}
	if cfg.PhotoEnabled {
		m.photoTask = NewPhotoBackfillTask(photoService)
	}

	return m
}

// Start 启动所有已启用任务
func (m *TaskManager) Start() {
	if m.indexTask != nil {
		m.indexTask.Start()
	}
	if m.photoTask != nil {
		m.photoTask.Start()
	}
	log.Println("[TaskManager] 后台任务已启动")
}

// Stop 停止所有任务
func (m *TaskManager) Stop() {
	if m.indexTask != nil {
		m.indexTask.Stop()
	}
	if m.photoTask != nil {
		m.photoTask.Stop()
	}
	log.Println("[TaskManager] 后台任务已停止")
}
