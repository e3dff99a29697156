package middleware

import (
	"sync"
	"time"
)

// ==================== ClickRateLimiter 跳转限流器 ====================

// ClickRateLimiter 出站跳转限流器
// 防止爬虫/刷子高频打 /to 跳转把点击统计刷脏
type ClickRateLimiter struct {
	locks sync.Map // key -> *lockEntry
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// 全局限流器实例
var globalLimiter = &ClickRateLimiter{}

// GetLimiter 获取全局限流器
func GetLimiter() *ClickRateLimiter {
	return globalLimiter
}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行
// key: 限流键，如 "click:1.2.3.4:widget-42"
// interval: 冷却间隔
func (r *ClickRateLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)

	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{
		Allowed:    true,
		RetryAfter: 0,
	}
}

// Cleanup 清理超过 maxAge 未触发的条目，避免 map 无限增长
func (r *ClickRateLimiter) Cleanup(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)
	r.locks.Range(func(key, value interface{}) bool {
		entry := value.(*lockEntry)
		entry.mu.Lock()
		stale := entry.lastTime.Before(cutoff)
		entry.mu.Unlock()
		if stale {
			r.locks.Delete(key)
		}
		return true
	})
}
