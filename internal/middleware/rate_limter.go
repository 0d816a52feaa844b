package middleware

import (
	"fmt"
	"sync"
	"time"
)

// ==================== RateLimiter 冷却限流器 ====================

// RateLimiter 基于冷却间隔的限流器
// 同一个 key 在 interval 内只允许通过一次
type RateLimiter struct {
	locks sync.Map // key -> *lockEntry
	now   func() time.Time
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// NewRateLimiter 创建限流器
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{now: time.Now}
}

// ==================== 限流检查 ====================

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行，允许时记录本次时间
// key: 限流键，如 "store:123:message:1.2.3.4"
func (r *RateLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := r.now()
	elapsed := now.Sub(entry.lastTime)

	if !entry.lastTime.IsZero() && elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset 重置指定 key 的限流
func (r *RateLimiter) Reset(key string) {
	r.locks.Delete(key)
}

// Sweep 清理超过 maxAge 未活动的 key
func (r *RateLimiter) Sweep(maxAge time.Duration) int {
	removed := 0
	now := r.now()
	r.locks.Range(func(key, value interface{}) bool {
		entry := value.(*lockEntry)
		entry.mu.Lock()
		stale := now.Sub(entry.lastTime) > maxAge
		entry.mu.Unlock()
		if stale {
			r.locks.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// ==================== Key 生成工具 ====================

// StoreMessageKey 生成留言限流 Key
func StoreMessageKey(storeID string, clientIP string) string {
	return fmt.Sprintf("store:%s:message:%s", storeID, clientIP)
}
