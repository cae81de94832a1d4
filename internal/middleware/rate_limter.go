package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== CooldownLimiter 冷却限流器 ====================

// CooldownLimiter 按键冷却的限流器
// 防止同一设备频繁调用顾问接口
type CooldownLimiter struct {
	locks sync.Map // key -> *lockEntry
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

func NewCooldownLimiter() *CooldownLimiter {
	return &CooldownLimiter{}
}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行，允许时记录本次时间
// key: 限流键，如 "device:abc:advisor"
func (r *CooldownLimiter) Check(key string, interval time.Duration) CheckResult {
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
	return CheckResult{Allowed: true}
}

// Reset 重置指定 key 的限流
func (r *CooldownLimiter) Reset(key string) {
	r.locks.Delete(key)
}

// Prune 清理超过 maxAge 未使用的条目
func (r *CooldownLimiter) Prune(maxAge time.Duration) int {
	removed := 0
	r.locks.Range(func(k, v interface{}) bool {
		entry := v.(*lockEntry)
		entry.mu.Lock()
		stale := time.Since(entry.lastTime) > maxAge
		entry.mu.Unlock()
		if stale {
			r.locks.Delete(k)
			removed++
		}
		return true
	})
	return removed
}

// DeviceActionKey 设备 + 动作维度的限流键
func DeviceActionKey(deviceID, action string) string {
	return fmt.Sprintf("device:%s:%s", deviceID, action)
}

// ==================== 中间件 ====================

// DeviceCooldown 按设备限流，需在 DeviceIdentity 之后使用
//
//	api.POST("/advisor/ask", middleware.DeviceCooldown(limiter, "advisor", 2*time.Second), ctl.Ask)
func DeviceCooldown(limiter *CooldownLimiter, action string, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := DeviceActionKey(GetDeviceID(c), action)

		result := limiter.Check(key, interval)
		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": formatRetryMessage(result.RetryAfter),
				"data": gin.H{
					"retry_after_ms": result.RetryAfter.Milliseconds(),
					"action":         action,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func formatRetryMessage(d time.Duration) string {
	if d < time.Second {
		return "操作过于频繁，请稍后再试"
	}
	return fmt.Sprintf("操作过于频繁，请 %d 秒后再试", int(d.Seconds()+0.5))
}
