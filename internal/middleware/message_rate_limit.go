package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultMessageInterval 同一访客向同一店铺留言的默认冷却时间
const DefaultMessageInterval = 30 * time.Second

// ==================== 留言限流中间件 ====================

// MessageRateLimit 店铺留言限流中间件
// 按 店铺 + 客户端 IP 维度进行限流
//
// 使用示例:
//
//	stores.POST("/:storeId/messages",
//	    middleware.MessageRateLimit(limiter, 0),
//	    messageCtl.Submit,
//	)
func MessageRateLimit(limiter *RateLimiter, interval time.Duration) gin.HandlerFunc {
	if interval <= 0 {
		interval = DefaultMessageInterval
	}

	return func(c *gin.Context) {
		storeID := c.Param("storeId")
		if _, err := strconv.ParseInt(storeID, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的店铺 ID",
			})
			c.Abort()
			return
		}

		result := limiter.Check(StoreMessageKey(storeID, c.ClientIP()), interval)
		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": formatRetryMessage(result.RetryAfter),
				"data": gin.H{
					"retry_after": retryAfter,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	if seconds < 60 {
		return fmt.Sprintf("提交过于频繁，请 %d 秒后重试", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60

	if remainingSeconds == 0 {
		return fmt.Sprintf("提交过于频繁，请 %d 分钟后重试", minutes)
	}

	return fmt.Sprintf("提交过于频繁，请 %d 分 %d 秒后重试", minutes, remainingSeconds)
}
