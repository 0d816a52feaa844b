package task

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// ==================== 注销 Token 清理 ====================

// TokenCleanupTask 删除已过期的注销记录
// 过期的 Token 本身已无法通过校验，记录可以安全删除
type TokenCleanupTask struct {
	revoked repository.RevokedTokenRepository
	logger  *zap.Logger
	now     func() time.Time
}

func NewTokenCleanupTask(revoked repository.RevokedTokenRepository, logger *zap.Logger) *TokenCleanupTask {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenCleanupTask{revoked: revoked, logger: logger, now: time.Now}
}

func (t *TokenCleanupTask) Name() string { return "revoked_token_cleanup" }

// Spec 每小时整点
func (t *TokenCleanupTask) Spec() string { return "0 0 * * * *" }

func (t *TokenCleanupTask) Run(ctx context.Context) error {
	deleted, err := t.revoked.DeleteExpired(ctx, t.now())
	if err != nil {
		return fmt.Errorf("清理注销 Token 失败: %w", err)
	}
	if deleted > 0 {
		t.logger.Info("已清理过期的注销 Token", zap.Int64("count", deleted))
	}
	return nil
}

// ==================== 限流记录回收 ====================

// LimiterSweepTask 回收长时间未访问的限流记录
type LimiterSweepTask struct {
	limiter *middleware.RateLimiter
	maxAge  time.Duration
	logger  *zap.Logger
}

func NewLimiterSweepTask(limiter *middleware.RateLimiter, maxAge time.Duration, logger *zap.Logger) *LimiterSweepTask {
	if maxAge <= 0 {
		maxAge = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LimiterSweepTask{limiter: limiter, maxAge: maxAge, logger: logger}
}

func (t *LimiterSweepTask) Name() string { return "rate_limiter_sweep" }

// Spec 每 10 分钟
func (t *LimiterSweepTask) Spec() string { return "0 */10 * * * *" }

func (t *LimiterSweepTask) Run(ctx context.Context) error {
	if removed := t.limiter.Sweep(t.maxAge); removed > 0 {
		t.logger.Debug("已回收限流记录", zap.Int("count", removed))
	}
	return nil
}
