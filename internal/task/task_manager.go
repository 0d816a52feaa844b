package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ==================== Manager 后台任务管理器 ====================

// Job 定时任务
type Job interface {
	Name() string
	Spec() string // cron 表达式 (支持秒)
	Run(ctx context.Context) error
}

// Manager 统一调度后台维护任务
// 管理范围：注销 Token 清理、限流记录回收
type Manager struct {
	cron    *cron.Cron
	logger  *zap.Logger
	timeout time.Duration

	mu   sync.Mutex
	jobs map[string]Job
}

// NewManager 创建任务管理器，timeout 为单次执行上限
func NewManager(logger *zap.Logger, timeout time.Duration) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Manager{
		cron:    cron.New(cron.WithSeconds()), // 支持秒级控制
		logger:  logger.Named("task"),
		timeout: timeout,
		jobs:    make(map[string]Job),
	}
}

// Register 注册任务
func (m *Manager) Register(job Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.jobs[job.Name()]; exists {
		return fmt.Errorf("任务 %s 已注册", job.Name())
	}
	if _, err := m.cron.AddFunc(job.Spec(), func() { m.execute(job) }); err != nil {
		return fmt.Errorf("注册任务 %s 失败: %w", job.Name(), err)
	}
	m.jobs[job.Name()] = job
	return nil
}

// Start 启动调度
func (m *Manager) Start() {
	m.cron.Start()
	m.logger.Info("后台任务已启动", zap.Int("jobs", len(m.jobs)))
}

// Stop 停止调度并等待正在执行的任务结束
func (m *Manager) Stop(ctx context.Context) error {
	stopped := m.cron.Stop()
	select {
	case <-stopped.Done():
		m.logger.Info("后台任务已停止")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("等待后台任务结束超时: %w", ctx.Err())
	}
}

// RunNow 立即执行一次
func (m *Manager) RunNow(ctx context.Context, name string) error {
	m.mu.Lock()
	job, ok := m.jobs[name]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("任务 %s 不存在", name)
	}
	return job.Run(ctx)
}

func (m *Manager) execute(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("任务 panic", zap.String("job", job.Name()), zap.Any("panic", r))
		}
	}()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		m.logger.Error("任务执行失败", zap.String("job", job.Name()), zap.Error(err))
		return
	}
	m.logger.Debug("任务执行完成", zap.String("job", job.Name()), zap.Duration("cost", time.Since(start)))
}
