package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// ==================== ActivityLogger 审计日志 ====================

// ActivityEntry 一条待记录的操作
type ActivityEntry struct {
	StoreID  int64
	UserID   int64
	UserName string
	Action   model.ActivityAction
	Entity   model.ActivityEntity
	EntityID *int64
	Details  map[string]interface{}
}

// ActivityWriter 审计日志持久化
type ActivityWriter interface {
	Create(ctx context.Context, log *model.ActivityLog) error
}

// ActivityLoggerConfig 配置
type ActivityLoggerConfig struct {
	QueueSize    int           // 队列容量，满时丢弃
	WriteTimeout time.Duration // 单次写入超时
}

// ActivityStats 运行统计
type ActivityStats struct {
	Recorded uint64 `json:"recorded"`
	Failed   uint64 `json:"failed"`
	Dropped  uint64 `json:"dropped"`
}

// ActivityLogger 异步审计记录器
// Record 不阻塞、不返回错误、不向调用方抛出 panic；失败只写入 zap 日志
type ActivityLogger struct {
	writer  ActivityWriter
	logger  *zap.Logger
	timeout time.Duration

	queue  chan *model.ActivityLog
	done   chan struct{}
	mu     sync.RWMutex
	closed bool

	recorded atomic.Uint64
	failed   atomic.Uint64
	dropped  atomic.Uint64
}

// NewActivityLogger 创建并启动审计记录器
func NewActivityLogger(writer ActivityWriter, logger *zap.Logger, cfg ActivityLoggerConfig) *ActivityLogger {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &ActivityLogger{
		writer:  writer,
		logger:  logger.Named("activity"),
		timeout: cfg.WriteTimeout,
		queue:   make(chan *model.ActivityLog, cfg.QueueSize),
		done:    make(chan struct{}),
	}
	go l.run()
	return l
}

// Record 记录一条操作
// ctx 仅用于补全操作人信息，写入使用独立的 context
func (l *ActivityLogger) Record(ctx context.Context, entry ActivityEntry) {
	if l == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			l.failed.Add(1)
			l.logger.Error("审计记录 panic", zap.Any("panic", r), zap.Int64("store_id", entry.StoreID))
		}
	}()

	if entry.UserID == 0 {
		if identity := middleware.IdentityFromContext(ctx); identity != nil {
			entry.UserID = identity.UserID
			entry.UserName = identity.Name
		}
	}

	log, err := buildActivityLog(entry)
	if err != nil {
		l.failed.Add(1)
		l.logger.Warn("审计记录无效", zap.Error(err),
			zap.Int64("store_id", entry.StoreID),
			zap.String("action", string(entry.Action)),
			zap.String("entity", string(entry.Entity)),
		)
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		l.dropped.Add(1)
		l.logger.Warn("审计记录器已关闭，丢弃记录", activityFields(log)...)
		return
	}

	select {
	case l.queue <- log:
	default:
		l.dropped.Add(1)
		l.logger.Warn("审计队列已满，丢弃记录", activityFields(log)...)
	}
}

// Stats 运行统计
func (l *ActivityLogger) Stats() ActivityStats {
	return ActivityStats{
		Recorded: l.recorded.Load(),
		Failed:   l.failed.Load(),
		Dropped:  l.dropped.Load(),
	}
}

// Close 停止接收新记录并等待队列写完
func (l *ActivityLogger) Close(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("等待审计队列写入超时: %w", ctx.Err())
	}
}

func (l *ActivityLogger) run() {
	defer close(l.done)
	for log := range l.queue {
		l.write(log)
	}
}

func (l *ActivityLogger) write(log *model.ActivityLog) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			l.failed.Add(1)
			l.logger.Error("审计写入 panic", append(activityFields(log), zap.Any("panic", r))...)
		}
	}()

	if err := l.writer.Create(ctx, log); err != nil {
		l.failed.Add(1)
		l.logger.Error("审计写入失败", append(activityFields(log), zap.Error(err))...)
		return
	}
	l.recorded.Add(1)
}

func buildActivityLog(entry ActivityEntry) (*model.ActivityLog, error) {
	if entry.StoreID <= 0 {
		return nil, errors.New("缺少店铺 ID")
	}
	if !entry.Action.Valid() {
		return nil, fmt.Errorf("未知的操作类型: %q", entry.Action)
	}
	if !entry.Entity.Valid() {
		return nil, fmt.Errorf("未知的实体类型: %q", entry.Entity)
	}

	log := &model.ActivityLog{
		CreatedAt: time.Now(),
		StoreID:   entry.StoreID,
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
	}
	if len(entry.Details) > 0 {
		raw, err := json.Marshal(entry.Details)
		if err != nil {
			return nil, fmt.Errorf("序列化详情失败: %w", err)
		}
		log.Details = datatypes.JSON(raw)
	}
	return log, nil
}

func activityFields(log *model.ActivityLog) []zap.Field {
	fields := []zap.Field{
		zap.Int64("store_id", log.StoreID),
		zap.Int64("user_id", log.UserID),
		zap.String("action", string(log.Action)),
		zap.String("entity", string(log.Entity)),
	}
	if log.EntityID != nil {
		fields = append(fields, zap.Int64("entity_id", *log.EntityID))
	}
	return fields
}

// newActivity 以当前访问身份构造审计记录
func newActivity(access *Access, storeID int64, action model.ActivityAction, entity model.ActivityEntity, entityID int64, details map[string]interface{}) ActivityEntry {
	entry := ActivityEntry{
		StoreID: storeID,
		Action:  action,
		Entity:  entity,
		Details: withoutAuditColumns(details),
	}
	if access != nil && access.Identity != nil {
		entry.UserID = access.Identity.UserID
		entry.UserName = access.Identity.Name
	}
	if entityID > 0 {
		id := entityID
		entry.EntityID = &id
	}
	return entry
}

// withoutAuditColumns 去掉 gorm 审计回调追加到 Updates map 中的列
func withoutAuditColumns(details map[string]interface{}) map[string]interface{} {
	if _, ok := details["updated_by"]; !ok {
		return details
	}
	out := make(map[string]interface{}, len(details))
	for k, v := range details {
		if k != "updated_by" {
			out[k] = v
		}
	}
	return out
}

// ==================== ActivityService 审计查询 ====================

// ActivityService 审计日志查询
type ActivityService struct {
	guard *AccessGuard
	repo  repository.ActivityLogRepository
}

// NewActivityService 创建审计查询服务
func NewActivityService(guard *AccessGuard, repo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{guard: guard, repo: repo}
}

// List 分页查询店铺审计日志，需要 Editor
func (s *ActivityService) List(ctx context.Context, storeID int64, req dto.ActivityListReq) (*dto.PageResp[model.ActivityLog], error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor); err != nil {
		return nil, err
	}

	filter := repository.ActivityLogFilter{
		StoreID:  storeID,
		UserID:   req.UserID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Entity != "" {
		entity := model.ActivityEntity(req.Entity)
		if !entity.Valid() {
			return nil, invalidInput("未知的实体类型 " + req.Entity)
		}
		filter.Entity = entity
	}
	if req.Action != "" {
		action := model.ActivityAction(req.Action)
		if !action.Valid() {
			return nil, invalidInput("未知的操作类型 " + req.Action)
		}
		filter.Action = action
	}

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询审计日志失败: %w", err)
	}
	return dto.NewPageResp(logs, total, req.Page, req.PageSize), nil
}

// Summary 最近 7 天各操作次数，需要 Editor
func (s *ActivityService) Summary(ctx context.Context, storeID int64) (map[model.ActivityAction]int64, error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor); err != nil {
		return nil, err
	}
	return s.repo.CountByAction(ctx, storeID, time.Now().AddDate(0, 0, -7))
}
