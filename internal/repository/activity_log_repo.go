package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== 仓储接口 ====================

// ActivityLogRepository 审计日志仓储接口
// 只提供追加与查询，没有更新和删除
type ActivityLogRepository interface {
	Create(ctx context.Context, log *model.ActivityLog) error
	List(ctx context.Context, filter ActivityLogFilter) ([]model.ActivityLog, int64, error)
	CountByAction(ctx context.Context, storeID int64, since time.Time) (map[model.ActivityAction]int64, error)
}

// ActivityLogFilter 审计日志过滤条件
type ActivityLogFilter struct {
	StoreID  int64
	UserID   int64                // 0 表示不筛选
	Entity   model.ActivityEntity // 空表示不筛选
	Action   model.ActivityAction // 空表示不筛选
	EntityID *int64
	Page     int
	PageSize int
}

// ==================== 仓储实现 ====================

type activityLogRepo struct {
	db *gorm.DB
}

// NewActivityLogRepository 创建审计日志仓储
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Create(ctx context.Context, log *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityLogRepo) List(ctx context.Context, filter ActivityLogFilter) ([]model.ActivityLog, int64, error) {
	var logs []model.ActivityLog
	var total int64

	query := r.db.WithContext(ctx).Model(&model.ActivityLog{}).Where("store_id = ?", filter.StoreID)
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Entity != "" {
		query = query.Where("entity = ?", filter.Entity)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.EntityID != nil {
		query = query.Where("entity_id = ?", *filter.EntityID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	err := query.
		Order("created_at DESC, id DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&logs).Error
	return logs, total, err
}

// CountByAction 统计指定时间之后各操作类型的次数
func (r *activityLogRepo) CountByAction(ctx context.Context, storeID int64, since time.Time) (map[model.ActivityAction]int64, error) {
	type result struct {
		Action model.ActivityAction
		Count  int64
	}
	var results []result

	query := r.db.WithContext(ctx).
		Model(&model.ActivityLog{}).
		Select("action, COUNT(*) as count").
		Where("store_id = ?", storeID)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	if err := query.Group("action").Scan(&results).Error; err != nil {
		return nil, err
	}

	stats := make(map[model.ActivityAction]int64, len(results))
	for _, r := range results {
		stats[r.Action] = r.Count
	}
	return stats, nil
}
