package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// MessageRepository 店铺留言仓储接口
type MessageRepository interface {
	Create(ctx context.Context, msg *model.StoreMessage) error
	GetByID(ctx context.Context, storeID, id int64) (*model.StoreMessage, error)
	List(ctx context.Context, filter MessageFilter) ([]model.StoreMessage, int64, error)
	MarkRead(ctx context.Context, storeID, id int64) error
	Delete(ctx context.Context, storeID, id int64) error
	CountUnread(ctx context.Context, storeID int64) (int64, error)
}

// MessageFilter 留言过滤条件
type MessageFilter struct {
	StoreID    int64
	UnreadOnly bool
	Page       int
	PageSize   int
}

type messageRepo struct {
	db *gorm.DB
}

// NewMessageRepository 创建留言仓储
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *model.StoreMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepo) GetByID(ctx context.Context, storeID, id int64) (*model.StoreMessage, error) {
	var msg model.StoreMessage
	err := r.db.WithContext(ctx).Where("store_id = ? AND id = ?", storeID, id).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepo) List(ctx context.Context, filter MessageFilter) ([]model.StoreMessage, int64, error) {
	var messages []model.StoreMessage
	var total int64

	query := r.db.WithContext(ctx).Model(&model.StoreMessage{}).Where("store_id = ?", filter.StoreID)
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	err := query.
		Order("created_at DESC, id DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&messages).Error
	return messages, total, err
}

func (r *messageRepo) MarkRead(ctx context.Context, storeID, id int64) error {
	return r.db.WithContext(ctx).Model(&model.StoreMessage{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Update("is_read", true).Error
}

func (r *messageRepo) Delete(ctx context.Context, storeID, id int64) error {
	return r.db.WithContext(ctx).Where("store_id = ? AND id = ?", storeID, id).Delete(&model.StoreMessage{}).Error
}

func (r *messageRepo) CountUnread(ctx context.Context, storeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StoreMessage{}).
		Where("store_id = ? AND is_read = ?", storeID, false).
		Count(&count).Error
	return count, err
}
