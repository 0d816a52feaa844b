package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// StoreMemberRepository 店铺成员仓储接口
type StoreMemberRepository interface {
	Create(ctx context.Context, member *model.StoreMember) error
	GetByID(ctx context.Context, storeID, id int64) (*model.StoreMember, error)
	GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.StoreMember, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.StoreMember, error)
	UpdateRole(ctx context.Context, storeID, id int64, role model.Role) error
	Delete(ctx context.Context, storeID, id int64) error
}

type storeMemberRepo struct {
	db *gorm.DB
}

// NewStoreMemberRepository 创建店铺成员仓储
func NewStoreMemberRepository(db *gorm.DB) StoreMemberRepository {
	return &storeMemberRepo{db: db}
}

func (r *storeMemberRepo) Create(ctx context.Context, member *model.StoreMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *storeMemberRepo) GetByID(ctx context.Context, storeID, id int64) (*model.StoreMember, error) {
	var member model.StoreMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ? AND id = ?", storeID, id).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByUserAndStore 按 (user, store) 唯一键查找成员关系，不存在返回 nil
func (r *storeMemberRepo) GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.StoreMember, error) {
	var member model.StoreMember
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *storeMemberRepo) ListByStore(ctx context.Context, storeID int64) ([]model.StoreMember, error) {
	var members []model.StoreMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&members).Error
	return members, err
}

func (r *storeMemberRepo) UpdateRole(ctx context.Context, storeID, id int64, role model.Role) error {
	return r.db.WithContext(ctx).
		Model(&model.StoreMember{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Update("role", role).Error
}

func (r *storeMemberRepo) Delete(ctx context.Context, storeID, id int64) error {
	return r.db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		Delete(&model.StoreMember{}).Error
}
