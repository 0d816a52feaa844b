package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== 接口定义 ====================

// StoreRepository 店铺仓储接口
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	GetBySlug(ctx context.Context, slug string) (*model.Store, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	UpdateSettings(ctx context.Context, storeID int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error

	// 权限相关
	GetOwnerID(ctx context.Context, storeID int64) (ownerID int64, found bool, err error)
	ListAccessible(ctx context.Context, userID int64) ([]AccessibleStore, error)
}

// AccessibleStore 用户可访问的店铺及其成员角色
// MemberRole 为空表示该用户是店主
type AccessibleStore struct {
	Store      model.Store
	MemberRole model.Role
}

// ==================== 仓储实现 ====================

type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepository 创建店铺仓储
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

// Create 创建店铺，Settings 一并写入
func (r *storeRepo) Create(ctx context.Context, store *model.Store) error {
	if store.Settings == nil {
		store.Settings = model.DefaultStoreSettings()
	}
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepo) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).Preload("Settings").First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) GetBySlug(ctx context.Context, slug string) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).Preload("Settings").Where("slug = ?", slug).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Store{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *storeRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Store{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateSettings 更新店铺设置，不存在时按默认值创建
func (r *storeRepo) UpdateSettings(ctx context.Context, storeID int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings model.StoreSettings
		err := tx.Where("store_id = ?", storeID).First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = *model.DefaultStoreSettings()
			settings.StoreID = storeID
			if err := tx.Create(&settings).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&model.StoreSettings{}).Where("id = ?", settings.ID).Updates(fields).Error
	})
}

// Delete 删除店铺及其全部租户数据
// 审计日志保留
func (r *storeRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []int64
		if err := tx.Model(&model.Product{}).Where("store_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Exec("DELETE FROM product_tags WHERE product_id IN ?", productIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id IN ?", productIDs).Delete(&model.ProductImage{}).Error; err != nil {
				return err
			}
		}

		tenantModels := []interface{}{
			&model.Product{}, &model.Category{}, &model.Tag{},
			&model.PromotionalBanner{}, &model.StoreMessage{},
			&model.StoreMember{}, &model.StoreSettings{},
		}
		for _, m := range tenantModels {
			if err := tx.Where("store_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Store{}, id).Error
	})
}

// GetOwnerID 获取店主 ID
func (r *storeRepo) GetOwnerID(ctx context.Context, storeID int64) (int64, bool, error) {
	var store model.Store
	err := r.db.WithContext(ctx).Select("id", "owner_id").First(&store, storeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return store.OwnerID, true, nil
}

// ListAccessible 列出用户拥有或加入的店铺
func (r *storeRepo) ListAccessible(ctx context.Context, userID int64) ([]AccessibleStore, error) {
	var owned []model.Store
	if err := r.db.WithContext(ctx).
		Preload("Settings").
		Where("owner_id = ?", userID).
		Order("id ASC").
		Find(&owned).Error; err != nil {
		return nil, err
	}

	var members []model.StoreMember
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Store.Settings").
		Where("user_id = ?", userID).
		Order("store_id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	result := make([]AccessibleStore, 0, len(owned)+len(members))
	seen := make(map[int64]bool, len(owned))
	for _, s := range owned {
		seen[s.ID] = true
		result = append(result, AccessibleStore{Store: s})
	}
	for _, m := range members {
		if m.Store == nil || seen[m.StoreID] {
			continue
		}
		seen[m.StoreID] = true
		result = append(result, AccessibleStore{Store: *m.Store, MemberRole: m.Role})
	}
	return result, nil
}
