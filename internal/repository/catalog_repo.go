package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== CategoryRepository 分类仓储 ====================

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, storeID, id int64) (*model.Category, error)
	GetBySlug(ctx context.Context, storeID int64, slug string) (*model.Category, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.Category, error)
	ExistsBySlug(ctx context.Context, storeID int64, slug string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, storeID, id int64) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, storeID, id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("store_id = ? AND id = ?", storeID, id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) GetBySlug(ctx context.Context, storeID int64, slug string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("store_id = ? AND slug = ?", storeID, slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) ListByStore(ctx context.Context, storeID int64) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) ExistsBySlug(ctx context.Context, storeID int64, slug string, excludeID int64) (bool, error) {
	return existsBySlug(r.db.WithContext(ctx).Model(&model.Category{}), storeID, slug, excludeID)
}

func (r *categoryRepo) UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Updates(fields).Error
}

// Delete 删除分类，商品的 category_id 置空
func (r *categoryRepo) Delete(ctx context.Context, storeID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).
			Where("store_id = ? AND category_id = ?", storeID, id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("store_id = ? AND id = ?", storeID, id).Delete(&model.Category{}).Error
	})
}

// ==================== TagRepository 标签仓储 ====================

// TagRepository 标签仓储接口
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	GetByID(ctx context.Context, storeID, id int64) (*model.Tag, error)
	GetByIDs(ctx context.Context, storeID int64, ids []int64) ([]model.Tag, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.Tag, error)
	ExistsBySlug(ctx context.Context, storeID int64, slug string, excludeID int64) (bool, error)
	UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, storeID, id int64) error
}

type tagRepo struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓储
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepo) GetByID(ctx context.Context, storeID, id int64) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where("store_id = ? AND id = ?", storeID, id).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs 批量获取本店铺的标签，不属于本店铺的 ID 会被忽略
func (r *tagRepo) GetByIDs(ctx context.Context, storeID int64, ids []int64) ([]model.Tag, error) {
	var tags []model.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("store_id = ? AND id IN ?", storeID, ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepo) ListByStore(ctx context.Context, storeID int64) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepo) ExistsBySlug(ctx context.Context, storeID int64, slug string, excludeID int64) (bool, error) {
	return existsBySlug(r.db.WithContext(ctx).Model(&model.Tag{}), storeID, slug, excludeID)
}

func (r *tagRepo) UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Tag{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Updates(fields).Error
}

// Delete 删除标签及其商品关联
func (r *tagRepo) Delete(ctx context.Context, storeID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("store_id = ? AND id = ?", storeID, id).Delete(&model.Tag{}).Error
	})
}

// ==================== BannerRepository 促销横幅仓储 ====================

// BannerRepository 促销横幅仓储接口
type BannerRepository interface {
	Create(ctx context.Context, banner *model.PromotionalBanner) error
	GetByID(ctx context.Context, storeID, id int64) (*model.PromotionalBanner, error)
	ListByStore(ctx context.Context, storeID int64, activeOnly bool) ([]model.PromotionalBanner, error)
	UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, storeID, id int64) error
}

type bannerRepo struct {
	db *gorm.DB
}

// NewBannerRepository 创建促销横幅仓储
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepo{db: db}
}

func (r *bannerRepo) Create(ctx context.Context, banner *model.PromotionalBanner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepo) GetByID(ctx context.Context, storeID, id int64) (*model.PromotionalBanner, error) {
	var banner model.PromotionalBanner
	err := r.db.WithContext(ctx).Where("store_id = ? AND id = ?", storeID, id).First(&banner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepo) ListByStore(ctx context.Context, storeID int64, activeOnly bool) ([]model.PromotionalBanner, error) {
	var banners []model.PromotionalBanner
	query := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("sort_order ASC, id ASC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.PromotionalBanner{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Updates(fields).Error
}

func (r *bannerRepo) Delete(ctx context.Context, storeID, id int64) error {
	return r.db.WithContext(ctx).Where("store_id = ? AND id = ?", storeID, id).Delete(&model.PromotionalBanner{}).Error
}

// ==================== 工具函数 ====================

func existsBySlug(query *gorm.DB, storeID int64, slug string, excludeID int64) (bool, error) {
	query = query.Where("store_id = ? AND slug = ?", storeID, slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
