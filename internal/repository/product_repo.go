package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
// 所有查询都以 storeID 作为租户边界，跨店铺的 ID 视为不存在
type ProductRepository interface {
	// 基础 CRUD
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, storeID, id int64) (*model.Product, error)
	GetBySlug(ctx context.Context, storeID int64, slug string, activeOnly bool) (*model.Product, error)
	UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error
	ReplaceTags(ctx context.Context, product *model.Product, tags []model.Tag) error
	Delete(ctx context.Context, storeID, id int64) error
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	ExistsBySlug(ctx context.Context, storeID int64, slug string, excludeID int64) (bool, error)

	// 图片操作
	CreateImage(ctx context.Context, image *model.ProductImage) error
	GetImage(ctx context.Context, productID, imageID int64) (*model.ProductImage, error)
	DeleteImage(ctx context.Context, productID, imageID int64) error
	NextImageOrder(ctx context.Context, productID int64) (int, error)

	// 统计
	CountActiveByCategory(ctx context.Context, storeID int64) (map[int64]int64, error)

	// 事务
	WithTx(tx *gorm.DB) ProductRepository
	Transaction(ctx context.Context, fn func(txRepo ProductRepository) error) error
}

// ==================== 过滤条件 ====================

// ProductFilter 商品过滤条件
type ProductFilter struct {
	StoreID    int64
	CategoryID *int64
	ActiveOnly bool
	// 仅下架商品，与 ActiveOnly 互斥
	InactiveOnly bool
	Keyword      string
	Page         int
	PageSize     int // <0 表示不分页
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) withDetail(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Category")
}

func (r *productRepo) GetByID(ctx context.Context, storeID, id int64) (*model.Product, error) {
	var product model.Product
	err := r.withDetail(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetBySlug(ctx context.Context, storeID int64, slug string, activeOnly bool) (*model.Product, error) {
	var product model.Product
	query := r.withDetail(ctx).Where("store_id = ? AND slug = ?", storeID, slug)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateFields 局部更新，map 形式保证 false/0 也会写入
func (r *productRepo) UpdateFields(ctx context.Context, storeID, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("store_id = ? AND id = ?", storeID, id).
		Updates(fields).Error
}

// ReplaceTags 替换商品标签
func (r *productRepo) ReplaceTags(ctx context.Context, product *model.Product, tags []model.Tag) error {
	return r.db.WithContext(ctx).Model(product).Association("Tags").Replace(tags)
}

// Delete 删除商品及其图片、标签关联
func (r *productRepo) Delete(ctx context.Context, storeID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 子表按所属店铺限定，其他店铺的商品 ID 不会误删
		owned := tx.Model(&model.Product{}).Select("id").Where("store_id = ? AND id = ?", storeID, id)
		if err := tx.Exec("DELETE FROM product_tags WHERE product_id IN (?)", owned).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id IN (?)", owned).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Where("store_id = ? AND id = ?", storeID, id).Delete(&model.Product{}).Error
	})
}

func (r *productRepo) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Product{}).Where("store_id = ?", filter.StoreID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	} else if filter.InactiveOnly {
		query = query.Where("is_active = ?", false)
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(sku) LIKE ?)", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("Category").
		Order("created_at DESC, id DESC")

	if filter.PageSize >= 0 {
		if filter.Page <= 0 {
			filter.Page = 1
		}
		if filter.PageSize == 0 {
			filter.PageSize = 20
		}
		query = query.Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize)
	}

	err := query.Find(&products).Error
	return products, total, err
}

func (r *productRepo) ExistsBySlug(ctx context.Context, storeID int64, slug string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Product{}).Where("store_id = ? AND slug = ?", storeID, slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *productRepo) CreateImage(ctx context.Context, image *model.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productRepo) GetImage(ctx context.Context, productID, imageID int64) (*model.ProductImage, error) {
	var image model.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND id = ?", productID, imageID).
		First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productRepo) DeleteImage(ctx context.Context, productID, imageID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND id = ?", productID, imageID).
		Delete(&model.ProductImage{}).Error
}

// NextImageOrder 下一张图片的排序号
func (r *productRepo) NextImageOrder(ctx context.Context, productID int64) (int, error) {
	var maxOrder *int
	err := r.db.WithContext(ctx).
		Model(&model.ProductImage{}).
		Select("MAX(sort_order)").
		Where("product_id = ?", productID).
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return 0, nil
	}
	return *maxOrder + 1, nil
}

// CountActiveByCategory 各分类下的上架商品数
func (r *productRepo) CountActiveByCategory(ctx context.Context, storeID int64) (map[int64]int64, error) {
	type result struct {
		CategoryID int64
		Count      int64
	}
	var results []result

	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("category_id, COUNT(*) as count").
		Where("store_id = ? AND is_active = ? AND category_id IS NOT NULL", storeID, true).
		Group("category_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[int64]int64, len(results))
	for _, r := range results {
		stats[r.CategoryID] = r.Count
	}
	return stats, nil
}

func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepo{db: tx}
}

func (r *productRepo) Transaction(ctx context.Context, fn func(txRepo ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
