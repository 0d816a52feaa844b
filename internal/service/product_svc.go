package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
	"github.com/asad200-stack/ONEWEB/pkg/utils"
)

// ProductService 商品管理 (后台)
type ProductService struct {
	guard      *AccessGuard
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	storage    *StorageService
	activity   *ActivityLogger
	logger     *zap.Logger
}

// NewProductService storage 为空时图片上传返回 ErrStorageDisabled
func NewProductService(
	guard *AccessGuard,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	storage *StorageService,
	activity *ActivityLogger,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		guard:      guard,
		products:   products,
		categories: categories,
		tags:       tags,
		storage:    storage,
		activity:   activity,
		logger:     logger.Named("product"),
	}
}

// ==================== 查询 ====================

// List 后台商品列表，包含下架商品，需要 Viewer
func (s *ProductService) List(ctx context.Context, storeID int64, req dto.ProductListReq) (*dto.PageResp[model.Product], error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer); err != nil {
		return nil, err
	}

	filter := repository.ProductFilter{
		StoreID:    storeID,
		CategoryID: req.CategoryID,
		Keyword:    strings.TrimSpace(req.Keyword),
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if req.Active != nil {
		filter.ActiveOnly = *req.Active
		filter.InactiveOnly = !*req.Active
	}

	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	return dto.NewPageResp(products, total, req.Page, pageSize), nil
}

// Get 商品详情，需要 Viewer；其他店铺的商品视为不存在
func (s *ProductService) Get(ctx context.Context, storeID, productID int64) (*model.Product, error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer); err != nil {
		return nil, err
	}
	return s.mustGet(ctx, storeID, productID)
}

func (s *ProductService) mustGet(ctx context.Context, storeID, productID int64) (*model.Product, error) {
	product, err := s.products.GetByID(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("商品")
	}
	return product, nil
}

// ==================== 写操作 ====================

// Create 创建商品，需要 Editor
func (s *ProductService) Create(ctx context.Context, storeID int64, req *dto.ProductCreateReq) (*model.Product, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	slug, err := s.resolveSlug(ctx, storeID, req.Slug, req.Name, 0)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil && *req.CategoryID > 0 {
		if err := s.checkCategory(ctx, storeID, *req.CategoryID); err != nil {
			return nil, err
		}
	}
	tags, err := s.loadTags(ctx, storeID, req.TagIDs)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		StoreID:        storeID,
		Name:           strings.TrimSpace(req.Name),
		Slug:           slug,
		Description:    req.Description,
		Specifications: req.Specifications,
		SKU:            req.SKU,
		Price:          req.Price,
		DiscountActive: req.DiscountActive,
		Currency:       strings.ToUpper(req.Currency),
		Stock:          req.Stock,
		IsActive:       true,
	}
	if product.Currency == "" {
		product.Currency = model.DefaultCurrency
	}
	if req.DiscountedPrice != nil && *req.DiscountedPrice > 0 {
		price := *req.DiscountedPrice
		product.DiscountedPrice = &price
	}
	if req.CategoryID != nil && *req.CategoryID > 0 {
		product.CategoryID = req.CategoryID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	for i, url := range req.Images {
		product.Images = append(product.Images, model.ProductImage{URL: url, SortOrder: i})
	}

	err = s.products.Transaction(ctx, func(tx repository.ProductRepository) error {
		if err := tx.Create(ctx, product); err != nil {
			return translateDuplicate(err, ErrSlugExists)
		}
		if len(tags) > 0 {
			return tx.ReplaceTags(ctx, product, tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionCreate, model.EntityProduct, product.ID,
		map[string]interface{}{"name": product.Name, "slug": product.Slug}))

	return s.mustGet(ctx, storeID, product.ID)
}

// Update 局部更新商品，需要 Editor
// 只修改 is_active 时记录 activate/deactivate，其余记录 update；并发修改以最后一次写入为准
func (s *ProductService) Update(ctx context.Context, storeID, productID int64, req *dto.ProductUpdateReq) (*model.Product, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	product, err := s.mustGet(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return product, nil
	}

	fields, err := s.buildUpdateFields(ctx, product, req)
	if err != nil {
		return nil, err
	}

	var tags []model.Tag
	if req.TagIDs != nil {
		if tags, err = s.loadTags(ctx, storeID, *req.TagIDs); err != nil {
			return nil, err
		}
	}

	err = s.products.Transaction(ctx, func(tx repository.ProductRepository) error {
		if err := tx.UpdateFields(ctx, storeID, productID, fields); err != nil {
			return translateDuplicate(err, ErrSlugExists)
		}
		if req.TagIDs != nil {
			return tx.ReplaceTags(ctx, product, tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, s.updateActivity(access, storeID, productID, req, fields))

	return s.mustGet(ctx, storeID, productID)
}

func (s *ProductService) buildUpdateFields(ctx context.Context, product *model.Product, req *dto.ProductUpdateReq) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil && *req.Slug != product.Slug {
		slug, err := s.resolveSlug(ctx, product.StoreID, *req.Slug, "", product.ID)
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Specifications != nil {
		fields["specifications"] = *req.Specifications
	}
	if req.SKU != nil {
		fields["sku"] = *req.SKU
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.DiscountedPrice != nil {
		if *req.DiscountedPrice > 0 {
			fields["discounted_price"] = *req.DiscountedPrice
		} else {
			fields["discounted_price"] = nil
		}
	}
	if req.DiscountActive != nil {
		fields["discount_active"] = *req.DiscountActive
	}
	if req.Currency != nil {
		fields["currency"] = strings.ToUpper(*req.Currency)
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.CategoryID != nil {
		if *req.CategoryID <= 0 {
			fields["category_id"] = nil
		} else {
			if err := s.checkCategory(ctx, product.StoreID, *req.CategoryID); err != nil {
				return nil, err
			}
			fields["category_id"] = *req.CategoryID
		}
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	return fields, nil
}

func (s *ProductService) updateActivity(access *Access, storeID, productID int64, req *dto.ProductUpdateReq, fields map[string]interface{}) ActivityEntry {
	if req.OnlyActiveToggle() {
		action := model.ActionDeactivate
		if *req.IsActive {
			action = model.ActionActivate
		}
		return newActivity(access, storeID, action, model.EntityProduct, productID, nil)
	}

	changed := make([]string, 0, len(fields)+1)
	for k := range fields {
		if k != "updated_by" {
			changed = append(changed, k)
		}
	}
	if req.TagIDs != nil {
		changed = append(changed, "tags")
	}
	sort.Strings(changed)
	return newActivity(access, storeID, model.ActionUpdate, model.EntityProduct, productID,
		map[string]interface{}{"fields": changed})
}

// Delete 删除商品，需要 Editor
func (s *ProductService) Delete(ctx context.Context, storeID, productID int64) error {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return err
	}

	product, err := s.mustGet(ctx, storeID, productID)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, storeID, productID); err != nil {
		return fmt.Errorf("删除商品失败: %w", err)
	}

	// 文件清理失败不影响删除结果
	for _, img := range product.Images {
		s.removeFile(ctx, img.URL)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionDelete, model.EntityProduct, productID,
		map[string]interface{}{"name": product.Name, "slug": product.Slug}))
	return nil
}

// ==================== 图片 ====================

// UploadImage 上传商品图片，需要 Editor
func (s *ProductService) UploadImage(ctx context.Context, storeID, productID int64, filename string, data []byte) (*model.ProductImage, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	if _, err := s.mustGet(ctx, storeID, productID); err != nil {
		return nil, err
	}

	contentType, ext, err := utils.DetectImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if name == "" || name == "." {
		name = uuid.NewString()
	}
	url, err := s.storage.Upload(ctx, data, name+ext, contentType)
	if err != nil {
		return nil, fmt.Errorf("上传图片失败: %w", err)
	}

	order, err := s.products.NextImageOrder(ctx, productID)
	if err != nil {
		s.removeFile(ctx, url)
		return nil, err
	}

	image := &model.ProductImage{ProductID: productID, URL: url, SortOrder: order}
	if err := s.products.CreateImage(ctx, image); err != nil {
		s.removeFile(ctx, url)
		return nil, fmt.Errorf("保存图片失败: %w", err)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionCreate, model.EntityImage, image.ID,
		map[string]interface{}{"product_id": productID, "url": url}))
	return image, nil
}

// DeleteImage 删除商品图片，需要 Editor
func (s *ProductService) DeleteImage(ctx context.Context, storeID, productID, imageID int64) error {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return err
	}

	if _, err := s.mustGet(ctx, storeID, productID); err != nil {
		return err
	}

	image, err := s.products.GetImage(ctx, productID, imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return notFound("图片")
	}

	if err := s.products.DeleteImage(ctx, productID, imageID); err != nil {
		return fmt.Errorf("删除图片失败: %w", err)
	}
	s.removeFile(ctx, image.URL)

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionDelete, model.EntityImage, imageID,
		map[string]interface{}{"product_id": productID}))
	return nil
}

func (s *ProductService) removeFile(ctx context.Context, url string) {
	if s.storage == nil || url == "" {
		return
	}
	if err := s.storage.Delete(ctx, url); err != nil {
		s.logger.Warn("删除存储文件失败", zap.String("url", url), zap.Error(err))
	}
}

// ==================== 辅助 ====================

func (s *ProductService) resolveSlug(ctx context.Context, storeID int64, requested, name string, excludeID int64) (string, error) {
	return scopedSlug(requested, name, "product", func(slug string) (bool, error) {
		return s.products.ExistsBySlug(ctx, storeID, slug, excludeID)
	})
}

func (s *ProductService) checkCategory(ctx context.Context, storeID, categoryID int64) error {
	category, err := s.categories.GetByID(ctx, storeID, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return invalidInput("分类不存在")
	}
	return nil
}

// loadTags 只接受当前店铺的标签
func (s *ProductService) loadTags(ctx context.Context, storeID int64, ids []int64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	unique := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	tags, err := s.tags.GetByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, invalidInput("包含不存在的标签")
	}
	return tags, nil
}

// IsNotFound 是否为资源不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
