package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
	"github.com/asad200-stack/ONEWEB/pkg/utils"
)

// CatalogService 分类、标签、促销横幅
// 列表需要 Viewer，写操作需要 Editor
type CatalogService struct {
	guard      *AccessGuard
	categories repository.CategoryRepository
	tags       repository.TagRepository
	banners    repository.BannerRepository
	products   repository.ProductRepository
	activity   *ActivityLogger
}

func NewCatalogService(
	guard *AccessGuard,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	banners repository.BannerRepository,
	products repository.ProductRepository,
	activity *ActivityLogger,
) *CatalogService {
	return &CatalogService{
		guard:      guard,
		categories: categories,
		tags:       tags,
		banners:    banners,
		products:   products,
		activity:   activity,
	}
}

// ==================== Category ====================

// ListCategories 分类列表，附带上架商品数
func (s *CatalogService) ListCategories(ctx context.Context, storeID int64) ([]dto.CategoryResp, error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer); err != nil {
		return nil, err
	}

	categories, err := s.categories.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	counts, err := s.products.CountActiveByCategory(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("统计分类商品失败: %w", err)
	}

	list := make([]dto.CategoryResp, 0, len(categories))
	for i := range categories {
		list = append(list, toCategoryResp(&categories[i], counts[categories[i].ID]))
	}
	return list, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, storeID int64, req *dto.CategoryReq) (*dto.CategoryResp, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	slug, err := scopedSlug(req.Slug, req.Name, "category", func(slug string) (bool, error) {
		return s.categories.ExistsBySlug(ctx, storeID, slug, 0)
	})
	if err != nil {
		return nil, err
	}

	category := &model.Category{
		StoreID:     storeID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, translateDuplicate(err, ErrSlugExists)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionCreate, model.EntityCategory, category.ID,
		map[string]interface{}{"name": category.Name}))

	resp := toCategoryResp(category, 0)
	return &resp, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, storeID, categoryID int64, req *dto.CategoryReq) (*dto.CategoryResp, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFound("分类")
	}

	fields := map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"image":       req.Image,
	}
	if req.Slug != "" && req.Slug != category.Slug {
		slug, err := scopedSlug(req.Slug, "", "category", func(slug string) (bool, error) {
			return s.categories.ExistsBySlug(ctx, storeID, slug, categoryID)
		})
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}

	if err := s.categories.UpdateFields(ctx, storeID, categoryID, fields); err != nil {
		return nil, translateDuplicate(err, ErrSlugExists)
	}
	s.activity.Record(ctx, newActivity(access, storeID, model.ActionUpdate, model.EntityCategory, categoryID,
		map[string]interface{}{"name": fields["name"]}))

	updated, err := s.categories.GetByID(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("分类")
	}
	resp := toCategoryResp(updated, 0)
	return &resp, nil
}

// DeleteCategory 删除分类，所属商品变为未分类
func (s *CatalogService) DeleteCategory(ctx context.Context, storeID, categoryID int64) error {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return err
	}

	category, err := s.categories.GetByID(ctx, storeID, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return notFound("分类")
	}
	if err := s.categories.Delete(ctx, storeID, categoryID); err != nil {
		return fmt.Errorf("删除分类失败: %w", err)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionDelete, model.EntityCategory, categoryID,
		map[string]interface{}{"name": category.Name}))
	return nil
}

// ==================== Tag ====================

func (s *CatalogService) ListTags(ctx context.Context, storeID int64) ([]model.Tag, error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer); err != nil {
		return nil, err
	}
	tags, err := s.tags.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("查询标签失败: %w", err)
	}
	if tags == nil {
		tags = []model.Tag{}
	}
	return tags, nil
}

func (s *CatalogService) CreateTag(ctx context.Context, storeID int64, req *dto.TagReq) (*model.Tag, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	slug, err := scopedSlug(req.Slug, req.Name, "tag", func(slug string) (bool, error) {
		return s.tags.ExistsBySlug(ctx, storeID, slug, 0)
	})
	if err != nil {
		return nil, err
	}

	tag := &model.Tag{StoreID: storeID, Name: strings.TrimSpace(req.Name), Slug: slug}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, translateDuplicate(err, ErrSlugExists)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionCreate, model.EntityTag, tag.ID,
		map[string]interface{}{"name": tag.Name}))
	return tag, nil
}

func (s *CatalogService) UpdateTag(ctx context.Context, storeID, tagID int64, req *dto.TagReq) (*model.Tag, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	tag, err := s.tags.GetByID(ctx, storeID, tagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, notFound("标签")
	}

	fields := map[string]interface{}{"name": strings.TrimSpace(req.Name)}
	if req.Slug != "" && req.Slug != tag.Slug {
		slug, err := scopedSlug(req.Slug, "", "tag", func(slug string) (bool, error) {
			return s.tags.ExistsBySlug(ctx, storeID, slug, tagID)
		})
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}

	if err := s.tags.UpdateFields(ctx, storeID, tagID, fields); err != nil {
		return nil, translateDuplicate(err, ErrSlugExists)
	}
	s.activity.Record(ctx, newActivity(access, storeID, model.ActionUpdate, model.EntityTag, tagID,
		map[string]interface{}{"name": fields["name"]}))

	return s.tags.GetByID(ctx, storeID, tagID)
}

// DeleteTag 删除标签并解除商品关联
func (s *CatalogService) DeleteTag(ctx context.Context, storeID, tagID int64) error {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return err
	}

	tag, err := s.tags.GetByID(ctx, storeID, tagID)
	if err != nil {
		return err
	}
	if tag == nil {
		return notFound("标签")
	}
	if err := s.tags.Delete(ctx, storeID, tagID); err != nil {
		return fmt.Errorf("删除标签失败: %w", err)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionDelete, model.EntityTag, tagID,
		map[string]interface{}{"name": tag.Name}))
	return nil
}

// ==================== Banner ====================

func (s *CatalogService) ListBanners(ctx context.Context, storeID int64) ([]model.PromotionalBanner, error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer); err != nil {
		return nil, err
	}
	banners, err := s.banners.ListByStore(ctx, storeID, false)
	if err != nil {
		return nil, fmt.Errorf("查询横幅失败: %w", err)
	}
	if banners == nil {
		banners = []model.PromotionalBanner{}
	}
	return banners, nil
}

func (s *CatalogService) CreateBanner(ctx context.Context, storeID int64, req *dto.BannerReq) (*model.PromotionalBanner, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	banner := &model.PromotionalBanner{
		StoreID:     storeID,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LinkURL:     req.LinkURL,
		SortOrder:   req.Order,
		IsActive:    true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if err := s.banners.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("创建横幅失败: %w", err)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionCreate, model.EntityBanner, banner.ID,
		map[string]interface{}{"title": banner.Title}))
	return banner, nil
}

func (s *CatalogService) UpdateBanner(ctx context.Context, storeID, bannerID int64, req *dto.BannerReq) (*model.PromotionalBanner, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	banner, err := s.banners.GetByID(ctx, storeID, bannerID)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, notFound("横幅")
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"subtitle":    req.Subtitle,
		"description": req.Description,
		"image_url":   req.ImageURL,
		"link_url":    req.LinkURL,
		"sort_order":  req.Order,
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.banners.UpdateFields(ctx, storeID, bannerID, fields); err != nil {
		return nil, fmt.Errorf("更新横幅失败: %w", err)
	}

	action := model.ActionUpdate
	if req.IsActive != nil && *req.IsActive != banner.IsActive {
		action = model.ActionDeactivate
		if *req.IsActive {
			action = model.ActionActivate
		}
	}
	s.activity.Record(ctx, newActivity(access, storeID, action, model.EntityBanner, bannerID,
		map[string]interface{}{"title": req.Title}))

	return s.banners.GetByID(ctx, storeID, bannerID)
}

func (s *CatalogService) DeleteBanner(ctx context.Context, storeID, bannerID int64) error {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return err
	}

	banner, err := s.banners.GetByID(ctx, storeID, bannerID)
	if err != nil {
		return err
	}
	if banner == nil {
		return notFound("横幅")
	}
	if err := s.banners.Delete(ctx, storeID, bannerID); err != nil {
		return fmt.Errorf("删除横幅失败: %w", err)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionDelete, model.EntityBanner, bannerID,
		map[string]interface{}{"title": banner.Title}))
	return nil
}

// ==================== 辅助 ====================

// scopedSlug 店铺内 slug 校验/生成
// 显式指定的 slug 冲突时报错，自动生成的追加随机后缀
func scopedSlug(requested, name, fallback string, exists func(slug string) (bool, error)) (string, error) {
	slug := strings.TrimSpace(requested)
	explicit := slug != ""
	if explicit {
		if !utils.ValidSlug(slug) {
			return "", ErrInvalidSlug
		}
	} else if slug = utils.Slugify(name); slug == "" {
		slug = fallback + "-" + uuid.NewString()[:8]
	}

	taken, err := exists(slug)
	if err != nil {
		return "", err
	}
	if !taken {
		return slug, nil
	}
	if explicit {
		return "", ErrSlugExists
	}
	return slug + "-" + uuid.NewString()[:6], nil
}

func toCategoryResp(category *model.Category, count int64) dto.CategoryResp {
	return dto.CategoryResp{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		Image:        category.Image,
		ProductCount: count,
	}
}
