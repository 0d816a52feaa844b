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

// StoreService 店铺管理
type StoreService struct {
	guard    *AccessGuard
	stores   repository.StoreRepository
	products repository.ProductRepository
	messages repository.MessageRepository
	activity *ActivityLogger
}

// NewStoreService 创建店铺服务
func NewStoreService(
	guard *AccessGuard,
	stores repository.StoreRepository,
	products repository.ProductRepository,
	messages repository.MessageRepository,
	activity *ActivityLogger,
) *StoreService {
	return &StoreService{
		guard:    guard,
		stores:   stores,
		products: products,
		messages: messages,
		activity: activity,
	}
}

// ListMine 当前用户拥有或加入的店铺
func (s *StoreService) ListMine(ctx context.Context) ([]dto.StoreResp, error) {
	identity, err := s.guard.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	accessible, err := s.stores.ListAccessible(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("查询店铺列表失败: %w", err)
	}
	return toStoreRespList(accessible), nil
}

// Create 创建店铺，创建者成为店主
func (s *StoreService) Create(ctx context.Context, req *dto.StoreCreateReq) (*dto.StoreResp, error) {
	identity, err := s.guard.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	slug, err := s.resolveSlug(ctx, req.Slug, req.Name, 0)
	if err != nil {
		return nil, err
	}

	store := &model.Store{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Logo:        req.Logo,
		OwnerID:     identity.UserID,
		Settings:    model.DefaultStoreSettings(),
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, translateDuplicate(err, ErrSlugExists)
	}

	access := &Access{Identity: identity, Role: model.RoleOwner}
	s.activity.Record(ctx, newActivity(access, store.ID, model.ActionCreate, model.EntityStore, store.ID,
		map[string]interface{}{"name": store.Name, "slug": store.Slug}))

	resp := toStoreResp(store, model.RoleOwner)
	return &resp, nil
}

// Get 店铺详情及概览数据，需要 Viewer
func (s *StoreService) Get(ctx context.Context, storeID int64) (*dto.StoreDashboardResp, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer)
	if err != nil {
		return nil, err
	}

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, notFound("店铺")
	}

	resp := &dto.StoreDashboardResp{StoreResp: toStoreResp(store, access.Role)}

	_, resp.ProductCount, err = s.products.List(ctx, repository.ProductFilter{StoreID: storeID, PageSize: 1})
	if err != nil {
		return nil, err
	}
	_, resp.ActiveProducts, err = s.products.List(ctx, repository.ProductFilter{StoreID: storeID, ActiveOnly: true, PageSize: 1})
	if err != nil {
		return nil, err
	}
	if resp.UnreadMessages, err = s.messages.CountUnread(ctx, storeID); err != nil {
		return nil, err
	}
	return resp, nil
}

// Update 修改店铺基本信息，需要 Editor
func (s *StoreService) Update(ctx context.Context, storeID int64, req *dto.StoreUpdateReq) (*dto.StoreResp, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, notFound("店铺")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil && *req.Slug != store.Slug {
		slug, err := s.resolveSlug(ctx, *req.Slug, "", storeID)
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Logo != nil {
		fields["logo"] = *req.Logo
	}

	if len(fields) > 0 {
		if err := s.stores.UpdateFields(ctx, storeID, fields); err != nil {
			return nil, translateDuplicate(err, ErrSlugExists)
		}
		s.activity.Record(ctx, newActivity(access, storeID, model.ActionUpdate, model.EntityStore, storeID, fields))
	}

	updated, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, notFound("店铺")
	}
	resp := toStoreResp(updated, access.Role)
	return &resp, nil
}

// UpdateSettings 修改店铺展示设置，需要 Editor
func (s *StoreService) UpdateSettings(ctx context.Context, storeID int64, req *dto.StoreSettingsReq) (*dto.StoreSettingsResp, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Language != nil {
		fields["language"] = *req.Language
	}
	if req.PrimaryColor != nil {
		fields["primary_color"] = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		fields["secondary_color"] = *req.SecondaryColor
	}
	if req.DisplayMode != nil {
		fields["display_mode"] = *req.DisplayMode
	}
	if req.Currency != nil {
		fields["currency"] = strings.ToUpper(*req.Currency)
	}
	if req.Languages != nil {
		if len(req.Languages) == 0 {
			return nil, invalidInput("至少保留一种店面语言")
		}
		fields["languages"] = model.StringList(req.Languages)
	}

	if err := s.stores.UpdateSettings(ctx, storeID, fields); err != nil {
		return nil, fmt.Errorf("更新店铺设置失败: %w", err)
	}
	if len(fields) > 0 {
		s.activity.Record(ctx, newActivity(access, storeID, model.ActionUpdate, model.EntitySettings, 0, fields))
	}

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, notFound("店铺")
	}
	return toSettingsResp(store.Settings), nil
}

// Delete 删除店铺及全部租户数据，仅 Owner
func (s *StoreService) Delete(ctx context.Context, storeID int64) error {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleOwner)
	if err != nil {
		return err
	}

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return notFound("店铺")
	}

	if err := s.stores.Delete(ctx, storeID); err != nil {
		return fmt.Errorf("删除店铺失败: %w", err)
	}

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionDelete, model.EntityStore, storeID,
		map[string]interface{}{"name": store.Name, "slug": store.Slug}))
	return nil
}

// resolveSlug 校验或生成店铺 slug
func (s *StoreService) resolveSlug(ctx context.Context, requested, name string, excludeID int64) (string, error) {
	slug := strings.TrimSpace(requested)
	if slug != "" {
		if !utils.ValidSlug(slug) {
			return "", ErrInvalidSlug
		}
		exists, err := s.stores.ExistsBySlug(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrSlugExists
		}
		return slug, nil
	}

	// 未指定时从名称生成，冲突则追加随机后缀
	base := utils.Slugify(name)
	if base == "" {
		base = "store"
	}
	slug = base
	for i := 0; i < 5; i++ {
		exists, err := s.stores.ExistsBySlug(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%s", base, uuid.NewString()[:6])
	}
	return "", ErrSlugExists
}

// ==================== 转换函数 ====================

func toStoreResp(store *model.Store, role model.Role) dto.StoreResp {
	return dto.StoreResp{
		ID:          store.ID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Logo:        store.Logo,
		OwnerID:     store.OwnerID,
		Role:        string(role),
		CanEdit:     CanEdit(role),
		Settings:    toSettingsResp(store.Settings),
		CreatedAt:   store.CreatedAt,
		UpdatedAt:   store.UpdatedAt,
	}
}

func toStoreRespList(items []repository.AccessibleStore) []dto.StoreResp {
	list := make([]dto.StoreResp, 0, len(items))
	for i := range items {
		role := items[i].MemberRole
		if role == model.RoleNone {
			role = model.RoleOwner
		}
		list = append(list, toStoreResp(&items[i].Store, role))
	}
	return list
}

func toSettingsResp(settings *model.StoreSettings) *dto.StoreSettingsResp {
	if settings == nil {
		defaults := model.DefaultStoreSettings()
		settings = defaults
	}
	languages := []string(settings.Languages)
	if languages == nil {
		languages = []string{}
	}
	return &dto.StoreSettingsResp{
		Language:       settings.Language,
		PrimaryColor:   settings.PrimaryColor,
		SecondaryColor: settings.SecondaryColor,
		DisplayMode:    settings.DisplayMode,
		Currency:       settings.Currency,
		Languages:      languages,
	}
}
