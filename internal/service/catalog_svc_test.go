package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
)

func newCatalogFixture(t *testing.T) (*testEnv, *CatalogService, *model.User, *model.User, *model.Store) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.guard, env.categories, env.tags, env.banners, env.products, env.activity)
	owner := env.createUser(t, "owner@example.com")
	viewer := env.createUser(t, "viewer@example.com")
	store := env.createStore(t, owner, "catalog")
	env.addMember(t, store, viewer, model.RoleViewer)
	return env, svc, owner, viewer, store
}

func TestCatalogService_Categories(t *testing.T) {
	env, svc, owner, viewer, store := newCatalogFixture(t)
	ctx := asUser(owner)

	_, err := svc.CreateCategory(asUser(viewer), store.ID, &dto.CategoryReq{Name: "Shoes"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	shoes, err := svc.CreateCategory(ctx, store.ID, &dto.CategoryReq{Name: "Running Shoes"})
	require.NoError(t, err)
	assert.Equal(t, "running-shoes", shoes.Slug)

	_, err = svc.CreateCategory(ctx, store.ID, &dto.CategoryReq{Name: "x", Slug: "running-shoes"})
	assert.ErrorIs(t, err, ErrSlugExists)
	_, err = svc.CreateCategory(ctx, store.ID, &dto.CategoryReq{Name: "x", Slug: "Bad Slug"})
	assert.ErrorIs(t, err, ErrInvalidSlug)

	// 同名分类自动追加后缀
	dup, err := svc.CreateCategory(ctx, store.ID, &dto.CategoryReq{Name: "Running Shoes"})
	require.NoError(t, err)
	assert.NotEqual(t, shoes.Slug, dup.Slug)
	assert.Contains(t, dup.Slug, "running-shoes-")

	product := env.createProduct(t, store.ID, "runner", true)
	require.NoError(t, env.products.UpdateFields(context.Background(), store.ID, product.ID,
		map[string]interface{}{"category_id": shoes.ID}))

	list, err := svc.ListCategories(asUser(viewer), store.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	counts := map[int64]int64{}
	for _, c := range list {
		counts[c.ID] = c.ProductCount
	}
	assert.Equal(t, int64(1), counts[shoes.ID])
	assert.Equal(t, int64(0), counts[dup.ID])

	updated, err := svc.UpdateCategory(ctx, store.ID, shoes.ID, &dto.CategoryReq{Name: "Trainers", Slug: "trainers"})
	require.NoError(t, err)
	assert.Equal(t, "Trainers", updated.Name)
	assert.Equal(t, "trainers", updated.Slug)

	require.NoError(t, svc.DeleteCategory(ctx, store.ID, shoes.ID))
	got, err := env.products.GetByID(context.Background(), store.ID, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CategoryID)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, store.ID, shoes.ID), ErrNotFound)
}

func TestCatalogService_CategoriesAreStoreScoped(t *testing.T) {
	env, svc, owner, _, store := newCatalogFixture(t)
	other := env.createStore(t, owner, "other")

	a, err := svc.CreateCategory(asUser(owner), store.ID, &dto.CategoryReq{Name: "Bags"})
	require.NoError(t, err)
	b, err := svc.CreateCategory(asUser(owner), other.ID, &dto.CategoryReq{Name: "Bags"})
	require.NoError(t, err)
	assert.Equal(t, a.Slug, b.Slug)

	_, err = svc.UpdateCategory(asUser(owner), other.ID, a.ID, &dto.CategoryReq{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_Tags(t *testing.T) {
	env, svc, owner, viewer, store := newCatalogFixture(t)
	ctx := asUser(owner)

	tag, err := svc.CreateTag(ctx, store.ID, &dto.TagReq{Name: "New Arrival"})
	require.NoError(t, err)
	assert.Equal(t, "new-arrival", tag.Slug)

	renamed, err := svc.UpdateTag(ctx, store.ID, tag.ID, &dto.TagReq{Name: "Fresh"})
	require.NoError(t, err)
	assert.Equal(t, "Fresh", renamed.Name)
	assert.Equal(t, "new-arrival", renamed.Slug)

	tags, err := svc.ListTags(asUser(viewer), store.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	require.NoError(t, svc.DeleteTag(ctx, store.ID, tag.ID))
	tags, err = svc.ListTags(ctx, store.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	logs := env.flushActivity(t)
	require.Len(t, logs, 3)
	assert.Equal(t, model.ActionCreate, logs[0].Action)
	assert.Equal(t, model.ActionUpdate, logs[1].Action)
	assert.Equal(t, model.ActionDelete, logs[2].Action)
	for _, log := range logs {
		assert.Equal(t, model.EntityTag, log.Entity)
	}
}

func TestCatalogService_Banners(t *testing.T) {
	env, svc, owner, viewer, store := newCatalogFixture(t)
	ctx := asUser(owner)

	banner, err := svc.CreateBanner(ctx, store.ID, &dto.BannerReq{Title: "Sale", Order: 2})
	require.NoError(t, err)
	assert.True(t, banner.IsActive)

	hidden, err := svc.CreateBanner(ctx, store.ID, &dto.BannerReq{Title: "Hidden", IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, hidden.IsActive)

	// 后台列表包含未启用的横幅
	list, err := svc.ListBanners(asUser(viewer), store.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	updated, err := svc.UpdateBanner(ctx, store.ID, banner.ID, &dto.BannerReq{Title: "Sale", IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateBanner(ctx, store.ID, hidden.ID, &dto.BannerReq{Title: "Shown", IsActive: ptr(true)})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBanner(ctx, store.ID, banner.ID))
	assert.ErrorIs(t, svc.DeleteBanner(ctx, store.ID, banner.ID), ErrNotFound)

	logs := env.flushActivity(t)
	actions := make([]model.ActivityAction, 0, len(logs))
	for _, log := range logs {
		assert.Equal(t, model.EntityBanner, log.Entity)
		actions = append(actions, log.Action)
	}
	assert.Equal(t, []model.ActivityAction{
		model.ActionCreate,
		model.ActionCreate,
		model.ActionDeactivate,
		model.ActionActivate,
		model.ActionDelete,
	}, actions)
}
