package service

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== 测试辅助 ====================

type productFixture struct {
	env    *testEnv
	svc    *ProductService
	owner  *model.User
	editor *model.User
	viewer *model.User
	store  *model.Store
	dir    string
}

func newProductFixture(t *testing.T) *productFixture {
	env := newTestEnv(t)
	dir := t.TempDir()
	storage, err := NewStorageService(StorageConfig{Provider: "local", BasePath: dir, BaseURL: "/uploads"})
	require.NoError(t, err)

	f := &productFixture{
		env:    env,
		svc:    NewProductService(env.guard, env.products, env.categories, env.tags, storage, env.activity, nil),
		owner:  env.createUser(t, "owner@example.com"),
		editor: env.createUser(t, "editor@example.com"),
		viewer: env.createUser(t, "viewer@example.com"),
		dir:    dir,
	}
	f.store = env.createStore(t, f.owner, "product-shop")
	env.addMember(t, f.store, f.editor, model.RoleEditor)
	env.addMember(t, f.store, f.viewer, model.RoleViewer)
	return f
}

func pngBytes(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ==================== Create ====================

func TestProductService_Create(t *testing.T) {
	f := newProductFixture(t)
	ctx := asUser(f.editor)

	tag := &model.Tag{StoreID: f.store.ID, Name: "New", Slug: "new"}
	require.NoError(t, f.env.tags.Create(context.Background(), tag))

	product, err := f.svc.Create(ctx, f.store.ID, &dto.ProductCreateReq{
		Name:            "Ceramic Mug",
		Price:           25,
		DiscountedPrice: ptr(20.0),
		DiscountActive:  true,
		Stock:           3,
		TagIDs:          []int64{tag.ID},
		Images:          []string{"https://cdn.example.com/a.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ceramic-mug", product.Slug)
	assert.Equal(t, model.DefaultCurrency, product.Currency)
	assert.True(t, product.IsActive)
	assert.Equal(t, f.editor.ID, product.CreatedBy)
	require.Len(t, product.Tags, 1)
	require.Len(t, product.Images, 1)

	logs := f.env.flushActivity(t)
	require.Len(t, logs, 1)
	assert.Equal(t, model.ActionCreate, logs[0].Action)
	assert.Equal(t, model.EntityProduct, logs[0].Entity)
	assert.Equal(t, product.ID, *logs[0].EntityID)
	assert.Equal(t, f.editor.ID, logs[0].UserID)
}

func TestProductService_CreateRequiresEditor(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.svc.Create(asUser(f.viewer), f.store.ID, &dto.ProductCreateReq{Name: "X", Price: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.Create(context.Background(), f.store.ID, &dto.ProductCreateReq{Name: "X", Price: 1})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.Empty(t, f.env.flushActivity(t))
}

func TestProductService_CreateSlugRules(t *testing.T) {
	f := newProductFixture(t)
	ctx := asUser(f.owner)

	first, err := f.svc.Create(ctx, f.store.ID, &dto.ProductCreateReq{Name: "Lamp", Price: 1})
	require.NoError(t, err)

	// 自动生成的 slug 冲突时追加后缀
	second, err := f.svc.Create(ctx, f.store.ID, &dto.ProductCreateReq{Name: "Lamp", Price: 1})
	require.NoError(t, err)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "lamp-"))

	// 显式 slug 冲突直接报错
	_, err = f.svc.Create(ctx, f.store.ID, &dto.ProductCreateReq{Name: "Other", Slug: "lamp", Price: 1})
	assert.ErrorIs(t, err, ErrSlugExists)

	_, err = f.svc.Create(ctx, f.store.ID, &dto.ProductCreateReq{Name: "Other", Slug: "Bad Slug!", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestProductService_CreateRejectsForeignReferences(t *testing.T) {
	f := newProductFixture(t)
	other := f.env.createStore(t, f.owner, "other-shop")

	foreignTag := &model.Tag{StoreID: other.ID, Name: "x", Slug: "x"}
	require.NoError(t, f.env.tags.Create(context.Background(), foreignTag))
	foreignCategory := &model.Category{StoreID: other.ID, Name: "c", Slug: "c"}
	require.NoError(t, f.env.categories.Create(context.Background(), foreignCategory))

	ctx := asUser(f.owner)
	_, err := f.svc.Create(ctx, f.store.ID, &dto.ProductCreateReq{Name: "A", Price: 1, TagIDs: []int64{foreignTag.ID}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Create(ctx, f.store.ID, &dto.ProductCreateReq{Name: "B", Price: 1, CategoryID: &foreignCategory.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// ==================== Update ====================

func TestProductService_ToggleActiveLogsActivate(t *testing.T) {
	f := newProductFixture(t)
	product := f.env.createProduct(t, f.store.ID, "desk", false)

	updated, err := f.svc.Update(asUser(f.editor), f.store.ID, product.ID, &dto.ProductUpdateReq{IsActive: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	updated, err = f.svc.Update(asUser(f.editor), f.store.ID, product.ID, &dto.ProductUpdateReq{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive, "false 必须被写入")

	logs := f.env.flushActivity(t)
	require.Len(t, logs, 2)
	assert.Equal(t, model.ActionActivate, logs[0].Action)
	assert.Equal(t, model.ActionDeactivate, logs[1].Action)
}

func TestProductService_UpdateFields(t *testing.T) {
	f := newProductFixture(t)
	product := f.env.createProduct(t, f.store.ID, "chair", true)

	updated, err := f.svc.Update(asUser(f.owner), f.store.ID, product.ID, &dto.ProductUpdateReq{
		Name:  ptr("Chair v2"),
		Stock: ptr(0),
		Price: ptr(12.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Chair v2", updated.Name)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, f.owner.ID, updated.UpdatedBy)

	logs := f.env.flushActivity(t)
	require.Len(t, logs, 1)
	assert.Equal(t, model.ActionUpdate, logs[0].Action)

	var details struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(logs[0].Details, &details))
	assert.Equal(t, []string{"name", "price", "stock"}, details.Fields)
}

func TestProductService_UpdateEmptyIsNoop(t *testing.T) {
	f := newProductFixture(t)
	product := f.env.createProduct(t, f.store.ID, "noop", true)

	got, err := f.svc.Update(asUser(f.owner), f.store.ID, product.ID, &dto.ProductUpdateReq{})
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
	assert.Empty(t, f.env.flushActivity(t))
}

func TestProductService_CrossStoreIsNotFound(t *testing.T) {
	f := newProductFixture(t)
	other := f.env.createStore(t, f.owner, "second-shop")
	foreign := f.env.createProduct(t, other.ID, "foreign", true)

	// 即使用户同时是两个店铺的店主，也不能通过 A 店铺访问 B 店铺的商品
	_, err := f.svc.Get(asUser(f.owner), f.store.ID, foreign.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.svc.Delete(asUser(f.owner), f.store.ID, foreign.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
}

// ==================== List / Delete ====================

func TestProductService_ListFilters(t *testing.T) {
	f := newProductFixture(t)
	f.env.createProduct(t, f.store.ID, "on-1", true)
	f.env.createProduct(t, f.store.ID, "on-2", true)
	f.env.createProduct(t, f.store.ID, "off-1", false)

	page, err := f.svc.List(asUser(f.viewer), f.store.ID, dto.ProductListReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)

	page, err = f.svc.List(asUser(f.viewer), f.store.ID, dto.ProductListReq{Active: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = f.svc.List(asUser(f.viewer), f.store.ID, dto.ProductListReq{Keyword: "ON"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}

func TestProductService_Delete(t *testing.T) {
	f := newProductFixture(t)
	product := f.env.createProduct(t, f.store.ID, "gone", true)

	require.ErrorIs(t, f.svc.Delete(asUser(f.viewer), f.store.ID, product.ID), ErrAccessDenied)
	require.NoError(t, f.svc.Delete(asUser(f.editor), f.store.ID, product.ID))

	_, err := f.svc.Get(asUser(f.editor), f.store.ID, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	logs := f.env.flushActivity(t)
	require.Len(t, logs, 1)
	assert.Equal(t, model.ActionDelete, logs[0].Action)
}

// ==================== 图片 ====================

func TestProductService_UploadAndDeleteImage(t *testing.T) {
	f := newProductFixture(t)
	product := f.env.createProduct(t, f.store.ID, "photo", true)
	ctx := asUser(f.editor)

	img, err := f.svc.UploadImage(ctx, f.store.ID, product.ID, "front.jpg", pngBytes(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(img.URL, ".png"), "扩展名按内容识别")

	onDisk := filepath.Join(f.dir, filepath.FromSlash(strings.TrimPrefix(img.URL, "/uploads/")))
	_, err = os.Stat(onDisk)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteImage(ctx, f.store.ID, product.ID, img.ID))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	logs := f.env.flushActivity(t)
	require.Len(t, logs, 2)
	assert.Equal(t, model.EntityImage, logs[0].Entity)
	assert.Equal(t, model.ActionDelete, logs[1].Action)
}

func TestProductService_UploadRejectsNonImage(t *testing.T) {
	f := newProductFixture(t)
	product := f.env.createProduct(t, f.store.ID, "text", true)

	_, err := f.svc.UploadImage(asUser(f.editor), f.store.ID, product.ID, "a.png", []byte("plain text"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestProductService_UploadWithoutStorage(t *testing.T) {
	f := newProductFixture(t)
	f.svc.storage = nil
	product := f.env.createProduct(t, f.store.ID, "nostore", true)

	_, err := f.svc.UploadImage(asUser(f.editor), f.store.ID, product.ID, "a.png", pngBytes(t))
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
