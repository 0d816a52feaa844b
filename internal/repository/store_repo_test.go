package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== 测试辅助 ====================

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	user := &model.User{Email: email, Name: email, Password: "x", IsActive: true}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedStore(t *testing.T, db *gorm.DB, ownerID int64, slug string) *model.Store {
	store := &model.Store{Name: slug, Slug: slug, OwnerID: ownerID}
	require.NoError(t, NewStoreRepository(db).Create(context.Background(), store))
	return store
}

// ==================== StoreRepository ====================

func TestStoreRepository_OwnerAndAccess(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := NewStoreRepository(db)
	members := NewStoreMemberRepository(db)

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	a1 := seedStore(t, db, alice.ID, "a1")
	a2 := seedStore(t, db, alice.ID, "a2")
	b1 := seedStore(t, db, bob.ID, "b1")

	ownerID, found, err := stores.GetOwnerID(ctx, a1.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, alice.ID, ownerID)

	_, found, err = stores.GetOwnerID(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, members.Create(ctx, &model.StoreMember{StoreID: b1.ID, UserID: alice.ID, Role: model.RoleEditor}))

	list, err := stores.ListAccessible(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, a1.ID, list[0].Store.ID)
	assert.Equal(t, model.RoleNone, list[0].MemberRole)
	assert.Equal(t, a2.ID, list[1].Store.ID)
	assert.Equal(t, b1.ID, list[2].Store.ID)
	assert.Equal(t, model.RoleEditor, list[2].MemberRole)
	require.NotNil(t, list[2].Store.Settings)

	list, err = stores.ListAccessible(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStoreRepository_SlugAndSettings(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := NewStoreRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	store := seedStore(t, db, owner.ID, "shop")

	exists, err := stores.ExistsBySlug(ctx, "shop", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = stores.ExistsBySlug(ctx, "shop", store.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	err = stores.Create(ctx, &model.Store{Name: "dup", Slug: "shop", OwnerID: owner.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, stores.UpdateSettings(ctx, store.ID, map[string]interface{}{
		"primary_color": "#abcdef",
		"languages":     model.StringList{"ar"},
	}))
	got, err := stores.GetBySlug(ctx, "shop")
	require.NoError(t, err)
	require.NotNil(t, got.Settings)
	assert.Equal(t, "#abcdef", got.Settings.PrimaryColor)
	assert.Equal(t, model.StringList{"ar"}, got.Settings.Languages)

	missing, err := stores.GetBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreRepository_DeleteKeepsActivity(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	stores := NewStoreRepository(db)
	products := NewProductRepository(db)
	logs := NewActivityLogRepository(db)

	owner := seedUser(t, db, "owner@example.com")
	store := seedStore(t, db, owner.ID, "gone")
	keep := seedStore(t, db, owner.ID, "kept")

	for _, s := range []*model.Store{store, keep} {
		require.NoError(t, products.Create(ctx, &model.Product{
			StoreID: s.ID, Name: "p", Slug: "p", Currency: "USD", IsActive: true,
			Images: []model.ProductImage{{URL: "/a.png"}},
		}))
	}
	require.NoError(t, logs.Create(ctx, &model.ActivityLog{
		StoreID: store.ID, UserID: owner.ID, Action: model.ActionCreate, Entity: model.EntityStore,
	}))

	require.NoError(t, stores.Delete(ctx, store.ID))

	got, err := stores.GetByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, total, err := products.List(ctx, ProductFilter{StoreID: store.ID, PageSize: -1})
	require.NoError(t, err)
	assert.Zero(t, total)
	_, total, err = products.List(ctx, ProductFilter{StoreID: keep.ID, PageSize: -1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	entries, total, err := logs.List(ctx, ActivityLogFilter{StoreID: store.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, model.ActionCreate, entries[0].Action)
}

// ==================== ActivityLogRepository ====================

func TestActivityLogRepository_Filters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logs := NewActivityLogRepository(db)

	productID := int64(10)
	entries := []*model.ActivityLog{
		{StoreID: 1, UserID: 1, Action: model.ActionCreate, Entity: model.EntityProduct, EntityID: &productID},
		{StoreID: 1, UserID: 2, Action: model.ActionUpdate, Entity: model.EntityProduct, EntityID: &productID},
		{StoreID: 1, UserID: 2, Action: model.ActionLogin, Entity: model.EntityUser},
		{StoreID: 2, UserID: 1, Action: model.ActionCreate, Entity: model.EntityStore},
	}
	for _, e := range entries {
		require.NoError(t, logs.Create(ctx, e))
	}

	_, total, err := logs.List(ctx, ActivityLogFilter{StoreID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, total, err = logs.List(ctx, ActivityLogFilter{StoreID: 1, UserID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = logs.List(ctx, ActivityLogFilter{StoreID: 1, Entity: model.EntityProduct, Action: model.ActionUpdate})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = logs.List(ctx, ActivityLogFilter{StoreID: 1, EntityID: &productID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	counts, err := logs.CountByAction(ctx, 1, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, map[model.ActivityAction]int64{
		model.ActionCreate: 1,
		model.ActionUpdate: 1,
		model.ActionLogin:  1,
	}, counts)

	counts, err = logs.CountByAction(ctx, 1, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, counts)
}
