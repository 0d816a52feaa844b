package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleOwner.AtLeast(RoleEditor))
	assert.True(t, RoleEditor.AtLeast(RoleEditor))
	assert.False(t, RoleViewer.AtLeast(RoleEditor))
	assert.False(t, RoleNone.AtLeast(RoleViewer))
	assert.False(t, Role("Admin").AtLeast(RoleViewer))

	assert.Equal(t, -1, RoleViewer.Compare(RoleOwner))
	assert.Equal(t, 0, RoleEditor.Compare(RoleEditor))
	assert.Equal(t, 1, RoleOwner.Compare(RoleNone))

	assert.Equal(t, "none", RoleNone.String())
	assert.True(t, RoleEditor.IsMemberRole())
	assert.False(t, RoleOwner.IsMemberRole())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"owner", RoleOwner, true},
		{" Editor ", RoleEditor, true},
		{"VIEWER", RoleViewer, true},
		{"admin", RoleNone, false},
		{"", RoleNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestActivityEnums(t *testing.T) {
	assert.True(t, ActionLogin.Valid())
	assert.False(t, ActivityAction("purge").Valid())
	assert.True(t, EntityProduct.Valid())
	assert.False(t, ActivityEntity("order").Valid())
}

func TestProductPricing(t *testing.T) {
	p := &Product{Price: 80}
	assert.False(t, p.OnSale())
	assert.Equal(t, 80.0, p.EffectivePrice())
	assert.Zero(t, p.DiscountPercent())

	discounted := 60.0
	p.DiscountedPrice = &discounted
	assert.False(t, p.OnSale(), "折扣未启用")

	p.DiscountActive = true
	assert.True(t, p.OnSale())
	assert.Equal(t, 60.0, p.EffectivePrice())
	assert.Equal(t, 25, p.DiscountPercent())

	assert.False(t, p.InStock())
	p.Stock = 1
	assert.True(t, p.InStock())
}

func setupModelDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

func TestActivityLogIsAppendOnly(t *testing.T) {
	db := setupModelDB(t)

	log := &ActivityLog{StoreID: 1, UserID: 1, Action: ActionCreate, Entity: EntityStore}
	require.NoError(t, db.Create(log).Error)

	err := db.Model(log).Update("action", ActionDelete).Error
	assert.ErrorIs(t, err, ErrActivityLogImmutable)

	err = db.Delete(log).Error
	assert.ErrorIs(t, err, ErrActivityLogImmutable)

	var got ActivityLog
	require.NoError(t, db.First(&got, log.ID).Error)
	assert.Equal(t, ActionCreate, got.Action)
}

func TestStringListSchema(t *testing.T) {
	db := setupModelDB(t)

	require.NoError(t, db.AutoMigrate(&StoreSettings{}))
	assert.True(t, db.Migrator().HasColumn(&StoreSettings{}, "languages"))
	assert.Equal(t, "text", StringList{}.GormDataType())
}

func TestStringListRoundTrip(t *testing.T) {
	db := setupModelDB(t)

	store := &Store{Name: "s", Slug: "s", OwnerID: 1, Settings: DefaultStoreSettings()}
	require.NoError(t, db.Create(store).Error)

	var settings StoreSettings
	require.NoError(t, db.Where("store_id = ?", store.ID).First(&settings).Error)
	assert.Equal(t, StringList{"en", "ar"}, settings.Languages)
	assert.True(t, settings.Languages.Contains("ar"))
	assert.False(t, settings.Languages.Contains("fr"))
}
