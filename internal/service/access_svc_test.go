package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== 替身 ====================

type stubOwners map[int64]int64 // storeID -> ownerID

func (s stubOwners) GetOwnerID(ctx context.Context, storeID int64) (int64, bool, error) {
	owner, ok := s[storeID]
	return owner, ok, nil
}

type memberKey struct{ user, store int64 }

type stubMembers map[memberKey]model.Role

func (s stubMembers) GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.StoreMember, error) {
	role, ok := s[memberKey{userID, storeID}]
	if !ok {
		return nil, nil
	}
	return &model.StoreMember{UserID: userID, StoreID: storeID, Role: role}, nil
}

type failingLookup struct{}

func (failingLookup) GetOwnerID(ctx context.Context, storeID int64) (int64, bool, error) {
	return 0, false, errors.New("db down")
}

// identityAuth 只读取 context 中的身份，不查库
var identityAuth = NewContextAuthenticator(nil)

func withUser(userID int64) context.Context {
	return middleware.WithIdentity(context.Background(), &middleware.Identity{UserID: userID, Name: "u"})
}

// ==================== RoleResolver ====================

func TestRoleResolver_OwnerTakesPrecedence(t *testing.T) {
	// 店主同时有一条过期的 Viewer 成员记录
	resolver := NewRoleResolver(
		stubOwners{1: 10},
		stubMembers{{10, 1}: model.RoleViewer},
	)

	role, ok, err := resolver.ResolveRole(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.RoleOwner, role)
}

func TestRoleResolver_MembershipRole(t *testing.T) {
	resolver := NewRoleResolver(
		stubOwners{1: 10},
		stubMembers{{20, 1}: model.RoleEditor, {30, 1}: model.RoleViewer},
	)

	tests := []struct {
		name   string
		userID int64
		want   model.Role
		ok     bool
	}{
		{"editor", 20, model.RoleEditor, true},
		{"viewer", 30, model.RoleViewer, true},
		{"stranger", 40, model.RoleNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok, err := resolver.ResolveRole(context.Background(), 1, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRoleResolver_MembershipIsPerStore(t *testing.T) {
	resolver := NewRoleResolver(
		stubOwners{1: 10, 2: 11},
		stubMembers{{20, 1}: model.RoleEditor},
	)

	_, ok, err := resolver.ResolveRole(context.Background(), 2, 20)
	require.NoError(t, err)
	assert.False(t, ok, "其他店铺的成员身份不能跨租户生效")
}

func TestRoleResolver_LookupError(t *testing.T) {
	resolver := NewRoleResolver(failingLookup{}, stubMembers{})
	_, _, err := resolver.ResolveRole(context.Background(), 1, 1)
	assert.Error(t, err)
}

// ==================== AccessGuard ====================

func newStubGuard() *AccessGuard {
	return NewAccessGuard(identityAuth, NewRoleResolver(
		stubOwners{1: 10},
		stubMembers{{20, 1}: model.RoleEditor, {30, 1}: model.RoleViewer, {40, 1}: model.Role("Admin")},
	))
}

func TestAccessGuard_Unauthenticated(t *testing.T) {
	guard := newStubGuard()

	for _, min := range []model.Role{model.RoleViewer, model.RoleEditor, model.RoleOwner} {
		_, err := guard.EnsureAccess(context.Background(), 1, min)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	}
}

func TestAccessGuard_RoleMatrix(t *testing.T) {
	guard := newStubGuard()

	tests := []struct {
		name   string
		userID int64
		min    model.Role
		reason string // 空表示允许
	}{
		{"owner needs owner", 10, model.RoleOwner, ""},
		{"owner needs viewer", 10, model.RoleViewer, ""},
		{"editor needs editor", 20, model.RoleEditor, ""},
		{"editor needs owner", 20, model.RoleOwner, ReasonInsufficientRole},
		{"viewer needs viewer", 30, model.RoleViewer, ""},
		{"viewer needs editor", 30, model.RoleEditor, ReasonInsufficientRole},
		{"viewer needs owner", 30, model.RoleOwner, ReasonInsufficientRole},
		{"stranger", 50, model.RoleViewer, ReasonNoAccess},
		{"unknown role", 40, model.RoleViewer, ReasonInsufficientRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access, err := guard.EnsureAccess(withUser(tt.userID), 1, tt.min)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.userID, access.Identity.UserID)
				return
			}

			var denied *AccessDeniedError
			require.ErrorAs(t, err, &denied)
			assert.Equal(t, tt.reason, denied.Reason)
			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

func TestAccessGuard_ViewerScenario(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "a@example.com")
	viewer := env.createUser(t, "b@example.com")
	store := env.createStore(t, owner, "shop-s")
	env.addMember(t, store, viewer, model.RoleViewer)

	_, err := env.guard.EnsureAccess(asUser(viewer), store.ID, model.RoleOwner)
	assert.ErrorIs(t, err, ErrAccessDenied)

	access, err := env.guard.EnsureAccess(asUser(viewer), store.ID, model.RoleViewer)
	require.NoError(t, err)
	assert.Equal(t, model.RoleViewer, access.Role)
	assert.False(t, access.CanEdit())
}

func TestAccessGuard_DisabledUser(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com")
	store := env.createStore(t, owner, "shop-d")
	require.NoError(t, env.users.UpdateFields(context.Background(), owner.ID, map[string]interface{}{"is_active": false}))

	_, err := env.guard.EnsureAccess(asUser(owner), store.ID, model.RoleViewer)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCanEditCanView(t *testing.T) {
	assert.True(t, CanEdit(model.RoleOwner))
	assert.True(t, CanEdit(model.RoleEditor))
	assert.False(t, CanEdit(model.RoleViewer))
	assert.False(t, CanEdit(model.RoleNone))

	assert.True(t, CanView(model.RoleViewer))
	assert.False(t, CanView(model.RoleNone))
}
