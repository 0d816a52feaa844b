package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

func newAuthFixture(t *testing.T) (*testEnv, *AuthService, *middleware.JWTManager, repository.RevokedTokenRepository) {
	env := newTestEnv(t)
	revoked := repository.NewRevokedTokenRepository(env.db)
	jwtManager := middleware.NewJWTManager(&middleware.JWTConfig{
		SecretKey:      "test-secret-key-0123456789",
		AccessTokenTTL: time.Hour,
		Issuer:         "test",
	}, revoked, nil)
	return env, NewAuthService(env.users, env.stores, revoked, jwtManager, env.activity), jwtManager, revoked
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	env, svc, jwtManager, _ := newAuthFixture(t)
	ctx := context.Background()

	info, err := svc.Register(ctx, &dto.RegisterRequest{Email: "New@Example.com", Name: " New ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", info.Email)
	assert.Equal(t, "New", info.Name)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "new@example.com", Name: "dup", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "new@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "NEW@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := jwtManager.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, info.ID, claims.UserID)

	// 没有店铺时不产生登录记录
	assert.Empty(t, env.flushActivity(t))
}

func TestAuthService_LoginDisabledUser(t *testing.T) {
	env, svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "off@example.com", Name: "off", Password: "secret1"})
	require.NoError(t, err)
	user, err := env.users.GetByEmail(ctx, "off@example.com")
	require.NoError(t, err)
	require.NoError(t, env.users.UpdateFields(ctx, user.ID, map[string]interface{}{"is_active": false}))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "off@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestAuthService_LoginLogoutRecordedPerStore(t *testing.T) {
	env, svc, jwtManager, revoked := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "multi@example.com", Name: "multi", Password: "secret1"})
	require.NoError(t, err)
	user, err := env.users.GetByEmail(ctx, "multi@example.com")
	require.NoError(t, err)

	owned := env.createStore(t, user, "owned")
	other := env.createUser(t, "other@example.com")
	joined := env.createStore(t, other, "joined")
	env.addMember(t, joined, user, model.RoleViewer)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "multi@example.com", Password: "secret1"})
	require.NoError(t, err)
	claims, err := jwtManager.ParseToken(resp.AccessToken)
	require.NoError(t, err)

	identity := &middleware.Identity{
		UserID:    claims.UserID,
		Name:      claims.Name,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	require.NoError(t, svc.Logout(middleware.WithIdentity(ctx, identity)))

	isRevoked, err := revoked.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, isRevoked)

	// 重复登出不报错
	require.NoError(t, svc.Logout(middleware.WithIdentity(ctx, identity)))

	logs := env.flushActivity(t)
	counts := map[model.ActivityAction]map[int64]int{}
	for _, log := range logs {
		if counts[log.Action] == nil {
			counts[log.Action] = map[int64]int{}
		}
		counts[log.Action][log.StoreID]++
	}
	assert.Equal(t, map[int64]int{owned.ID: 1, joined.ID: 1}, counts[model.ActionLogin])
	assert.Equal(t, map[int64]int{owned.ID: 2, joined.ID: 2}, counts[model.ActionLogout])
}

func TestAuthService_LogoutRequiresIdentity(t *testing.T) {
	_, svc, _, _ := newAuthFixture(t)
	assert.ErrorIs(t, svc.Logout(context.Background()), ErrUnauthenticated)

	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Profile(t *testing.T) {
	env, svc, _, _ := newAuthFixture(t)
	owner := env.createUser(t, "p@example.com")
	env.createStore(t, owner, "p-shop")

	profile, err := svc.Profile(asUser(owner))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, profile.User.ID)
	require.Len(t, profile.Stores, 1)
	assert.Equal(t, "p-shop", profile.Stores[0].Slug)
}
