package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// ==================== AuthService 认证服务 ====================

// AuthService 注册、登录、登出
type AuthService struct {
	users    repository.UserRepository
	stores   repository.StoreRepository
	revoked  repository.RevokedTokenRepository
	jwt      *middleware.JWTManager
	activity *ActivityLogger
}

// NewAuthService 创建认证服务
func NewAuthService(
	users repository.UserRepository,
	stores repository.StoreRepository,
	revoked repository.RevokedTokenRepository,
	jwt *middleware.JWTManager,
	activity *ActivityLogger,
) *AuthService {
	return &AuthService{
		users:    users,
		stores:   stores,
		revoked:  revoked,
		jwt:      jwt,
		activity: activity,
	}
}

// Register 注册
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Name:     strings.TrimSpace(req.Name),
		Password: string(hashedPassword),
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, translateDuplicate(err, ErrEmailExists)
	}

	return toUserInfo(user), nil
}

// Login 登录，签发 Token，并在可访问的店铺里记录登录日志
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	token, identity, err := s.jwt.GenerateAccessToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("签发 Token 失败: %w", err)
	}

	s.recordForStores(ctx, identity, model.ActionLogin)

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   identity.ExpiresAt,
		User:        toUserInfo(user),
	}, nil
}

// Logout 注销当前 Token
func (s *AuthService) Logout(ctx context.Context) error {
	identity := middleware.IdentityFromContext(ctx)
	if identity == nil {
		return ErrUnauthenticated
	}

	if identity.TokenID != "" {
		expiresAt := identity.ExpiresAt
		if expiresAt.IsZero() {
			expiresAt = time.Now().Add(s.jwt.Config().AccessTokenTTL)
		}
		if err := s.revoked.Revoke(ctx, &model.RevokedToken{
			JTI:       identity.TokenID,
			UserID:    identity.UserID,
			ExpiresAt: expiresAt,
		}); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("注销 Token 失败: %w", err)
		}
	}

	s.recordForStores(ctx, identity, model.ActionLogout)
	return nil
}

// Profile 当前用户信息及可访问的店铺
func (s *AuthService) Profile(ctx context.Context) (*dto.ProfileResp, error) {
	identity := middleware.IdentityFromContext(ctx)
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	accessible, err := s.stores.ListAccessible(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResp{
		User:   toUserInfo(user),
		Stores: toStoreRespList(accessible),
	}, nil
}

// recordForStores 在用户可访问的每个店铺记录一次登录/登出
func (s *AuthService) recordForStores(ctx context.Context, identity *middleware.Identity, action model.ActivityAction) {
	if s.activity == nil {
		return
	}
	accessible, err := s.stores.ListAccessible(ctx, identity.UserID)
	if err != nil {
		// 审计失败不影响登录
		s.activity.logger.Warn("查询可访问店铺失败，跳过登录审计",
			zap.Int64("user_id", identity.UserID), zap.Error(err))
		return
	}

	access := &Access{Identity: identity}
	for _, item := range accessible {
		s.activity.Record(ctx, newActivity(access, item.Store.ID, action, model.EntityUser, identity.UserID, nil))
	}
}

// ==================== 转换函数 ====================

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
