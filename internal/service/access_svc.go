package service

import (
	"context"
	"fmt"

	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// ==================== Authenticator 认证 ====================

// Authenticator 提供当前请求的认证身份
type Authenticator interface {
	RequireAuth(ctx context.Context) (*middleware.Identity, error)
}

// ContextAuthenticator 从 request context 读取 JWT 中间件写入的身份
// users 不为空时会校验用户仍然存在且处于启用状态
type ContextAuthenticator struct {
	users repository.UserRepository
}

// NewContextAuthenticator 创建认证器
func NewContextAuthenticator(users repository.UserRepository) *ContextAuthenticator {
	return &ContextAuthenticator{users: users}
}

// RequireAuth 获取当前身份，未登录返回 ErrUnauthenticated
func (a *ContextAuthenticator) RequireAuth(ctx context.Context) (*middleware.Identity, error) {
	identity := middleware.IdentityFromContext(ctx)
	if identity == nil || identity.UserID <= 0 {
		return nil, ErrUnauthenticated
	}
	if a.users == nil {
		return identity, nil
	}

	user, err := a.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrUnauthenticated
	}
	return identity, nil
}

// ==================== RoleResolver 角色解析 ====================

// OwnerLookup 按店铺查店主
type OwnerLookup interface {
	GetOwnerID(ctx context.Context, storeID int64) (ownerID int64, found bool, err error)
}

// MembershipLookup 按 (user, store) 查成员关系
type MembershipLookup interface {
	GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.StoreMember, error)
}

// RoleResolver 解析用户在店铺内的角色
type RoleResolver struct {
	owners  OwnerLookup
	members MembershipLookup
}

// NewRoleResolver 创建角色解析器
func NewRoleResolver(owners OwnerLookup, members MembershipLookup) *RoleResolver {
	return &RoleResolver{owners: owners, members: members}
}

// ResolveRole 解析角色
// 1. 店主直接返回 Owner，忽略任何成员记录
// 2. 否则返回成员记录中的角色
// 3. 都没有时 ok=false
func (r *RoleResolver) ResolveRole(ctx context.Context, storeID, userID int64) (model.Role, bool, error) {
	ownerID, found, err := r.owners.GetOwnerID(ctx, storeID)
	if err != nil {
		return model.RoleNone, false, fmt.Errorf("查询店铺所有者失败: %w", err)
	}
	if found && ownerID == userID {
		return model.RoleOwner, true, nil
	}

	member, err := r.members.GetByUserAndStore(ctx, userID, storeID)
	if err != nil {
		return model.RoleNone, false, fmt.Errorf("查询店铺成员失败: %w", err)
	}
	if member == nil {
		return model.RoleNone, false, nil
	}
	return member.Role, true, nil
}

// ==================== AccessGuard 访问控制 ====================

// Access 通过校验后的访问信息
type Access struct {
	Identity *middleware.Identity
	Role     model.Role
}

// CanEdit 是否可以修改店铺内容
func (a *Access) CanEdit() bool {
	return CanEdit(a.Role)
}

// AccessGuard 认证 + 角色解析 + 等级校验
type AccessGuard struct {
	auth     Authenticator
	resolver *RoleResolver
}

// NewAccessGuard 创建访问控制
func NewAccessGuard(auth Authenticator, resolver *RoleResolver) *AccessGuard {
	return &AccessGuard{auth: auth, resolver: resolver}
}

// EnsureAccess 确认当前用户在店铺内至少拥有 minRole
func (g *AccessGuard) EnsureAccess(ctx context.Context, storeID int64, minRole model.Role) (*Access, error) {
	identity, err := g.auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	role, ok, err := g.resolver.ResolveRole(ctx, storeID, identity.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &AccessDeniedError{StoreID: storeID, Reason: ReasonNoAccess, Required: minRole}
	}
	if role.Rank() < minRole.Rank() || !role.Valid() {
		return nil, &AccessDeniedError{StoreID: storeID, Reason: ReasonInsufficientRole, Required: minRole, Actual: role}
	}

	return &Access{Identity: identity, Role: role}, nil
}

// Authenticate 仅校验登录状态
func (g *AccessGuard) Authenticate(ctx context.Context) (*middleware.Identity, error) {
	return g.auth.RequireAuth(ctx)
}

// ==================== 纯函数 ====================

// CanEdit Owner 或 Editor
func CanEdit(role model.Role) bool {
	return role == model.RoleOwner || role == model.RoleEditor
}

// CanView 任何非空角色
func CanView(role model.Role) bool {
	return role != model.RoleNone
}
