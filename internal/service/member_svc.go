package service

import (
	"context"
	"fmt"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// MemberService 店铺团队管理
// 列表需要 Viewer，写操作仅 Owner
type MemberService struct {
	guard    *AccessGuard
	stores   repository.StoreRepository
	members  repository.StoreMemberRepository
	users    repository.UserRepository
	activity *ActivityLogger
}

func NewMemberService(
	guard *AccessGuard,
	stores repository.StoreRepository,
	members repository.StoreMemberRepository,
	users repository.UserRepository,
	activity *ActivityLogger,
) *MemberService {
	return &MemberService{
		guard:    guard,
		stores:   stores,
		members:  members,
		users:    users,
		activity: activity,
	}
}

// List 店主 + 全部成员，店主排在第一位
func (s *MemberService) List(ctx context.Context, storeID int64) ([]dto.MemberResp, error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer); err != nil {
		return nil, err
	}

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, notFound("店铺")
	}

	members, err := s.members.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("查询成员失败: %w", err)
	}

	list := make([]dto.MemberResp, 0, len(members)+1)
	if owner, err := s.users.GetByID(ctx, store.OwnerID); err != nil {
		return nil, err
	} else if owner != nil {
		list = append(list, dto.MemberResp{
			UserID:    owner.ID,
			Email:     owner.Email,
			Name:      owner.Name,
			Role:      string(model.RoleOwner),
			IsOwner:   true,
			CreatedAt: store.CreatedAt,
		})
	}
	for i := range members {
		list = append(list, toMemberResp(&members[i]))
	}
	return list, nil
}

// Add 按邮箱添加成员
func (s *MemberService) Add(ctx context.Context, storeID int64, req *dto.MemberAddReq) (*dto.MemberResp, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleOwner)
	if err != nil {
		return nil, err
	}

	role, err := parseMemberRole(req.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("用户")
	}

	ownerID, _, err := s.stores.GetOwnerID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if user.ID == ownerID {
		return nil, ErrOwnerNotMember
	}

	existing, err := s.members.GetByUserAndStore(ctx, user.ID, storeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberExists
	}

	member := &model.StoreMember{UserID: user.ID, StoreID: storeID, Role: role}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, translateDuplicate(err, ErrMemberExists)
	}
	member.User = user

	s.activity.Record(ctx, newActivity(access, storeID, model.ActionCreate, model.EntityUser, user.ID,
		map[string]interface{}{"email": user.Email, "role": string(role)}))

	resp := toMemberResp(member)
	return &resp, nil
}

// UpdateRole 修改成员角色
func (s *MemberService) UpdateRole(ctx context.Context, storeID, memberID int64, req *dto.MemberUpdateReq) (*dto.MemberResp, error) {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleOwner)
	if err != nil {
		return nil, err
	}

	role, err := parseMemberRole(req.Role)
	if err != nil {
		return nil, err
	}

	member, err := s.members.GetByID(ctx, storeID, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, notFound("成员")
	}

	if member.Role != role {
		if err := s.members.UpdateRole(ctx, storeID, memberID, role); err != nil {
			return nil, fmt.Errorf("修改成员角色失败: %w", err)
		}
		s.activity.Record(ctx, newActivity(access, storeID, model.ActionUpdate, model.EntityUser, member.UserID,
			map[string]interface{}{"from": string(member.Role), "to": string(role)}))
		member.Role = role
	}

	resp := toMemberResp(member)
	return &resp, nil
}

// Remove 移除成员
func (s *MemberService) Remove(ctx context.Context, storeID, memberID int64) error {
	access, err := s.guard.EnsureAccess(ctx, storeID, model.RoleOwner)
	if err != nil {
		return err
	}

	member, err := s.members.GetByID(ctx, storeID, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return notFound("成员")
	}

	if err := s.members.Delete(ctx, storeID, memberID); err != nil {
		return fmt.Errorf("移除成员失败: %w", err)
	}

	details := map[string]interface{}{"role": string(member.Role)}
	if member.User != nil {
		details["email"] = member.User.Email
	}
	s.activity.Record(ctx, newActivity(access, storeID, model.ActionDelete, model.EntityUser, member.UserID, details))
	return nil
}

// parseMemberRole 成员表只允许 Editor / Viewer
func parseMemberRole(s string) (model.Role, error) {
	role, ok := model.ParseRole(s)
	if !ok || !role.IsMemberRole() {
		return model.RoleNone, ErrInvalidRole
	}
	return role, nil
}

func toMemberResp(member *model.StoreMember) dto.MemberResp {
	resp := dto.MemberResp{
		ID:        member.ID,
		UserID:    member.UserID,
		Role:      string(member.Role),
		CreatedAt: member.CreatedAt,
	}
	if member.User != nil {
		resp.Email = member.User.Email
		resp.Name = member.User.Name
	}
	return resp
}
