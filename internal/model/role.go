package model

import "strings"

// Role 店铺内的角色
// Owner 由 Store.OwnerID 隐式推导，不会作为 StoreMember 写入
type Role string

const (
	RoleNone   Role = ""
	RoleViewer Role = "Viewer"
	RoleEditor Role = "Editor"
	RoleOwner  Role = "Owner"
)

// roleRanks 权限等级，数值越大权限越高
// 新增角色时必须在这里登记，未登记的角色等级为 0 (等同无权限)
var roleRanks = map[Role]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleOwner:  3,
}

// Rank 返回角色等级，RoleNone 与未知角色均为 0
func (r Role) Rank() int {
	return roleRanks[r]
}

// Valid 是否为已登记的角色
func (r Role) Valid() bool {
	return r.Rank() > 0
}

// AtLeast 当前角色是否不低于 min
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}

// Compare 比较两个角色: r < o 返回 -1，相等返回 0，r > o 返回 1
func (r Role) Compare(o Role) int {
	switch {
	case r.Rank() < o.Rank():
		return -1
	case r.Rank() > o.Rank():
		return 1
	default:
		return 0
	}
}

// IsMemberRole 是否可以写入成员表
func (r Role) IsMemberRole() bool {
	return r == RoleEditor || r == RoleViewer
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}

// ParseRole 解析角色名 (大小写不敏感)，未知角色返回 false
func ParseRole(s string) (Role, bool) {
	for role := range roleRanks {
		if strings.EqualFold(string(role), strings.TrimSpace(s)) {
			return role, true
		}
	}
	return RoleNone, false
}
