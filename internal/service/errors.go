package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// ==================== 错误定义 ====================

var (
	// 认证与权限
	ErrUnauthenticated    = errors.New("未登录或登录已失效")
	ErrAccessDenied       = errors.New("无权访问该店铺")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserDisabled       = errors.New("用户已禁用")
	ErrEmailExists        = errors.New("邮箱已存在")

	// 资源
	ErrNotFound = errors.New("资源不存在")

	// 校验与冲突
	ErrInvalidInput    = errors.New("参数错误")
	ErrSlugExists      = errors.New("slug 已被占用")
	ErrInvalidSlug     = errors.New("slug 只能包含小写字母、数字和连字符")
	ErrInvalidRole     = errors.New("无效的成员角色，只能是 Editor 或 Viewer")
	ErrOwnerNotMember  = errors.New("店主不能被添加为成员")
	ErrMemberExists    = errors.New("该用户已是店铺成员")
	ErrInvalidImage    = errors.New("不支持的图片格式")
	ErrStorageDisabled = errors.New("存储服务未配置")
)

// AccessDenied 原因
const (
	ReasonNoAccess         = "no access"
	ReasonInsufficientRole = "insufficient role"
)

// AccessDeniedError 权限不足
// errors.Is(err, ErrAccessDenied) 为 true
type AccessDeniedError struct {
	StoreID  int64
	Reason   string
	Required model.Role
	Actual   model.Role
}

func (e *AccessDeniedError) Error() string {
	if e.Reason == ReasonInsufficientRole {
		return fmt.Sprintf("%s: 需要 %s 权限，当前为 %s", ErrAccessDenied.Error(), e.Required, e.Actual)
	}
	return fmt.Sprintf("%s: %s", ErrAccessDenied.Error(), e.Reason)
}

func (e *AccessDeniedError) Is(target error) bool {
	return target == ErrAccessDenied
}

// NotFoundError 资源不存在
// errors.Is 同时匹配 ErrNotFound 与 gorm.ErrRecordNotFound
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + "不存在"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return gorm.ErrRecordNotFound
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// invalidInput 生成带说明的参数错误
func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// translateDuplicate 唯一索引冲突映射为业务错误
func translateDuplicate(err error, conflict error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return err
}
