package storeclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/asad200-stack/ONEWEB/pkg/i18n"
)

// ErrInvalidForm 表单校验未通过，未发送请求
var ErrInvalidForm = errors.New("表单校验未通过")

var validate = validator.New()

// ==================== ContactForm 联系表单 ====================

// ContactForm 店面联系表单
type ContactForm struct {
	client  *Client
	StoreID int64 `json:"-"`

	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Subject string `json:"subject,omitempty" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required,max=5000"`

	FieldErrors map[string]string `json:"-"`
	Error       string            `json:"-"`
	Success     bool              `json:"-"`
}

// NewContactForm 创建联系表单
func NewContactForm(client *Client, storeID int64) *ContactForm {
	return &ContactForm{client: client, StoreID: storeID}
}

// Validate 本地校验，返回字段 -> 错误
func (f *ContactForm) Validate() map[string]string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)

	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "必填"
		case "email":
			out[field] = "邮箱格式不正确"
		default:
			out[field] = "长度超出限制"
		}
	}
	return out
}

// Submit 校验通过后提交，成功时清空表单
func (f *ContactForm) Submit(ctx context.Context) error {
	f.Success = false
	f.Error = ""
	f.FieldErrors = f.Validate()
	if len(f.FieldErrors) > 0 {
		return ErrInvalidForm
	}

	path := fmt.Sprintf("/api/stores/%d/messages", f.StoreID)
	if err := f.client.do(ctx, http.MethodPost, path, f, nil); err != nil {
		f.Error = errorMessage(err, "提交失败，请稍后再试")
		return err
	}

	f.Name, f.Email, f.Phone, f.Subject, f.Message = "", "", "", "", ""
	f.Success = true
	return nil
}

// ==================== LogoutButton 登出 ====================

// LogoutButton 登出
type LogoutButton struct {
	client *Client
}

func NewLogoutButton(client *Client) *LogoutButton {
	return &LogoutButton{client: client}
}

// Click 调用登出接口并清除本地 Token
// 接口失败时 Token 同样被清除，错误照常返回
func (b *LogoutButton) Click(ctx context.Context) error {
	err := b.client.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	b.client.SetToken("")
	return err
}

// ==================== LanguageToggle 语言切换 ====================

// LanguageToggle 英文/阿拉伯文切换，只保存在当前视图
type LanguageToggle struct {
	bundle *i18n.Bundle
	Lang   string
}

// NewLanguageToggle 不支持的语言回退到英文
func NewLanguageToggle(lang string) *LanguageToggle {
	bundle := i18n.Default()
	return &LanguageToggle{bundle: bundle, Lang: bundle.Resolve(lang, "", i18n.DefaultLanguage)}
}

// Toggle 切换并返回新语言
func (t *LanguageToggle) Toggle() string {
	t.Lang = t.bundle.Toggle(t.Lang)
	return t.Lang
}

// Direction ltr / rtl
func (t *LanguageToggle) Direction() string {
	return t.bundle.Direction(t.Lang)
}

// Label 切换按钮文案 (显示为当前语言)
func (t *LanguageToggle) Label() string {
	return t.bundle.T(t.Lang, "language.toggle")
}
