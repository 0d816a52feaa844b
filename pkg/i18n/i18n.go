// Package i18n 店面多语言：英文 / 阿拉伯文 (RTL)
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	English = "en"
	Arabic  = "ar"

	// DefaultLanguage 缺省语言
	DefaultLanguage = English

	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Locale 单个语言的文案
type Locale struct {
	Code      string            `yaml:"locale"`
	Name      string            `yaml:"name"`
	Direction string            `yaml:"direction"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle 全部语言文案
type Bundle struct {
	locales map[string]*Locale
	tags    []language.Tag
	matcher language.Matcher
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default 返回嵌入文案构成的 Bundle，并注册到 x/text/message
func Default() *Bundle {
	defaultOnce.Do(func() {
		b, err := LoadFromFS(localeFS)
		if err != nil {
			panic(fmt.Sprintf("加载内置语言包失败: %v", err))
		}
		b.Register()
		defaultBundle = b
	})
	return defaultBundle
}

// LoadFromFS 从文件系统加载 locales/*.yaml
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("没有找到语言文件")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]*Locale{}}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("读取 %s 失败: %w", path, err)
		}
		var loc Locale
		if err := yaml.Unmarshal(data, &loc); err != nil {
			return nil, fmt.Errorf("解析 %s 失败: %w", path, err)
		}
		loc.Code = strings.TrimSpace(loc.Code)
		if loc.Code == "" {
			return nil, fmt.Errorf("%s: 缺少 locale", path)
		}
		if _, exists := b.locales[loc.Code]; exists {
			return nil, fmt.Errorf("%s: locale %q 重复", path, loc.Code)
		}
		if loc.Direction != DirectionRTL {
			loc.Direction = DirectionLTR
		}
		b.locales[loc.Code] = &loc
	}

	if _, ok := b.locales[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("缺少默认语言 %s", DefaultLanguage)
	}

	// 默认语言放在第一位，作为 matcher 的兜底
	b.tags = append(b.tags, language.Make(DefaultLanguage))
	for _, code := range b.Codes() {
		if code != DefaultLanguage {
			b.tags = append(b.tags, language.Make(code))
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Register 把文案注册到 x/text/message 全局目录
func (b *Bundle) Register() {
	for code, loc := range b.locales {
		tag := language.Make(code)
		for key, msg := range loc.Messages {
			_ = message.SetString(tag, key, msg)
		}
	}
}

// Codes 支持的语言代码 (排序)
func (b *Bundle) Codes() []string {
	out := make([]string, 0, len(b.locales))
	for code := range b.locales {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Supports 是否支持该语言
func (b *Bundle) Supports(code string) bool {
	_, ok := b.locales[normalize(code)]
	return ok
}

// Resolve 解析最终使用的语言
// 优先级: 显式指定 > Accept-Language > 店铺默认 > en
func (b *Bundle) Resolve(explicit, acceptLanguage, fallback string) string {
	if code := normalize(explicit); b.Supports(code) {
		return code
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := b.matcher.Match(tags...)
			if confidence != language.No {
				base, _ := b.tags[idx].Base()
				return base.String()
			}
		}
	}
	if code := normalize(fallback); b.Supports(code) {
		return code
	}
	return DefaultLanguage
}

// Direction 文字方向
func (b *Bundle) Direction(code string) string {
	if loc, ok := b.locales[normalize(code)]; ok {
		return loc.Direction
	}
	return DirectionLTR
}

// Name 语言名称
func (b *Bundle) Name(code string) string {
	if loc, ok := b.locales[normalize(code)]; ok {
		return loc.Name
	}
	return code
}

// Toggle 英文 / 阿拉伯文切换
func (b *Bundle) Toggle(code string) string {
	if normalize(code) == Arabic {
		return English
	}
	return Arabic
}

// Messages 某语言的全部文案 (缺失的 key 回退到默认语言)
func (b *Bundle) Messages(code string) map[string]string {
	out := make(map[string]string)
	for k, v := range b.locales[DefaultLanguage].Messages {
		out[k] = v
	}
	if loc, ok := b.locales[normalize(code)]; ok {
		for k, v := range loc.Messages {
			out[k] = v
		}
	}
	return out
}

// T 翻译，支持 fmt 参数
func (b *Bundle) T(code, key string, args ...interface{}) string {
	return b.printer(code).Sprintf(key, args...)
}

// FormatPrice 按语言格式化金额，未知币种时退化为 "金额 币种"
func (b *Bundle) FormatPrice(code string, amount float64, currencyCode string) string {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode)))
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, currencyCode)
	}
	return b.printer(code).Sprint(currency.Symbol(unit.Amount(amount)))
}

func (b *Bundle) printer(code string) *message.Printer {
	code = normalize(code)
	if !b.Supports(code) {
		code = DefaultLanguage
	}
	return message.NewPrinter(language.Make(code))
}

func normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}
