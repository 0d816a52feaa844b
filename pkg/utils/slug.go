package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// Slugify 生成 URL 安全的标识
// 去掉重音符号，非字母数字字符替换为连字符；无法生成时返回空串
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(strings.ToLower(strings.TrimSpace(s))) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// 组合符号 (重音) 直接丢弃
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	slug := slugDashes.ReplaceAllString(b.String(), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 100 {
		slug = strings.TrimRight(slug[:100], "-")
	}
	return slug
}

// ValidSlug 是否为合法的 slug
func ValidSlug(s string) bool {
	return len(s) <= 100 && slugPattern.MatchString(s)
}
