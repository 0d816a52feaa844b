package utils

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize 上传图片大小上限
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// DetectImage 按文件内容识别图片类型，返回 MIME 与扩展名
// 不信任客户端给出的 Content-Type
func DetectImage(data []byte) (contentType string, ext string, err error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("文件为空")
	}
	if len(data) > MaxImageSize {
		return "", "", fmt.Errorf("图片超过 %d MB", MaxImageSize>>20)
	}

	mt := mimetype.Detect(data)
	contentType = strings.ToLower(mt.String())
	if i := strings.Index(contentType, ";"); i > 0 {
		contentType = contentType[:i]
	}
	if !allowedImageTypes[contentType] {
		return "", "", fmt.Errorf("不支持的图片类型: %s", contentType)
	}
	return contentType, mt.Extension(), nil
}
