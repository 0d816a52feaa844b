package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 创建 zap Logger
// format: json (生产) / console (开发)
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", level, err)
	}

	var cfg zap.Config
	if strings.EqualFold(format, "json") {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// MustNew 配置无效时退回开发模式 Logger
func MustNew(level, format string) *zap.Logger {
	l, err := New(level, format)
	if err != nil {
		fallback, _ := zap.NewDevelopment()
		if fallback == nil {
			return zap.NewNop()
		}
		fallback.Warn("日志配置无效，使用默认配置", zap.Error(err))
		return fallback
	}
	return l
}
