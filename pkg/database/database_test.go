package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Options{Driver: "mysql", DSN: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	db, err := Open(Options{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, m := range model.AllModels() {
		assert.True(t, db.Migrator().HasTable(m), "%T 未建表", m)
	}

	ctx := context.Background()
	u := &model.User{Email: "a@example.com", Name: "A", Password: "x", IsActive: true}
	require.NoError(t, db.WithContext(ctx).Create(u).Error)

	// 唯一索引冲突被翻译
	dup := &model.User{Email: "a@example.com", Name: "B", Password: "x", IsActive: true}
	err = db.WithContext(ctx).Create(dup).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"error":  logger.Error,
		"info":   logger.Info,
		"warn":   logger.Warn,
		"":       logger.Warn,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
