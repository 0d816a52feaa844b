package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asad200-stack/ONEWEB/internal/model"
)

// RevokedTokenRepository 已注销 Token 仓储接口
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, token *model.RevokedToken) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type revokedTokenRepo struct {
	db *gorm.DB
}

// NewRevokedTokenRepository 创建已注销 Token 仓储
func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepository {
	return &revokedTokenRepo{db: db}
}

// Revoke 记录注销，重复注销忽略
func (r *revokedTokenRepo) Revoke(ctx context.Context, token *model.RevokedToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "jti"}}, DoNothing: true}).
		Create(token).Error
}

func (r *revokedTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

// DeleteExpired 清理已过期的注销记录
func (r *revokedTokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.RevokedToken{})
	return result.RowsAffected, result.Error
}
