package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	CreateAcessToken(ctx context.Context, m AcessToken) error
	RevokeAcessToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID string) error
	GetAcessToken(ctx context.Context, token string) (AcessToken, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{
		db: db,
	}
}

func (r *repositoryImpl) CreateAcessToken(ctx context.Context, m AcessToken) error {
	err := r.db.WithContext(ctx).Create(&m).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrTokenDuplicated
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23503") {
		return ErrTokenDuplicated
	}
	return err
}

func (r *repositoryImpl) RevokeAcessToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&AcessToken{}).
		Where("token = ?", token).
		Update("expire_date", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *repositoryImpl) RevokeAllUserTokens(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&AcessToken{}).
		Where("user_uuid = ? AND expire_date > ?", userID, now).
		Update("expire_date", now).Error
}

func (r *repositoryImpl) GetAcessToken(ctx context.Context, token string) (AcessToken, error) {
	var m AcessToken
	if err := r.db.WithContext(ctx).First(&m, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AcessToken{}, ErrTokenNotFound
		}
		return AcessToken{}, err
	}
	return m, nil
}
