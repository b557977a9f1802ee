package acess_log

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Save(ctx context.Context, entry AccessLog) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]AccessLog, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Save(ctx context.Context, entry AccessLog) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *repositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&AccessLog{}).Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Recent(ctx context.Context, limit int) ([]AccessLog, error) {
	var entries []AccessLog
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
