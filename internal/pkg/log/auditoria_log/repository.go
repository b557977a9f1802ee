package auditoria_log

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Save(ctx context.Context, entry AuditLog) error
	ListByDomain(ctx context.Context, domain string, limit int) ([]AuditLog, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Save(ctx context.Context, entry AuditLog) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *repositoryImpl) ListByDomain(ctx context.Context, domain string, limit int) ([]AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []AuditLog
	err := r.db.WithContext(ctx).
		Where("domain = ?", domain).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
