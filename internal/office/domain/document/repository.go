package document

import (
	"context"

	"gorm.io/gorm"
)

// Repository do histórico. Não há update nem delete: o histórico só cresce.
type Repository interface {
	Create(ctx context.Context, doc GeneratedDocument) (GeneratedDocument, error)
	List(ctx context.Context, filter Filter) ([]GeneratedDocument, int64, error)
	Recent(ctx context.Context, limit int) ([]GeneratedDocument, error)
	Count(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{
		db: db,
	}
}

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}

func (r *repositoryImpl) Create(ctx context.Context, doc GeneratedDocument) (GeneratedDocument, error) {
	if err := r.db.WithContext(ctx).Omit("Client", "Template").Create(&doc).Error; err != nil {
		return GeneratedDocument{}, err
	}
	return doc, nil
}

func (r *repositoryImpl) List(ctx context.Context, filter Filter) ([]GeneratedDocument, int64, error) {
	page, size := normalizePage(filter.Page, filter.Size)

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.ClientUUID != nil {
			return db.Where("client_uuid = ?", *filter.ClientUUID)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&GeneratedDocument{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []GeneratedDocument
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Preload("Client").
		Order("create_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (r *repositoryImpl) Recent(ctx context.Context, limit int) ([]GeneratedDocument, error) {
	var docs []GeneratedDocument
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("create_at DESC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}

func (r *repositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&GeneratedDocument{}).Count(&total).Error
	return total, err
}
