package doctemplate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, tpl DocumentTemplate) (DocumentTemplate, error)
	Read(ctx context.Context, tpl DocumentTemplate) (DocumentTemplate, error)
	List(ctx context.Context, page, size int) ([]DocumentTemplate, int64, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (DocumentTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repositoryImpl) Create(ctx context.Context, tpl DocumentTemplate) (DocumentTemplate, error) {
	if err := r.db.WithContext(ctx).Create(&tpl).Error; err != nil {
		return DocumentTemplate{}, err
	}
	return tpl, nil
}

func (r *repositoryImpl) Read(ctx context.Context, tpl DocumentTemplate) (DocumentTemplate, error) {
	if tpl.UUID == uuid.Nil {
		return DocumentTemplate{}, ErrNotFound
	}

	var found DocumentTemplate
	if err := r.db.WithContext(ctx).Where("uuid = ?", tpl.UUID).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentTemplate{}, ErrNotFound
		}
		return DocumentTemplate{}, err
	}
	return found, nil
}

func (r *repositoryImpl) List(ctx context.Context, page, size int) ([]DocumentTemplate, int64, error) {
	page, size = normalizePage(page, size)

	var total int64
	if err := r.db.WithContext(ctx).Model(&DocumentTemplate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var templates []DocumentTemplate
	err := r.db.WithContext(ctx).
		Order("title ASC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}
	return templates, total, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (DocumentTemplate, error) {
	if len(fields) == 0 {
		return DocumentTemplate{}, ErrNothingToUpdate
	}

	query := r.db.WithContext(ctx).
		Model(&DocumentTemplate{}).
		Where("uuid = ?", id).
		Updates(fields)
	if query.Error != nil {
		return DocumentTemplate{}, fmt.Errorf("erro ao atualizar modelo: %w", query.Error)
	}
	if query.RowsAffected == 0 {
		return DocumentTemplate{}, ErrNotFound
	}

	return r.Read(ctx, DocumentTemplate{UUID: id})
}

func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&DocumentTemplate{})
	if query.Error != nil {
		return query.Error
	}
	if query.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
