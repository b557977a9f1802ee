package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, client Client) (Client, error)
	Read(ctx context.Context, client Client) (Client, error)
	List(ctx context.Context, filter Filter) ([]Client, int64, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrTaxIDDuplicated
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrTaxIDDuplicated
	}
	return err
}

func (r *repositoryImpl) Create(ctx context.Context, client Client) (Client, error) {
	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return Client{}, translateError(err)
	}
	return client, nil
}

// Read busca por UUID ou, na falta dele, por CPF/CNPJ.
func (r *repositoryImpl) Read(ctx context.Context, client Client) (Client, error) {
	query := r.db.WithContext(ctx)
	switch {
	case client.UUID != uuid.Nil:
		query = query.Where("uuid = ?", client.UUID)
	case client.TaxID != "":
		query = query.Where("tax_id = ?", client.TaxID)
	default:
		return Client{}, ErrNotFound
	}

	var found Client
	if err := query.First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Client{}, ErrNotFound
		}
		return Client{}, err
	}
	return found, nil
}

func (r *repositoryImpl) List(ctx context.Context, filter Filter) ([]Client, int64, error) {
	page, size := normalizePage(filter.Page, filter.Size)

	var total int64
	if err := r.db.WithContext(ctx).Model(&Client{}).Scopes(filterScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []Client
	err := r.db.WithContext(ctx).
		Scopes(filterScope(filter)).
		Order("full_name ASC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func filterScope(filter Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Active != nil {
			db = db.Where("active = ?", *filter.Active)
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			db = db.Where("lower(full_name) LIKE ? OR tax_id LIKE ?", like, like)
		}
		return db
	}
}

func (r *repositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (Client, error) {
	if len(fields) == 0 {
		return Client{}, ErrNothingToUpdate
	}

	query := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("uuid = ?", id).
		Updates(fields)
	if query.Error != nil {
		err := translateError(query.Error)
		if errors.Is(err, ErrTaxIDDuplicated) {
			return Client{}, err
		}
		return Client{}, fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if query.RowsAffected == 0 {
		return Client{}, ErrNotFound
	}

	return r.Read(ctx, Client{UUID: id})
}

func (r *repositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&Client{})
	if query.Error != nil {
		return query.Error
	}
	if query.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Client{}).Count(&total).Error
	return total, err
}
