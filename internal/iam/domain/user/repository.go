package user

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
	Create(ctx context.Context, user User) (User, error)
	Read(ctx context.Context, user User) (User, error)
	List(ctx context.Context, page, pageSize int) ([]User, error)
	Update(ctx context.Context, user User, live *bool) (User, error)
	Delete(ctx context.Context, user User) error
	CountByRole(ctx context.Context, role UserRole) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{
		db: db,
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailDuplicated
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailDuplicated
	}
	return err
}

func (r *repositoryImpl) Create(ctx context.Context, user User) (User, error) {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return User{}, translateError(err)
	}
	return user, nil
}

func (r *repositoryImpl) Read(ctx context.Context, user User) (User, error) {
	query := r.db.WithContext(ctx)
	switch {
	case user.UUID != uuid.Nil:
		query = query.Where("uuid = ?", user.UUID)
	case user.Email != "":
		query = query.Where("lower(email) = ?", strings.ToLower(user.Email))
	default:
		return User{}, ErrInvalidInput
	}

	var found User
	if err := query.First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return found, nil
}

func (r *repositoryImpl) List(ctx context.Context, page, pageSize int) ([]User, error) {
	page, pageSize = normalizePage(page, pageSize)

	var users []User
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// Update grava apenas os campos preenchidos; live nil mantém o valor atual.
func (r *repositoryImpl) Update(ctx context.Context, user User, live *bool) (User, error) {
	updateFields := make(map[string]interface{})

	if user.Name != "" {
		updateFields["name"] = user.Name
	}
	if user.Email != "" {
		updateFields["email"] = user.Email
	}
	if user.Password != "" {
		updateFields["password_hash"] = user.Password
	}
	if user.Role != "" {
		updateFields["role"] = user.Role
	}
	if live != nil {
		updateFields["live"] = *live
	}
	if len(updateFields) == 0 {
		return User{}, ErrNothingToUpdate
	}
	if !user.UpdateAt.IsZero() {
		updateFields["update_at"] = user.UpdateAt
	}

	query := r.db.WithContext(ctx).
		Model(&User{}).
		Where("uuid = ?", user.UUID).
		Updates(updateFields)
	if query.Error != nil {
		err := translateError(query.Error)
		if errors.Is(err, ErrEmailDuplicated) {
			return User{}, err
		}
		return User{}, fmt.Errorf("erro ao atualizar usuário: %w", err)
	}
	if query.RowsAffected == 0 {
		return User{}, ErrNotFound
	}

	return r.Read(ctx, User{UUID: user.UUID})
}

func (r *repositoryImpl) Delete(ctx context.Context, user User) error {
	query := r.db.WithContext(ctx).Where("uuid = ?", user.UUID).Delete(&User{})
	if query.Error != nil {
		return query.Error
	}
	if query.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repositoryImpl) CountByRole(ctx context.Context, role UserRole) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("role = ?", role).Count(&total).Error
	return total, err
}
