package user

import (
	"context"
	"strings"
	"time"

	"sistema-advocacia/internal/pkg/util"
)

type Service interface {
	Signup(ctx context.Context, user User) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Read(ctx context.Context, user User) (User, error)
	List(ctx context.Context, page, pageSize int) ([]User, error)
	Update(ctx context.Context, user User, live *bool) (User, error)
	Delete(ctx context.Context, user User) error
}

type serviceImpl struct {
	Repository Repository
}

func NewService(repository Repository) Service {
	return &serviceImpl{
		Repository: repository,
	}
}

// Signup é o cadastro público: sempre STAFF e ativo.
func (s *serviceImpl) Signup(ctx context.Context, user User) (User, error) {
	user.Role = RoleStaff
	return s.Create(ctx, user)
}

func (s *serviceImpl) Create(ctx context.Context, user User) (User, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || user.Password == "" {
		return User{}, ErrInvalidInput
	}
	if !IsValidUserRole(user.Role) {
		return User{}, ErrInvalidRole
	}

	hashPwd, err := util.UsePassword().Hash(user.Password)
	if err != nil {
		return User{}, err
	}

	now := time.Now().UTC()
	return s.Repository.Create(ctx, User{
		Name:     strings.TrimSpace(user.Name),
		Email:    strings.ToLower(strings.TrimSpace(user.Email)),
		Password: hashPwd,
		Role:     user.Role,
		Live:     true,
		CreateAt: now,
		UpdateAt: now,
	})
}

func (s *serviceImpl) Read(ctx context.Context, user User) (User, error) {
	return s.Repository.Read(ctx, user)
}

func (s *serviceImpl) List(ctx context.Context, page, pageSize int) ([]User, error) {
	return s.Repository.List(ctx, page, pageSize)
}

func (s *serviceImpl) Update(ctx context.Context, user User, live *bool) (User, error) {
	if user.Role != "" && !IsValidUserRole(user.Role) {
		return User{}, ErrInvalidRole
	}
	if user.Password != "" {
		hashPwd, err := util.UsePassword().Hash(user.Password)
		if err != nil {
			return User{}, err
		}
		user.Password = hashPwd
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.UpdateAt = time.Now().UTC()

	return s.Repository.Update(ctx, user, live)
}

func (s *serviceImpl) Delete(ctx context.Context, user User) error {
	found, err := s.Repository.Read(ctx, user)
	if err != nil {
		return err
	}
	if found.Role == RoleAdmin {
		admins, err := s.Repository.CountByRole(ctx, RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}
	return s.Repository.Delete(ctx, found)
}
