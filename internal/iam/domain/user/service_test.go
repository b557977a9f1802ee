package user

import (
	"context"
	"testing"

	"sistema-advocacia/internal/infra/database/dbtest"
	"sistema-advocacia/internal/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateHashesPassword(t *testing.T) {
	svc := NewService(NewRepository(dbtest.Open(t, &User{})))
	ctx := context.Background()

	created, err := svc.Create(ctx, User{Name: " Maria ", Email: "MARIA@example.com", Password: "senha-forte", Role: RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, "Maria", created.Name)
	assert.Equal(t, "maria@example.com", created.Email)
	assert.NotEqual(t, "senha-forte", created.Password)
	assert.NoError(t, util.UsePassword().Compare(created.Password, "senha-forte"))

	found, err := svc.Read(ctx, User{Email: "Maria@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.UUID, found.UUID)
}

func TestService_CreateValidation(t *testing.T) {
	svc := NewService(NewRepository(dbtest.Open(t, &User{})))
	ctx := context.Background()

	_, err := svc.Create(ctx, User{Name: "x", Email: "x@example.com", Password: "12345678", Role: "ROOT"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Create(ctx, User{Email: "x@example.com", Password: "12345678", Role: RoleStaff})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_SignupForcesStaff(t *testing.T) {
	svc := NewService(NewRepository(dbtest.Open(t, &User{})))

	created, err := svc.Signup(context.Background(), User{Name: "x", Email: "x@example.com", Password: "12345678", Role: RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, created.Role)
}

func TestService_UpdatePassword(t *testing.T) {
	svc := NewService(NewRepository(dbtest.Open(t, &User{})))
	ctx := context.Background()

	created, err := svc.Create(ctx, User{Name: "x", Email: "x@example.com", Password: "12345678", Role: RoleStaff})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, User{UUID: created.UUID, Password: "nova-senha-1"}, nil)
	require.NoError(t, err)
	assert.NoError(t, util.UsePassword().Compare(updated.Password, "nova-senha-1"))
	assert.True(t, updated.Live)
}
