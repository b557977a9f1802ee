package client

import (
	"context"
	"testing"

	"sistema-advocacia/internal/infra/database/dbtest"
	"sistema-advocacia/internal/office/domain/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() Client {
	return Client{
		FullName:      " Maria Silva ",
		MaritalStatus: model.MaritalSingle,
		TaxID:         "123",
		Profession:    "advogada",
		Street:        "Rua A",
		Number:        "1",
		PostalCode:    "00000-000",
		Contact:       "maria@example.com",
		Active:        true,
	}
}

func TestService_CreateDefaults(t *testing.T) {
	svc := NewService(NewRepository(dbtest.Open(t, &Client{})))
	ctx := context.Background()

	created, err := svc.Create(ctx, newClient())
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", created.FullName)
	assert.Equal(t, model.SexMale, created.Sex)
	assert.Equal(t, model.DefaultNationality, created.Nationality)

	total, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, err = svc.Create(ctx, newClient())
	assert.ErrorIs(t, err, ErrTaxIDDuplicated)
}

func TestService_CreateValidation(t *testing.T) {
	svc := NewService(NewRepository(dbtest.Open(t, &Client{})))
	ctx := context.Background()

	c := newClient()
	c.Sex = "X"
	_, err := svc.Create(ctx, c)
	assert.ErrorIs(t, err, ErrInvalidSex)

	c = newClient()
	c.MaritalStatus = ""
	_, err = svc.Create(ctx, c)
	assert.ErrorIs(t, err, ErrInvalidMaritalStatus)

	c = newClient()
	c.Contact = ""
	_, err = svc.Create(ctx, c)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ReadNotFoundWrapsModel(t *testing.T) {
	svc := NewService(NewRepository(dbtest.Open(t, &Client{})))

	_, err := svc.Read(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPatchFields(t *testing.T) {
	empty := ""
	sex := model.SexFemale
	city := " Recife "
	nationality := ""

	fields, err := patchFields(Patch{RG: &empty, Sex: &sex, City: &city, Nationality: &nationality})
	require.NoError(t, err)
	assert.Nil(t, fields["rg"])
	assert.Contains(t, fields, "rg")
	assert.Equal(t, model.SexFemale, fields["sex"])
	assert.Equal(t, "Recife", fields["city"])
	assert.Equal(t, model.DefaultNationality, fields["nationality"])

	bad := "nunca"
	_, err = patchFields(Patch{BirthDate: &bad})
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	fields, err = patchFields(Patch{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}
