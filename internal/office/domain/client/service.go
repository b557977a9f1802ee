package client

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sistema-advocacia/internal/office/domain/model"
)

type Service interface {
	Create(ctx context.Context, client Client) (Client, error)
	Read(ctx context.Context, id uuid.UUID) (Client, error)
	List(ctx context.Context, filter Filter) ([]Client, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch Patch) (Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	Repository Repository
}

func NewService(repository Repository) Service {
	return &serviceImpl{
		Repository: repository,
	}
}

func (s *serviceImpl) Create(ctx context.Context, client Client) (Client, error) {
	client.FullName = strings.TrimSpace(client.FullName)
	client.TaxID = strings.TrimSpace(client.TaxID)
	client.Nationality = strings.TrimSpace(client.Nationality)

	if client.Sex == "" {
		client.Sex = model.SexMale
	}
	if client.Nationality == "" {
		client.Nationality = model.DefaultNationality
	}
	if !model.IsValidSex(client.Sex) {
		return Client{}, ErrInvalidSex
	}
	if !model.IsValidMaritalStatus(client.MaritalStatus) {
		return Client{}, ErrInvalidMaritalStatus
	}
	for _, required := range []string{
		client.FullName, client.TaxID, client.Profession, client.Street,
		client.Number, client.PostalCode, client.Contact,
	} {
		if strings.TrimSpace(required) == "" {
			return Client{}, ErrInvalidInput
		}
	}

	client.UUID = uuid.Nil
	now := time.Now().UTC()
	client.CreateAt = now
	client.UpdateAt = now

	return s.Repository.Create(ctx, client)
}

func (s *serviceImpl) Read(ctx context.Context, id uuid.UUID) (Client, error) {
	if id == uuid.Nil {
		return Client{}, ErrNotFound
	}
	return s.Repository.Read(ctx, Client{UUID: id})
}

func (s *serviceImpl) List(ctx context.Context, filter Filter) ([]Client, int64, error) {
	filter.Page, filter.Size = normalizePage(filter.Page, filter.Size)
	return s.Repository.List(ctx, filter)
}

func (s *serviceImpl) Update(ctx context.Context, id uuid.UUID, patch Patch) (Client, error) {
	fields, err := patchFields(patch)
	if err != nil {
		return Client{}, err
	}
	if len(fields) == 0 {
		return Client{}, ErrNothingToUpdate
	}
	fields["update_at"] = time.Now().UTC()

	return s.Repository.Update(ctx, id, fields)
}

func (s *serviceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repository.Delete(ctx, id)
}

func (s *serviceImpl) Count(ctx context.Context) (int64, error) {
	return s.Repository.Count(ctx)
}

// patchFields converte o Patch em colunas. Campos obrigatórios não aceitam vazio.
func patchFields(p Patch) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	required := []struct {
		column string
		value  *string
	}{
		{"full_name", p.FullName},
		{"tax_id", p.TaxID},
		{"profession", p.Profession},
		{"street", p.Street},
		{"number", p.Number},
		{"postal_code", p.PostalCode},
		{"contact", p.Contact},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		v := strings.TrimSpace(*f.value)
		if v == "" {
			return nil, ErrInvalidInput
		}
		fields[f.column] = v
	}

	optional := []struct {
		column string
		value  *string
	}{
		{"neighborhood", p.Neighborhood},
		{"city", p.City},
	}
	for _, f := range optional {
		if f.value != nil {
			fields[f.column] = strings.TrimSpace(*f.value)
		}
	}

	// rg e órgão expeditor vazios voltam a NULL
	nullable := []struct {
		column string
		value  *string
	}{
		{"rg", p.RG},
		{"issuing_authority", p.IssuingAuthority},
	}
	for _, f := range nullable {
		if f.value == nil {
			continue
		}
		if v := strings.TrimSpace(*f.value); v != "" {
			fields[f.column] = v
		} else {
			fields[f.column] = nil
		}
	}

	if p.Nationality != nil {
		nationality := strings.TrimSpace(*p.Nationality)
		if nationality == "" {
			nationality = model.DefaultNationality
		}
		fields["nationality"] = nationality
	}
	if p.Sex != nil {
		if !model.IsValidSex(*p.Sex) {
			return nil, ErrInvalidSex
		}
		fields["sex"] = *p.Sex
	}
	if p.MaritalStatus != nil {
		if !model.IsValidMaritalStatus(*p.MaritalStatus) {
			return nil, ErrInvalidMaritalStatus
		}
		fields["marital_status"] = *p.MaritalStatus
	}
	if p.BirthDate != nil {
		if strings.TrimSpace(*p.BirthDate) == "" {
			fields["birth_date"] = nil
		} else {
			birth, err := parseBirthDate(*p.BirthDate)
			if err != nil {
				return nil, err
			}
			fields["birth_date"] = *birth
		}
	}
	if p.Disabled != nil {
		fields["disabled"] = *p.Disabled
	}
	if p.Active != nil {
		fields["active"] = *p.Active
	}

	return fields, nil
}

func parseBirthDate(raw string) (*time.Time, error) {
	birth, err := time.Parse(birthDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil, ErrInvalidBirthDate
	}
	return &birth, nil
}
