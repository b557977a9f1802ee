package client

import "sistema-advocacia/internal/office/domain/model"

type (
	Client        = model.Client
	Sex           = model.Sex
	MaritalStatus = model.MaritalStatus
)

const birthDateLayout = "2006-01-02"

// Patch carrega apenas os campos enviados num PATCH; nil mantém o valor atual.
type Patch struct {
	FullName         *string
	Sex              *Sex
	Nationality      *string
	MaritalStatus    *MaritalStatus
	Disabled         *bool
	BirthDate        *string
	TaxID            *string
	RG               *string
	IssuingAuthority *string
	Profession       *string
	Street           *string
	Number           *string
	Neighborhood     *string
	City             *string
	PostalCode       *string
	Contact          *string
	Active           *bool
}

// Filter da listagem. Active nil lista todos.
type Filter struct {
	Page   int
	Size   int
	Active *bool
	Search string
}
