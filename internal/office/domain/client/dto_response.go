package client

import (
	"time"

	"github.com/google/uuid"
)

type ClientResponseDto struct {
	UUID             uuid.UUID `json:"uuid"`
	FullName         string    `json:"full_name"`
	Sex              Sex       `json:"sex"`
	Nationality      string    `json:"nationality"`
	MaritalStatus    string    `json:"marital_status"`
	Disabled         bool      `json:"disabled"`
	BirthDate        *string   `json:"birth_date"`
	TaxID            string    `json:"tax_id"`
	RG               *string   `json:"rg"`
	IssuingAuthority *string   `json:"issuing_authority"`
	Profession       string    `json:"profession"`
	Street           string    `json:"street"`
	Number           string    `json:"number"`
	Neighborhood     string    `json:"neighborhood"`
	City             string    `json:"city"`
	PostalCode       string    `json:"postal_code"`
	Contact          string    `json:"contact"`
	Active           bool      `json:"active"`
	CreateAt         time.Time `json:"create_at"`
	UpdateAt         time.Time `json:"update_at"`
}

type ClientListResponseDto struct {
	Clients []ClientResponseDto `json:"clients"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
	Size    int                 `json:"size"`
}

func ToResponse(c Client) ClientResponseDto {
	resp := ClientResponseDto{
		UUID:             c.UUID,
		FullName:         c.FullName,
		Sex:              c.Sex,
		Nationality:      c.Nationality,
		MaritalStatus:    string(c.MaritalStatus),
		Disabled:         c.Disabled,
		TaxID:            c.TaxID,
		RG:               c.RG,
		IssuingAuthority: c.IssuingAuthority,
		Profession:       c.Profession,
		Street:           c.Street,
		Number:           c.Number,
		Neighborhood:     c.Neighborhood,
		City:             c.City,
		PostalCode:       c.PostalCode,
		Contact:          c.Contact,
		Active:           c.Active,
		CreateAt:         c.CreateAt,
		UpdateAt:         c.UpdateAt,
	}
	if c.BirthDate != nil {
		birth := c.BirthDate.Format(birthDateLayout)
		resp.BirthDate = &birth
	}
	return resp
}
