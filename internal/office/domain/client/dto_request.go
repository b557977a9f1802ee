package client

type CreateClientRequestDto struct {
	FullName         string  `json:"full_name" binding:"required,max=255"`
	Sex              string  `json:"sex" binding:"omitempty,oneof=M F"`
	Nationality      string  `json:"nationality" binding:"max=50"`
	MaritalStatus    string  `json:"marital_status" binding:"required,oneof=S C D V"`
	Disabled         bool    `json:"disabled"`
	BirthDate        string  `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	TaxID            string  `json:"tax_id" binding:"required,max=20"`
	RG               *string `json:"rg" binding:"omitempty,max=20"`
	IssuingAuthority *string `json:"issuing_authority" binding:"omitempty,max=20"`
	Profession       string  `json:"profession" binding:"required,max=100"`
	Street           string  `json:"street" binding:"required,max=255"`
	Number           string  `json:"number" binding:"required,max=10"`
	Neighborhood     string  `json:"neighborhood" binding:"max=100"`
	City             string  `json:"city" binding:"max=100"`
	PostalCode       string  `json:"postal_code" binding:"required,max=10"`
	Contact          string  `json:"contact" binding:"required,max=100"`
	Active           *bool   `json:"active"`
}

type UpdateClientRequestDto struct {
	FullName         *string `json:"full_name" binding:"omitempty,max=255"`
	Sex              *string `json:"sex" binding:"omitempty,oneof=M F"`
	Nationality      *string `json:"nationality" binding:"omitempty,max=50"`
	MaritalStatus    *string `json:"marital_status" binding:"omitempty,oneof=S C D V"`
	Disabled         *bool   `json:"disabled"`
	BirthDate        *string `json:"birth_date"`
	TaxID            *string `json:"tax_id" binding:"omitempty,max=20"`
	RG               *string `json:"rg" binding:"omitempty,max=20"`
	IssuingAuthority *string `json:"issuing_authority" binding:"omitempty,max=20"`
	Profession       *string `json:"profession" binding:"omitempty,max=100"`
	Street           *string `json:"street" binding:"omitempty,max=255"`
	Number           *string `json:"number" binding:"omitempty,max=10"`
	Neighborhood     *string `json:"neighborhood" binding:"omitempty,max=100"`
	City             *string `json:"city" binding:"omitempty,max=100"`
	PostalCode       *string `json:"postal_code" binding:"omitempty,max=10"`
	Contact          *string `json:"contact" binding:"omitempty,max=100"`
	Active           *bool   `json:"active"`
}

type ListClientRequestDto struct {
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Active *bool  `form:"active"`
	Search string `form:"search"`
}

func (req CreateClientRequestDto) toClient() (Client, error) {
	c := Client{
		FullName:         req.FullName,
		Sex:              Sex(req.Sex),
		Nationality:      req.Nationality,
		MaritalStatus:    MaritalStatus(req.MaritalStatus),
		Disabled:         req.Disabled,
		TaxID:            req.TaxID,
		RG:               req.RG,
		IssuingAuthority: req.IssuingAuthority,
		Profession:       req.Profession,
		Street:           req.Street,
		Number:           req.Number,
		Neighborhood:     req.Neighborhood,
		City:             req.City,
		PostalCode:       req.PostalCode,
		Contact:          req.Contact,
		Active:           true,
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	if req.BirthDate != "" {
		birth, err := parseBirthDate(req.BirthDate)
		if err != nil {
			return Client{}, err
		}
		c.BirthDate = birth
	}
	return c, nil
}

func (req UpdateClientRequestDto) toPatch() Patch {
	p := Patch{
		FullName:         req.FullName,
		Nationality:      req.Nationality,
		Disabled:         req.Disabled,
		BirthDate:        req.BirthDate,
		TaxID:            req.TaxID,
		RG:               req.RG,
		IssuingAuthority: req.IssuingAuthority,
		Profession:       req.Profession,
		Street:           req.Street,
		Number:           req.Number,
		Neighborhood:     req.Neighborhood,
		City:             req.City,
		PostalCode:       req.PostalCode,
		Contact:          req.Contact,
		Active:           req.Active,
	}
	if req.Sex != nil {
		s := Sex(*req.Sex)
		p.Sex = &s
	}
	if req.MaritalStatus != nil {
		m := MaritalStatus(*req.MaritalStatus)
		p.MaritalStatus = &m
	}
	return p
}
