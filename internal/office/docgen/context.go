package docgen

import (
	"regexp"
	"strings"

	"sistema-advocacia/internal/office/domain/model"
	"sistema-advocacia/internal/pkg/locale"
)

const (
	// MissingBirthDate substitui a data de nascimento ausente.
	MissingBirthDate = "XX/XX/XXXX"
	disabilityClause = ", deficiente"
	birthDateLayout  = "02/01/2006"
)

// Tags usadas pelos modelos .docx.
const (
	TagName             = "nome"
	TagFullName         = "nome_completo"
	TagNationality      = "nacionalidade"
	TagMaritalStatus    = "estado_civil"
	TagDisability       = "deficiente"
	TagBorn             = "nascido"
	TagBirthDate        = "data_nascimento"
	TagTaxID            = "cpf_cnpj"
	TagRG               = "rg"
	TagIssuingAuthority = "orgao_expeditor"
	TagStreet           = "endereco"
	TagNumber           = "numero"
	TagNeighborhood     = "bairro"
	TagCity             = "cidade"
	TagPostalCode       = "cep"
	TagContact          = "contato"
	TagProfession       = "profissao"
)

// Context é o conjunto fechado de valores que alimenta um modelo.
type Context struct {
	FullName         string
	Nationality      string
	MaritalStatus    string
	Disability       string
	Born             string
	BirthDate        string
	TaxID            string
	RG               string
	IssuingAuthority string
	Street           string
	Number           string
	Neighborhood     string
	City             string
	PostalCode       string
	Contact          string
	Profession       string
}

// Tags devolve o mapeamento tag -> valor. Todas as tags estão sempre presentes.
func (c Context) Tags() map[string]string {
	return map[string]string{
		TagName:             c.FullName,
		TagFullName:         c.FullName,
		TagNationality:      c.Nationality,
		TagMaritalStatus:    c.MaritalStatus,
		TagDisability:       c.Disability,
		TagBorn:             c.Born,
		TagBirthDate:        c.BirthDate,
		TagTaxID:            c.TaxID,
		TagRG:               c.RG,
		TagIssuingAuthority: c.IssuingAuthority,
		TagStreet:           c.Street,
		TagNumber:           c.Number,
		TagNeighborhood:     c.Neighborhood,
		TagCity:             c.City,
		TagPostalCode:       c.PostalCode,
		TagContact:          c.Contact,
		TagProfession:       c.Profession,
	}
}

// BuildContext monta o contexto de um cliente. Sexo fora de M/F usa a forma masculina.
func BuildContext(client model.Client, lang string) Context {
	ctx := Context{
		FullName:         client.FullName,
		Nationality:      genderedNationality(client.Nationality, client.Sex),
		MaritalStatus:    locale.Lower(lang, locale.MaritalStatusLabel(lang, client.MaritalStatus)),
		Born:             "nascido",
		BirthDate:        MissingBirthDate,
		TaxID:            client.TaxID,
		RG:               deref(client.RG),
		IssuingAuthority: deref(client.IssuingAuthority),
		Street:           client.Street,
		Number:           client.Number,
		Neighborhood:     client.Neighborhood,
		City:             client.City,
		PostalCode:       client.PostalCode,
		Contact:          client.Contact,
		Profession:       client.Profession,
	}

	if client.Sex == model.SexFemale {
		ctx.Born = "nascida"
	}
	if client.Disabled {
		ctx.Disability = disabilityClause
	}
	if client.BirthDate != nil {
		ctx.BirthDate = client.BirthDate.Format(birthDateLayout)
	}

	return ctx
}

var genderMarker = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// genderedNationality: "Brasileira(o)" -> "brasileira" (F) / "brasileiro" (M).
func genderedNationality(nationality string, sex model.Sex) string {
	base := strings.ToLower(strings.TrimSpace(nationality))
	if base == "" {
		base = strings.ToLower(model.DefaultNationality)
	}
	base = genderMarker.ReplaceAllString(base, "")
	if strings.HasSuffix(base, "a") || strings.HasSuffix(base, "o") {
		base = base[:len(base)-1]
	}

	if sex == model.SexFemale {
		return base + "a"
	}
	return base + "o"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
