// Package locale concentra os rótulos de exibição dependentes de idioma.
package locale

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sistema-advocacia/internal/office/domain/model"
)

const (
	PtBR    = "pt-BR"
	English = "en"
	Default = PtBR
)

var maritalLabels = map[string]map[model.MaritalStatus]string{
	PtBR: {
		model.MaritalSingle:   "Solteiro(a)",
		model.MaritalMarried:  "Casado(a)",
		model.MaritalDivorced: "Divorciado(a)",
		model.MaritalWidowed:  "Viúvo(a)",
	},
	English: {
		model.MaritalSingle:   "Single",
		model.MaritalMarried:  "Married",
		model.MaritalDivorced: "Divorced",
		model.MaritalWidowed:  "Widowed",
	},
}

// Normalize devolve um idioma suportado, caindo para pt-BR.
func Normalize(lang string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return Default
	}
	base, _ := tag.Base()
	if base.String() == "en" {
		return English
	}
	return Default
}

// MaritalStatusLabel devolve o rótulo legível do estado civil no idioma informado.
// Códigos desconhecidos resultam em string vazia.
func MaritalStatusLabel(lang string, status model.MaritalStatus) string {
	return maritalLabels[Normalize(lang)][status]
}

// Lower aplica as regras de caixa do idioma.
func Lower(lang, s string) string {
	return cases.Lower(tagFor(lang)).String(s)
}

func tagFor(lang string) language.Tag {
	if Normalize(lang) == English {
		return language.English
	}
	return language.BrazilianPortuguese
}
