package docgen

import (
	"testing"

	"sistema-advocacia/internal/office/docgen/docxtest"
)

func paragraph(runs ...string) string { return docxtest.Paragraph(runs...) }

func buildDocx(t *testing.T, body string) []byte { return docxtest.Build(t, body) }

func readDocumentXML(t *testing.T, data []byte) string { return docxtest.DocumentXML(t, data) }
