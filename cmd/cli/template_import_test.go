package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sistema-advocacia/internal/office/domain/doctemplate"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	created []doctemplate.Upload
	fail    map[string]error
}

func (f *fakeCreator) Create(_ context.Context, title, description string, file doctemplate.Upload) (doctemplate.DocumentTemplate, []string, error) {
	if err := f.fail[title]; err != nil {
		return doctemplate.DocumentTemplate{}, nil, err
	}
	f.created = append(f.created, file)
	return doctemplate.DocumentTemplate{UUID: uuid.New(), Title: title, Description: description}, []string{"nome", "apelido"}, nil
}

func TestParseManifest(t *testing.T) {
	m, err := parseManifest([]byte(`
templates:
  - title: Procuração
    description: Procuração ad judicia
    file: modelos/procuracao.docx
  - title: Contrato
    file: /abs/contrato.docx
`))
	require.NoError(t, err)
	require.Len(t, m.Templates, 2)
	assert.Equal(t, "Procuração", m.Templates[0].Title)
	assert.Equal(t, "modelos/procuracao.docx", m.Templates[0].File)
	assert.Empty(t, m.Templates[1].Description)
}

func TestParseManifest_Invalid(t *testing.T) {
	for name, raw := range map[string]string{
		"vazio":       "templates: []",
		"sem arquivo": "templates:\n  - title: X\n",
		"sem título":  "templates:\n  - file: x.docx\n",
		"yaml ruim":   "templates: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseManifest([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestResolveFile(t *testing.T) {
	assert.Equal(t, filepath.Join("base", "a.docx"), resolveFile("base", "a.docx"))
	abs := filepath.Join(string(filepath.Separator), "tmp", "a.docx")
	assert.Equal(t, abs, resolveFile("base", abs))
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "procuracao.docx"), []byte("docx-1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contrato.docx"), []byte("docx-2"), 0o644))

	boom := errors.New("boom")
	svc := &fakeCreator{fail: map[string]error{"Contrato": boom}}
	m := manifest{Templates: []manifestEntry{
		{Title: "Procuração", File: "procuracao.docx"},
		{Title: "Contrato", File: "contrato.docx"},
		{Title: "Faltando", File: "nao-existe.docx"},
	}}

	imported, err := runImport(context.Background(), svc, m, dir)

	assert.Equal(t, 1, imported)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "procuracao.docx", svc.created[0].Filename)
	assert.Equal(t, []byte("docx-1"), svc.created[0].Body)
}

func TestLoadManifest_BaseDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modelos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates:\n  - title: A\n    file: a.docx\n"), 0o644))

	m, baseDir, err := loadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, dir, baseDir)
	assert.Len(t, m.Templates, 1)
}
