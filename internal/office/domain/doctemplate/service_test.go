package doctemplate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sistema-advocacia/internal/infra/database/dbtest"
	"sistema-advocacia/internal/infra/storage"
	"sistema-advocacia/internal/office/docgen/docxtest"
	"sistema-advocacia/internal/office/domain/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceEnv struct {
	svc  Service
	root string
}

func newServiceEnv(t *testing.T, maxBytes int64) serviceEnv {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalStore(root)
	require.NoError(t, err)
	return serviceEnv{
		svc:  NewService(NewRepository(dbtest.Open(t, &DocumentTemplate{})), store, maxBytes),
		root: root,
	}
}

func (e serviceEnv) exists(key string) bool {
	_, err := os.Stat(filepath.Join(e.root, filepath.FromSlash(key)))
	return err == nil
}

func contrato(t *testing.T) Upload {
	return Upload{Filename: "contrato.docx", Body: docxtest.Build(t, docxtest.Paragraph("Contratante: {{nome_completo}}, {{vara}}"))}
}

func TestService_Create(t *testing.T) {
	e := newServiceEnv(t, 0)
	ctx := context.Background()

	created, tags, err := e.svc.Create(ctx, " Contrato ", `<script>alert(1)</script>Honorários & <b>custas</b>`, contrato(t))
	require.NoError(t, err)

	assert.Equal(t, "Contrato", created.Title)
	assert.Equal(t, "Honorários & custas", created.Description)
	assert.Equal(t, []string{"nome_completo", "vara"}, tags)
	assert.True(t, strings.HasPrefix(created.FilePath, KeyPrefix))
	assert.True(t, strings.HasSuffix(created.FilePath, Extension))
	assert.True(t, e.exists(created.FilePath))
}

func TestService_CreateRejectsFiles(t *testing.T) {
	e := newServiceEnv(t, 8192)
	ctx := context.Background()

	_, _, err := e.svc.Create(ctx, "Contrato", "", Upload{Filename: "contrato.pdf", Body: contrato(t).Body})
	assert.ErrorIs(t, err, ErrInvalidFile)

	_, _, err = e.svc.Create(ctx, "Contrato", "", Upload{Filename: "contrato.docx", Body: []byte("texto")})
	assert.ErrorIs(t, err, ErrInvalidFile)

	_, _, err = e.svc.Create(ctx, "Contrato", "", Upload{Filename: "contrato.DOCX"})
	assert.ErrorIs(t, err, ErrInvalidFile)

	_, _, err = e.svc.Create(ctx, "Contrato", "", Upload{Filename: "a.docx", Body: []byte(strings.Repeat("x", 16384))})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, _, err = e.svc.Create(ctx, " ", "", contrato(t))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = e.svc.Create(ctx, "Procuração", "", Upload{Filename: "p.docx", Body: docxtest.Build(t, docxtest.Paragraph("{% if x %}"))})
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestService_UpdateReplacesFile(t *testing.T) {
	e := newServiceEnv(t, 0)
	ctx := context.Background()

	created, _, err := e.svc.Create(ctx, "Contrato", "", contrato(t))
	require.NoError(t, err)

	title := "Contrato de honorários"
	updated, tags, err := e.svc.Update(ctx, created.UUID, Patch{
		Title: &title,
		File:  &Upload{Filename: "novo.docx", Body: docxtest.Build(t, docxtest.Paragraph("{{cpf_cnpj}}"))},
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, []string{"cpf_cnpj"}, tags)
	assert.NotEqual(t, created.FilePath, updated.FilePath)
	assert.False(t, e.exists(created.FilePath))
	assert.True(t, e.exists(updated.FilePath))

	_, _, err = e.svc.Update(ctx, created.UUID, Patch{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, _, err = e.svc.Update(ctx, uuid.New(), Patch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteRemovesFile(t *testing.T) {
	e := newServiceEnv(t, 0)
	ctx := context.Background()

	created, _, err := e.svc.Create(ctx, "Contrato", "", contrato(t))
	require.NoError(t, err)

	_, body, err := e.svc.Download(ctx, created.UUID)
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	require.NoError(t, e.svc.Delete(ctx, created.UUID))
	assert.False(t, e.exists(created.FilePath))

	_, err = e.svc.Read(ctx, created.UUID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, e.svc.Delete(ctx, created.UUID), ErrNotFound)
}

func TestService_DownloadMissingFile(t *testing.T) {
	e := newServiceEnv(t, 0)
	ctx := context.Background()

	created, _, err := e.svc.Create(ctx, "Contrato", "", contrato(t))
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(e.root, filepath.FromSlash(created.FilePath))))

	_, _, err = e.svc.Download(ctx, created.UUID)
	assert.ErrorIs(t, err, ErrFileUnavailable)
}
