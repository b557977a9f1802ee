// Package docgen gera documentos Word a partir dos modelos cadastrados e dos dados do cliente.
package docgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sistema-advocacia/internal/office/domain/model"
)

type ClientReader interface {
	Read(ctx context.Context, m model.Client) (model.Client, error)
}

type TemplateReader interface {
	Read(ctx context.Context, m model.DocumentTemplate) (model.DocumentTemplate, error)
}

type HistoryWriter interface {
	Create(ctx context.Context, m model.GeneratedDocument) (model.GeneratedDocument, error)
}

type FileReader interface {
	Read(ctx context.Context, key string) ([]byte, error)
}

// Generator coordena leitura do modelo, preenchimento e registro no histórico.
// Não guarda estado entre chamadas.
type Generator struct {
	clients   ClientReader
	templates TemplateReader
	history   HistoryWriter
	files     FileReader
	lang      string
}

func NewGenerator(clients ClientReader, templates TemplateReader, history HistoryWriter, files FileReader, lang string) *Generator {
	return &Generator{
		clients:   clients,
		templates: templates,
		history:   history,
		files:     files,
		lang:      lang,
	}
}

// Generate devolve o nome do arquivo e o .docx preenchido. O histórico só é gravado
// depois que a renderização termina sem erro.
func (g *Generator) Generate(ctx context.Context, clientID, templateID, actorID uuid.UUID) (string, *bytes.Buffer, error) {
	if clientID == uuid.Nil || templateID == uuid.Nil {
		return "", nil, ErrNotFound
	}

	client, err := g.clients.Read(ctx, model.Client{UUID: clientID})
	if err != nil {
		return "", nil, lookupError("client", err)
	}
	tpl, err := g.templates.Read(ctx, model.DocumentTemplate{UUID: templateID})
	if err != nil {
		return "", nil, lookupError("template", err)
	}

	raw, err := g.files.Read(ctx, tpl.FilePath)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}

	buf, err := Render(raw, BuildContext(client, g.lang).Tags())
	if err != nil {
		return "", nil, err
	}

	filename := Filename(client, tpl)
	_, err = g.history.Create(ctx, model.GeneratedDocument{
		ClientUUID:   client.UUID,
		TemplateUUID: &tpl.UUID,
		Kind:         tpl.Title,
		OutputFile:   filename,
		CreatedBy:    actorID,
	})
	if err != nil {
		return "", nil, fmt.Errorf("falha ao registrar documento gerado: %w", err)
	}

	log.Info().
		Str("component", "docgen").
		Str("client", client.UUID.String()).
		Str("template", tpl.UUID.String()).
		Str("actor", actorID.String()).
		Int("bytes", buf.Len()).
		Msg("documento gerado")

	return filename, buf, nil
}

// Filename segue o padrão "<nome do cliente>_<título do modelo>.docx".
func Filename(client model.Client, tpl model.DocumentTemplate) string {
	return fmt.Sprintf("%s_%s.docx", client.FullName, tpl.Title)
}

func lookupError(what string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("falha ao buscar %s: %w", what, err)
}
