package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"sistema-advocacia/cmd/bootstrap"
	"sistema-advocacia/internal/office/docgen"
	"sistema-advocacia/internal/office/domain/doctemplate"
)

// manifest lista os modelos a importar. Caminhos relativos partem da pasta do manifesto.
//
//	templates:
//	  - title: Procuração
//	    description: Procuração ad judicia
//	    file: modelos/procuracao.docx
type manifest struct {
	Templates []manifestEntry `yaml:"templates"`
}

type manifestEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	File        string `yaml:"file"`
}

func parseManifest(data []byte) (manifest, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return manifest{}, fmt.Errorf("manifesto inválido: %w", err)
	}
	if len(m.Templates) == 0 {
		return manifest{}, errors.New("manifesto sem modelos")
	}
	for i, entry := range m.Templates {
		if strings.TrimSpace(entry.Title) == "" || strings.TrimSpace(entry.File) == "" {
			return manifest{}, fmt.Errorf("modelo %d: title e file são obrigatórios", i+1)
		}
	}
	return m, nil
}

func loadManifest(path string) (manifest, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifest{}, "", err
	}
	m, err := parseManifest(data)
	if err != nil {
		return manifest{}, "", err
	}
	return m, filepath.Dir(path), nil
}

func resolveFile(baseDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(baseDir, file)
}

// creator é o subconjunto do serviço de modelos usado na importação.
type creator interface {
	Create(ctx context.Context, title, description string, file doctemplate.Upload) (doctemplate.DocumentTemplate, []string, error)
}

// runImport cadastra cada entrada; falhas não interrompem as demais.
func runImport(ctx context.Context, svc creator, m manifest, baseDir string) (int, error) {
	var errs []error
	imported := 0

	for _, entry := range m.Templates {
		path := resolveFile(baseDir, entry.File)
		body, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Title, err))
			continue
		}

		tpl, tags, err := svc.Create(ctx, entry.Title, entry.Description, doctemplate.Upload{
			Filename: filepath.Base(path),
			Body:     body,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Title, err))
			continue
		}

		ev := log.Info()
		// tags desconhecidas saem em branco no documento gerado
		if unknown := docgen.UnknownTags(tags); len(unknown) > 0 {
			ev = log.Warn().Strs("unknown_tags", unknown)
		}
		ev.Str("uuid", tpl.UUID.String()).Str("title", tpl.Title).Msg("Modelo importado.")
		imported++
	}

	return imported, errors.Join(errs...)
}

func importTemplates(ctx context.Context, db *gorm.DB, path string) error {
	m, baseDir, err := loadManifest(path)
	if err != nil {
		return err
	}

	store, err := bootstrap.Storage()
	if err != nil {
		return err
	}
	svc, err := bootstrap.InitTemplates(db, store)
	if err != nil {
		return err
	}

	imported, err := runImport(ctx, svc, m, baseDir)
	log.Info().Int("imported", imported).Int("total", len(m.Templates)).Msg("Importação de modelos concluída.")
	return err
}
