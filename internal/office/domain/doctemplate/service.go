package doctemplate

import (
	"context"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"

	"sistema-advocacia/internal/infra/storage"
	"sistema-advocacia/internal/office/docgen"
)

type Service interface {
	Create(ctx context.Context, title, description string, file Upload) (DocumentTemplate, []string, error)
	Read(ctx context.Context, id uuid.UUID) (DocumentTemplate, error)
	List(ctx context.Context, page, size int) ([]DocumentTemplate, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch Patch) (DocumentTemplate, []string, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Download(ctx context.Context, id uuid.UUID) (DocumentTemplate, []byte, error)
}

type serviceImpl struct {
	Repository Repository
	store      storage.Store
	maxBytes   int64
	policy     *bluemonday.Policy
}

func NewService(repository Repository, store storage.Store, maxBytes int64) Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &serviceImpl{
		Repository: repository,
		store:      store,
		maxBytes:   maxBytes,
		policy:     bluemonday.StrictPolicy(),
	}
}

// sanitize remove qualquer HTML e devolve texto puro; o escape fica a cargo de quem exibe.
func (s *serviceImpl) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || len([]rune(title)) > maxTitleLength {
		return "", ErrInvalidInput
	}
	return title, nil
}

// checkFile valida extensão, tamanho e conteúdo e devolve as tags encontradas.
func (s *serviceImpl) checkFile(file Upload) ([]string, error) {
	if !strings.EqualFold(filepath.Ext(file.Filename), Extension) {
		return nil, ErrInvalidFile
	}
	if len(file.Body) == 0 {
		return nil, ErrInvalidFile
	}
	if int64(len(file.Body)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	tags, err := docgen.Inspect(file.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return tags, nil
}

func (s *serviceImpl) upload(ctx context.Context, body []byte) (string, error) {
	key := KeyPrefix + uuid.NewString() + Extension
	if _, err := s.store.Upload(ctx, storage.UploadInput{
		Key:         key,
		Body:        body,
		ContentType: docgen.ContentType,
	}); err != nil {
		return "", fmt.Errorf("falha ao salvar arquivo do modelo: %w", err)
	}
	return key, nil
}

func (s *serviceImpl) removeFile(ctx context.Context, key string) {
	if err := s.store.Remove(ctx, key); err != nil {
		log.Warn().Err(err).Str("component", "template").Str("key", key).Msg("falha ao remover arquivo do modelo")
	}
}

func (s *serviceImpl) Create(ctx context.Context, title, description string, file Upload) (DocumentTemplate, []string, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return DocumentTemplate{}, nil, err
	}
	tags, err := s.checkFile(file)
	if err != nil {
		return DocumentTemplate{}, nil, err
	}

	key, err := s.upload(ctx, file.Body)
	if err != nil {
		return DocumentTemplate{}, nil, err
	}

	now := time.Now().UTC()
	created, err := s.Repository.Create(ctx, DocumentTemplate{
		Title:       title,
		Description: s.sanitize(description),
		FilePath:    key,
		CreateAt:    now,
		UpdateAt:    now,
	})
	if err != nil {
		s.removeFile(ctx, key)
		return DocumentTemplate{}, nil, err
	}
	return created, tags, nil
}

func (s *serviceImpl) Read(ctx context.Context, id uuid.UUID) (DocumentTemplate, error) {
	return s.Repository.Read(ctx, DocumentTemplate{UUID: id})
}

func (s *serviceImpl) List(ctx context.Context, page, size int) ([]DocumentTemplate, int64, error) {
	return s.Repository.List(ctx, page, size)
}

// Update troca o arquivo (se enviado) antes de gravar; o arquivo antigo só sai depois do commit.
func (s *serviceImpl) Update(ctx context.Context, id uuid.UUID, patch Patch) (DocumentTemplate, []string, error) {
	current, err := s.Repository.Read(ctx, DocumentTemplate{UUID: id})
	if err != nil {
		return DocumentTemplate{}, nil, err
	}

	fields := make(map[string]interface{})
	if patch.Title != nil {
		title, err := normalizeTitle(*patch.Title)
		if err != nil {
			return DocumentTemplate{}, nil, err
		}
		fields["title"] = title
	}
	if patch.Description != nil {
		fields["description"] = s.sanitize(*patch.Description)
	}

	var (
		tags   []string
		newKey string
	)
	if patch.File != nil {
		tags, err = s.checkFile(*patch.File)
		if err != nil {
			return DocumentTemplate{}, nil, err
		}
		newKey, err = s.upload(ctx, patch.File.Body)
		if err != nil {
			return DocumentTemplate{}, nil, err
		}
		fields["file_path"] = newKey
	}
	if len(fields) == 0 {
		return DocumentTemplate{}, nil, ErrNothingToUpdate
	}
	fields["update_at"] = time.Now().UTC()

	updated, err := s.Repository.Update(ctx, id, fields)
	if err != nil {
		if newKey != "" {
			s.removeFile(ctx, newKey)
		}
		return DocumentTemplate{}, nil, err
	}
	if newKey != "" {
		s.removeFile(ctx, current.FilePath)
	}
	return updated, tags, nil
}

// Delete remove o registro e depois o arquivo. Documentos já gerados ficam sem modelo.
func (s *serviceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.Repository.Read(ctx, DocumentTemplate{UUID: id})
	if err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFile(ctx, current.FilePath)
	return nil
}

func (s *serviceImpl) Download(ctx context.Context, id uuid.UUID) (DocumentTemplate, []byte, error) {
	tpl, err := s.Repository.Read(ctx, DocumentTemplate{UUID: id})
	if err != nil {
		return DocumentTemplate{}, nil, err
	}
	body, err := s.store.Read(ctx, tpl.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return DocumentTemplate{}, nil, fmt.Errorf("%w: %v", ErrFileUnavailable, err)
		}
		return DocumentTemplate{}, nil, err
	}
	return tpl, body, nil
}
