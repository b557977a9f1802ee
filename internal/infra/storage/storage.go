package storage

import (
	"context"
	"errors"
)

var (
	ErrInvalidKey = errors.New("storage: chave inválida")
	ErrNotFound   = errors.New("storage: arquivo não encontrado")
	ErrEmptyBody  = errors.New("storage: corpo vazio")
)

// UploadInput representa uma operação de upload simples.
type UploadInput struct {
	Key         string
	Body        []byte
	ContentType string
}

// UploadResult descreve o artefato persistido.
type UploadResult struct {
	Key  string
	Size int64
}

// Store guarda e recupera os arquivos de modelos.
type Store interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}
