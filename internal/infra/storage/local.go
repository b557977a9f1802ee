package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore grava os arquivos em disco, abaixo de Root.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("storage: diretório raiz não informado")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: diretório raiz inválido: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: falha ao criar diretório raiz: %w", err)
	}
	return &LocalStore{Root: abs}, nil
}

func (s *LocalStore) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(input.Body) == 0 {
		return nil, ErrEmptyBody
	}
	full, err := s.resolve(input.Key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("storage: falha ao criar diretório: %w", err)
	}

	// grava em arquivo temporário e renomeia, para não deixar arquivo pela metade
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("storage: falha ao criar arquivo: %w", err)
	}
	if _, err := tmp.Write(input.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("storage: falha ao gravar arquivo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("storage: falha ao gravar arquivo: %w", err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("storage: falha ao mover arquivo: %w", err)
	}

	return &UploadResult{Key: cleanKey(input.Key), Size: int64(len(input.Body))}, nil
}

func (s *LocalStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("storage: falha ao ler %s: %w", key, err)
	}
	return data, nil
}

// Remove não falha quando o arquivo já não existe.
func (s *LocalStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: falha ao remover %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) resolve(key string) (string, error) {
	clean := cleanKey(key)
	if clean == "" || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.Root, filepath.FromSlash(clean)), nil
}

func cleanKey(key string) string {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	if key == "" {
		return ""
	}
	return path.Clean(key)
}
