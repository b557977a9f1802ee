package migrations

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	SeedCategory   = "seed"
	UpdateCategory = "update"

	timestampLayout = "20060102150405"
)

var (
	//go:embed sql/seed/*.sql sql/update/*.sql
	embeddedMigrations embed.FS
)

type migrationFile struct {
	Name      string
	Content   string
	Category  string
	Timestamp time.Time
}

type Manager struct {
	db   *gorm.DB
	fsys fs.FS
}

// NewManager usa os arquivos .sql embutidos no binário.
func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db, fsys: embeddedMigrations}
}

// NewManagerFS permite apontar para outro conjunto de arquivos (testes).
func NewManagerFS(db *gorm.DB, fsys fs.FS) *Manager {
	return &Manager{db: db, fsys: fsys}
}

// ApplySeed cria o esquema inicial. Retorna os nomes aplicados nesta execução.
func (m *Manager) ApplySeed() ([]string, error) {
	return m.applyCategory(SeedCategory)
}

func (m *Manager) ApplyUpdate() ([]string, error) {
	return m.applyCategory(UpdateCategory)
}

func (m *Manager) applyCategory(category string) ([]string, error) {
	files, err := loadFiles(m.fsys, category)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	var applied []string
	err = m.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSchemaMigrationsTable(tx); err != nil {
			return err
		}

		done, err := fetchApplied(tx, category)
		if err != nil {
			return err
		}

		for _, file := range files {
			if done[file.Name] {
				continue
			}

			if err := executeMigration(tx, file); err != nil {
				return err
			}
			log.Info().Str("component", "migrations").Str("category", category).Str("file", file.Name).Msg("migration aplicada")
			applied = append(applied, file.Name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

func loadFiles(fsys fs.FS, category string) ([]migrationFile, error) {
	var dir string
	switch category {
	case SeedCategory:
		dir = "sql/seed"
	case UpdateCategory:
		dir = "sql/update"
	default:
		return nil, fmt.Errorf("categoria de migration desconhecida: %s", category)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao ler diretório de migrations %s: %w", dir, err)
	}

	files := make([]migrationFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		name := entry.Name()

		ts, err := parseTimestamp(name)
		if err != nil {
			return nil, err
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("falha ao ler migration %s: %w", name, err)
		}

		files = append(files, migrationFile{
			Name:      name,
			Content:   string(content),
			Category:  category,
			Timestamp: ts,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Timestamp.Equal(files[j].Timestamp) {
			return files[i].Name < files[j].Name
		}
		return files[i].Timestamp.Before(files[j].Timestamp)
	})

	return files, nil
}

func parseTimestamp(name string) (time.Time, error) {
	base := path.Base(name)
	ts, _, ok := strings.Cut(base, "_")
	if !ok {
		return time.Time{}, fmt.Errorf("migration %s não segue o padrão 'YYYYMMDDHHMMSS_nome.sql'", name)
	}
	if len(ts) != len(timestampLayout) {
		return time.Time{}, fmt.Errorf("migration %s não contém carimbo de data e hora válido", name)
	}

	parsed, err := time.Parse(timestampLayout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("falha ao interpretar data da migration %s: %w", name, err)
	}
	return parsed, nil
}

func ensureSchemaMigrationsTable(tx *gorm.DB) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    category VARCHAR(50) NOT NULL,
    applied_at TIMESTAMP WITHOUT TIME ZONE NOT NULL DEFAULT NOW(),
    UNIQUE (name, category)
);`
	return tx.Exec(createTable).Error
}

func fetchApplied(tx *gorm.DB, category string) (map[string]bool, error) {
	var names []string
	if err := tx.Raw(
		"SELECT name FROM schema_migrations WHERE category = ?",
		category,
	).Scan(&names).Error; err != nil {
		return nil, fmt.Errorf("falha ao consultar migrations aplicadas (%s): %w", category, err)
	}

	applied := make(map[string]bool, len(names))
	for _, name := range names {
		applied[name] = true
	}
	return applied, nil
}

func executeMigration(tx *gorm.DB, file migrationFile) error {
	if err := tx.Exec(file.Content).Error; err != nil {
		return fmt.Errorf("falha ao aplicar migration %s: %w", file.Name, err)
	}

	if err := tx.Exec(
		"INSERT INTO schema_migrations (name, category) VALUES (?, ?)",
		file.Name,
		file.Category,
	).Error; err != nil {
		return fmt.Errorf("falha ao registrar migration %s: %w", file.Name, err)
	}

	return nil
}
