package admin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// ExpectedTables são as tabelas criadas pelas migrations de seed.
var ExpectedTables = []string{
	"access_log",
	"audit_log",
	"cliente",
	"documento",
	"modelo_documento",
	"users",
	"users_acess_tokens",
}

type Status struct {
	Tables    []string
	Missing   []string
	CheckedAt time.Time
}

// Healthy indica que todas as tabelas esperadas existem.
func (s Status) Healthy() bool {
	return len(s.Missing) == 0
}

func Check(db *gorm.DB) (Status, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Status{}, fmt.Errorf("falha ao obter conexão subjacente: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return Status{}, fmt.Errorf("banco de dados indisponível: %w", err)
	}

	var tables []string
	err = db.Raw(`
SELECT tablename
FROM pg_catalog.pg_tables
WHERE schemaname = current_schema()
ORDER BY tablename;
        `).Scan(&tables).Error
	if err != nil {
		return Status{}, fmt.Errorf("falha ao listar tabelas: %w", err)
	}

	return Status{
		Tables:    tables,
		Missing:   missingTables(tables),
		CheckedAt: time.Now(),
	}, nil
}

func missingTables(found []string) []string {
	present := make(map[string]bool, len(found))
	for _, t := range found {
		present[t] = true
	}
	var missing []string
	for _, t := range ExpectedTables {
		if !present[t] {
			missing = append(missing, t)
		}
	}
	return missing
}

func DeleteAll(db *gorm.DB) error {
	var tables []string
	if err := db.Raw(`
SELECT tablename
FROM pg_catalog.pg_tables
WHERE schemaname = current_schema();
        `).Scan(&tables).Error; err != nil {
		return fmt.Errorf("falha ao buscar tabelas para exclusão: %w", err)
	}

	for _, table := range tables {
		query := fmt.Sprintf("DROP TABLE IF EXISTS \"%s\" CASCADE", table)
		if err := db.Exec(query).Error; err != nil {
			return fmt.Errorf("falha ao remover tabela %s: %w", table, err)
		}
		log.Warn().Str("component", "database").Str("table", table).Msg("tabela removida")
	}

	if err := db.Exec("DROP TYPE IF EXISTS user_role CASCADE").Error; err != nil {
		return fmt.Errorf("falha ao remover tipo user_role: %w", err)
	}
	return nil
}

type BackupOptions struct {
	Destination string
}

func Backup(ctx context.Context, opts BackupOptions) error {
	if opts.Destination == "" {
		return errors.New("destino do backup não informado (use --local=<caminho>)")
	}

	info := connectionInfoFromConfig()
	if info.Database == "" {
		return errors.New("nome do banco de dados não configurado")
	}

	destination := normalizeDestination(opts.Destination)
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório do backup: %w", err)
	}

	cmd := exec.CommandContext(ctx, "pg_dump", dumpArgs(info, destination)...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("PGPASSWORD=%s", info.Password))

	if output, err := cmd.CombinedOutput(); err != nil {
		if len(output) > 0 {
			return fmt.Errorf("pg_dump falhou: %w - %s", err, strings.TrimSpace(string(output)))
		}
		return fmt.Errorf("pg_dump falhou: %w", err)
	}

	log.Info().Str("component", "database").Str("destination", destination).Msg("backup concluído")
	return nil
}

type connectionInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

func connectionInfoFromConfig() connectionInfo {
	return connectionInfo{
		Host:     viper.GetString("databases.postgres.host"),
		Port:     viper.GetString("databases.postgres.port"),
		User:     viper.GetString("databases.postgres.user"),
		Password: viper.GetString("databases.postgres.pwd"),
		Database: viper.GetString("databases.postgres.db_name"),
	}
}

func dumpArgs(info connectionInfo, destination string) []string {
	return []string{
		"-h", info.Host,
		"-p", info.Port,
		"-U", info.User,
		"-d", info.Database,
		"-F", detectFormat(destination),
		"-f", destination,
	}
}

func normalizeDestination(path string) string {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		cwd, err := os.Getwd()
		if err == nil {
			return filepath.Join(cwd, clean)
		}
	}
	return clean
}

// detectFormat: .sql texto puro, .tar tar, demais formato custom do pg_dump.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sql":
		return "p"
	case ".tar":
		return "t"
	default:
		return "c"
	}
}
