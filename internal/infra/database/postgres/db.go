package postgres

import (
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Modos SSL aceitos pelo PostgreSQL
const (
	SSLDisable    = "disable"
	SSLRequire    = "require"
	SSLVerifyFull = "verify-full"
	SSLVerifyCA   = "verify-ca"
)

var (
	db   *gorm.DB
	once sync.Once
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxOpen  int
	MaxIdle  int
	Debug    bool
}

// ConfigFromViper lê databases.postgres.*
func ConfigFromViper() Config {
	return Config{
		Host:     viper.GetString("databases.postgres.host"),
		Port:     viper.GetString("databases.postgres.port"),
		User:     viper.GetString("databases.postgres.user"),
		Password: viper.GetString("databases.postgres.pwd"),
		Name:     viper.GetString("databases.postgres.db_name"),
		SSLMode:  viper.GetString("databases.postgres.ssl_mode"),
		MaxOpen:  viper.GetInt("databases.postgres.max_open_conns"),
		MaxIdle:  viper.GetInt("databases.postgres.max_idle_conns"),
		Debug:    viper.GetString("app.env") == "dev" && viper.GetString("log.level") == "debug",
	}
}

// Open abre a conexão GORM. Erros de unicidade/FK são traduzidos para gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func Open(cfg Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	conn, err := gorm.Open(gormPostgres.Open(BuildDSN(cfg)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão GORM: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter *sql.DB do GORM: %w", err)
	}
	if cfg.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	}
	if cfg.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("erro ao testar conexão com o banco de dados: %w", err)
	}
	return conn, nil
}

// InitPostgres inicializa a conexão uma única vez; falha encerra o processo.
func InitPostgres() *gorm.DB {
	once.Do(func() {
		var err error
		db, err = Open(ConfigFromViper())
		if err != nil {
			log.Fatal().Err(err).Str("component", "database").Msg("falha ao conectar no PostgreSQL")
		}
		log.Info().Str("component", "database").Msg("conexão GORM com PostgreSQL estabelecida")
	})

	return db
}

// GetDB retorna a instância atual da conexão GORM.
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatal().Str("component", "database").Msg("a conexão GORM não foi inicializada. Chame InitPostgres() primeiro.")
	}
	return db
}

// Close encerra a conexão e permite nova inicialização.
func Close() {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Str("component", "database").Msg("erro ao obter *sql.DB para fechamento")
	} else if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Str("component", "database").Msg("erro ao fechar conexão com banco")
	}

	db = nil
	once = sync.Once{}
}

// BuildDSN monta a string de conexão. Nome vazio vira "appdb" e modo SSL inválido vira "disable".
func BuildDSN(cfg Config) string {
	name := cfg.Name
	if name == "" {
		name = "appdb"
	}
	ssl := cfg.SSLMode
	if !isValidSSLMode(ssl) {
		log.Warn().Str("component", "database").Str("ssl_mode", ssl).Msg("modo SSL inválido, usando disable")
		ssl = SSLDisable
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, name, ssl,
	)
}

func isValidSSLMode(mode string) bool {
	switch mode {
	case SSLDisable, SSLRequire, SSLVerifyFull, SSLVerifyCA:
		return true
	default:
		return false
	}
}
