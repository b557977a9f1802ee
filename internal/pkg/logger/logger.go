// Package logger configura o zerolog global do processo.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env   string // dev | prod
	Level string
}

// Setup troca o logger global: console legível em dev, JSON em prod.
func Setup(cfg Config) zerolog.Logger {
	return SetupWriter(cfg, os.Stdout)
}

func SetupWriter(cfg Config, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	w := out
	if cfg.Env != "prod" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return log.Logger
}

// ParseLevel aceita os nomes do zerolog; vazio ou inválido vira info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Component devolve um logger filho com o campo "component".
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
