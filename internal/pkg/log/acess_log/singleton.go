package acess_log

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	instance *Service
	once     sync.Once
	initErr  error
	pending  sync.WaitGroup

	ErrLogNotInitialized = errors.New("access logger not initialized")
)

// Config usada somente no New()
type Config struct {
	LogEnabled bool
	Enabled    bool
}

// New inicializa apenas 1x (se Enabled=true)
func New(db *gorm.DB, cfg Config) (*Service, error) {
	once.Do(func() {
		if !cfg.LogEnabled {
			initErr = errors.New("logger disabled in config")
			return
		}
		if !cfg.Enabled {
			initErr = errors.New("access logger disabled in config")
			return
		}
		if db == nil {
			initErr = errors.New("database required for access log")
			return
		}

		instance = NewService(NewRepository(db))
	})

	return instance, initErr
}

// MustUse simplesmente retorna a instância (pode ser nil)
func MustUse() *Service {
	return instance
}

func logAsync(ctx context.Context, entry AccessLog) {
	svc := instance
	if svc == nil {
		return
	}

	ctxDetached := context.WithoutCancel(ctx)
	pending.Add(1)
	go func() {
		defer pending.Done()
		if err := svc.Log(ctxDetached, entry); err != nil {
			log.Error().Err(err).Str("component", "access").Str("path", entry.Path).Msg("falha ao gravar log de acesso")
		}
	}()
}

// Wait bloqueia até as gravações pendentes terminarem.
func Wait() {
	pending.Wait()
}
