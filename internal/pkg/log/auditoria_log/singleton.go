package auditoria_log

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

	ErrLogNotInitialized = errors.New("audit logger not initialized")
)

// Config usada somente no New()
type Config struct {
	LogEnabled bool
	Enabled    bool
}

// New inicializa apenas 1x. Com o log desligado a auditoria vira no-op.
func New(db *gorm.DB, cfg Config) (*Service, error) {
	once.Do(func() {
		if !cfg.LogEnabled {
			initErr = errors.New("logger disabled in config")
			return
		}
		if !cfg.Enabled {
			initErr = errors.New("audit logger disabled in config")
			return
		}
		if db == nil {
			initErr = errors.New("database required for audit log")
			return
		}

		instance = NewService(NewRepository(db))
	})

	return instance, initErr
}

// MustUse retorna a instância (pode ser nil)
func MustUse() *Service {
	return instance
}

// LogAsync registra auditoria em goroutine destacada do request.
func LogAsync(ctx context.Context, entry AuditLog) {
	svc := instance
	if svc == nil {
		return
	}

	ctxDetached := context.WithoutCancel(ctx)
	pending.Add(1)
	go func() {
		defer pending.Done()
		if err := svc.Log(ctxDetached, entry); err != nil {
			log.Error().Err(err).
				Str("component", "audit").
				Str("domain", entry.Domain).
				Str("action", entry.Action).
				Msg("falha ao gravar auditoria")
		}
	}()
}

// Wait bloqueia até as gravações pendentes terminarem (usado no shutdown).
func Wait() {
	pending.Wait()
}
