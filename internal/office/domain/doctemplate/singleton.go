package doctemplate

import (
	"errors"
	"sync"

	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/infra/storage"

	"gorm.io/gorm"
)

var (
	controllerInstance Controller
	serviceInstance    Service
	repositoryInstance Repository
	once               sync.Once
	initErr            error
	ErrNotInitialized  = errors.New("template controller not initialized")
)

type UseTemplate struct {
	Repository Repository
	Service    Service
	Controller Controller
}

// Config do domínio de modelos. MaxUploadBytes <= 0 usa DefaultMaxUploadBytes.
type Config struct {
	MaxUploadBytes int64
}

func New(db *gorm.DB, mw middleware.Middleware, store storage.Store, cfg Config) (Controller, error) {
	once.Do(func() {
		if db == nil {
			initErr = errors.New("database connection cannot be nil")
			return
		}
		if mw == nil {
			initErr = errors.New("middleware cannot be nil")
			return
		}
		if store == nil {
			initErr = errors.New("file store cannot be nil")
			return
		}

		repositoryInstance = NewRepository(db)
		serviceInstance = NewService(repositoryInstance, store, cfg.MaxUploadBytes)
		controllerInstance = NewController(serviceInstance, mw, cfg.MaxUploadBytes)
	})

	return controllerInstance, initErr
}

func Use() (Controller, error) {
	if controllerInstance == nil {
		return nil, ErrNotInitialized
	}
	return controllerInstance, nil
}

func MustUse() *UseTemplate {
	if controllerInstance == nil || serviceInstance == nil || repositoryInstance == nil {
		panic(ErrNotInitialized)
	}
	return &UseTemplate{
		Repository: repositoryInstance,
		Service:    serviceInstance,
		Controller: controllerInstance,
	}
}
