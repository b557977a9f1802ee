package document

import (
	"errors"
	"sync"

	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/infra/storage"
	"sistema-advocacia/internal/office/docgen"
	"sistema-advocacia/internal/office/domain/client"
	"sistema-advocacia/internal/office/domain/doctemplate"

	"gorm.io/gorm"
)

var (
	controllerInstance Controller
	serviceInstance    Service
	repositoryInstance Repository
	once               sync.Once
	initErr            error
	ErrNotInitialized  = errors.New("document controller not initialized")
)

type UseDocument struct {
	Repository Repository
	Service    Service
	Controller Controller
}

// New monta o gerador com os repositórios de cliente e modelo e o storage dos arquivos.
// lang define o idioma dos rótulos (ex.: estado civil).
func New(db *gorm.DB, mw middleware.Middleware, store storage.Store, lang string) (Controller, error) {
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

		clients := client.NewRepository(db)
		repositoryInstance = NewRepository(db)
		generator := docgen.NewGenerator(clients, doctemplate.NewRepository(db), repositoryInstance, store, lang)
		serviceInstance = NewService(repositoryInstance, generator, clients)
		controllerInstance = NewController(serviceInstance, mw)
	})

	return controllerInstance, initErr
}

func Use() (Controller, error) {
	if controllerInstance == nil {
		return nil, ErrNotInitialized
	}
	return controllerInstance, nil
}

func MustUse() *UseDocument {
	if controllerInstance == nil || serviceInstance == nil || repositoryInstance == nil {
		panic(ErrNotInitialized)
	}
	return &UseDocument{
		Repository: repositoryInstance,
		Service:    serviceInstance,
		Controller: controllerInstance,
	}
}
