package user

import (
	"errors"
	"sync"

	"sistema-advocacia/internal/iam/middleware"

	"gorm.io/gorm"
)

var (
	controllerInstance Controller
	serviceInstance    Service
	repositoryInstance Repository
	once               sync.Once
	initErr            error
	ErrNotInitialized  = errors.New("user controller not initialized")
)

type UseUser struct {
	Repository Repository
	Service    Service
	Controller Controller
}

func New(db *gorm.DB, mw middleware.Middleware) (Controller, error) {
	once.Do(func() {
		if db == nil {
			initErr = errors.New("database connection cannot be nil")
			return
		}
		if mw == nil {
			initErr = errors.New("middleware cannot be nil")
			return
		}

		repositoryInstance = NewRepository(db)
		serviceInstance = NewService(repositoryInstance)
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

func MustUse() *UseUser {
	if controllerInstance == nil || serviceInstance == nil || repositoryInstance == nil {
		panic(ErrNotInitialized)
	}
	return &UseUser{
		Repository: repositoryInstance,
		Service:    serviceInstance,
		Controller: controllerInstance,
	}
}
