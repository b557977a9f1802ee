package auth

import (
	"errors"
	"sync"

	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/pkg/mailer"

	"gorm.io/gorm"
)

var (
	controllerInstance Controller
	serviceInstance    Service
	repositoryInstance Repository
	once               sync.Once
	initErr            error
	ErrNotInitialized  = errors.New("auth controller not initialized")
)

type UseAuth struct {
	Repository Repository
	Service    Service
	Controller Controller
}

// New monta repository, service e controller. mail pode ser nil (OTP indisponível).
func New(db *gorm.DB, users user.Service, tokens TokenIssuer, mail mailer.Service, mw middleware.Middleware) (Controller, error) {
	once.Do(func() {
		switch {
		case db == nil:
			initErr = errors.New("database connection cannot be nil")
			return
		case users == nil:
			initErr = errors.New("user service cannot be nil")
			return
		case tokens == nil:
			initErr = errors.New("token issuer cannot be nil")
			return
		case mw == nil:
			initErr = errors.New("middleware cannot be nil")
			return
		}

		repositoryInstance = NewRepository(db)
		serviceInstance = NewService(repositoryInstance, users, tokens, mail)
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

func MustUse() *UseAuth {
	if controllerInstance == nil || serviceInstance == nil || repositoryInstance == nil {
		panic(ErrNotInitialized)
	}
	return &UseAuth{
		Repository: repositoryInstance,
		Service:    serviceInstance,
		Controller: controllerInstance,
	}
}
