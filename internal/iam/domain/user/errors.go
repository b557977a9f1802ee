package user

import "errors"

var (
	ErrEmailDuplicated    = errors.New("email already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input data")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNothingToUpdate    = errors.New("no field to update")
	ErrLastAdmin          = errors.New("cannot remove the last admin")
)
