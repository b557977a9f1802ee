package client

import (
	"errors"
	"fmt"

	"sistema-advocacia/internal/office/domain/model"
)

var (
	ErrNotFound             = fmt.Errorf("client %w", model.ErrNotFound)
	ErrTaxIDDuplicated      = errors.New("tax id already registered")
	ErrInvalidInput         = errors.New("invalid input data")
	ErrInvalidSex           = errors.New("invalid sex")
	ErrInvalidMaritalStatus = errors.New("invalid marital status")
	ErrInvalidBirthDate     = errors.New("invalid birth date")
	ErrNothingToUpdate      = errors.New("no field to update")
)
