package doctemplate

import (
	"errors"
	"fmt"

	"sistema-advocacia/internal/office/domain/model"
)

var (
	ErrNotFound        = fmt.Errorf("template %w", model.ErrNotFound)
	ErrInvalidInput    = errors.New("invalid input data")
	ErrInvalidFile     = errors.New("file must be a valid .docx template")
	ErrFileTooLarge    = errors.New("file too large")
	ErrFileUnavailable = errors.New("template file unavailable")
	ErrNothingToUpdate = errors.New("no field to update")
)
