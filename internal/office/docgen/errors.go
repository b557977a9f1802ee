package docgen

import (
	"errors"

	"sistema-advocacia/internal/office/domain/model"
)

var (
	ErrNotFound            = model.ErrNotFound
	ErrTemplateUnavailable = errors.New("template file unavailable")
	ErrRenderFailure       = errors.New("template could not be rendered")
)
