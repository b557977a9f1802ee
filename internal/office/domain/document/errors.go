package document

import "sistema-advocacia/internal/office/docgen"

var (
	ErrNotFound            = docgen.ErrNotFound
	ErrTemplateUnavailable = docgen.ErrTemplateUnavailable
	ErrRenderFailure       = docgen.ErrRenderFailure
)
