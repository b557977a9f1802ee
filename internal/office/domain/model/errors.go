package model

import "errors"

// ErrNotFound é a raiz dos erros "não encontrado" dos domínios do escritório.
var ErrNotFound = errors.New("not found")
