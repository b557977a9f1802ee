package rest_err

// Causes aponta o campo do corpo da requisição que invalidou a operação.
type Causes struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewCause(field, message string) Causes {
	return Causes{Field: field, Message: message}
}

// SingleCause é o atalho para erros de validação com um único campo.
func SingleCause(field, message string) []Causes {
	return []Causes{NewCause(field, message)}
}
