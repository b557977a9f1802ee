package rest_err

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	trace := "abc-123"

	tests := []struct {
		name string
		err  *RestErr
		code int
		kind string
	}{
		{"bad request", NewBadRequestError(&trace, "x"), http.StatusBadRequest, ErrBadRequest},
		{"not found", NewNotFoundError(&trace, "x"), http.StatusNotFound, ErrNotFound},
		{"forbidden", NewForbiddenError(&trace, "x"), http.StatusForbidden, ErrForbidden},
		{"unauthorized", NewUnauthorizedError(&trace, "x"), http.StatusUnauthorized, ErrUnauthorized},
		{"conflict", NewConflictValidationError(&trace, "x", nil), http.StatusConflict, ErrConflict},
		{"unprocessable", NewUnprocessableEntityError(&trace, "x", nil), http.StatusUnprocessableEntity, ErrUnprocessableEntity},
		{"internal", NewInternalServerError(&trace, "x", nil), http.StatusInternalServerError, ErrInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Err)
			assert.Equal(t, trace, tt.err.RayTraceCode)
			assert.Equal(t, "x", tt.err.Error())
		})
	}
}

func TestJSONOmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(NewNotFoundError(nil, "client not found"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"message":"client not found","error":"not_found","code":404}`, string(raw))
}

func TestCauses(t *testing.T) {
	e := NewBadRequestValidationError(nil, "invalid", []Causes{NewCause("cpf_cnpj", "required")})
	require.Len(t, e.Causes, 1)
	assert.Equal(t, "cpf_cnpj", e.Causes[0].Field)
}

func TestSingleCause(t *testing.T) {
	causes := SingleCause("tax_id", "already registered")

	require.Len(t, causes, 1)
	assert.Equal(t, Causes{Field: "tax_id", Message: "already registered"}, causes[0])
}
