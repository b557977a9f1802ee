package rest_err

import "net/http"

type RestErr struct {
	Message      string   `json:"message"`
	Err          string   `json:"error"`
	Code         int      `json:"code"`
	RayTraceCode string   `json:"ray_trace_code,omitempty"`
	Causes       []Causes `json:"causes,omitempty"`
}

func (r *RestErr) Error() string {
	return r.Message
}

// NewRestErr monta o envelope de erro. rayTrace pode ser nil.
func NewRestErr(rayTrace *string, message, err string, code int, causes []Causes) *RestErr {
	restErr := &RestErr{
		Message: message,
		Err:     err,
		Code:    code,
		Causes:  causes,
	}
	if rayTrace != nil {
		restErr.RayTraceCode = *rayTrace
	}
	return restErr
}

func NewBadRequestError(rayTrace *string, message string) *RestErr {
	return NewRestErr(rayTrace, message, ErrBadRequest, http.StatusBadRequest, nil)
}

func NewBadRequestValidationError(rayTrace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(rayTrace, message, ErrBadRequest, http.StatusBadRequest, causes)
}

func NewInternalServerError(rayTrace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(rayTrace, message, ErrInternalServerError, http.StatusInternalServerError, causes)
}

func NewNotFoundError(rayTrace *string, message string) *RestErr {
	return NewRestErr(rayTrace, message, ErrNotFound, http.StatusNotFound, nil)
}

func NewForbiddenError(rayTrace *string, message string) *RestErr {
	return NewRestErr(rayTrace, message, ErrForbidden, http.StatusForbidden, nil)
}

func NewUnauthorizedError(rayTrace *string, message string) *RestErr {
	return NewRestErr(rayTrace, message, ErrUnauthorized, http.StatusUnauthorized, nil)
}

func NewUnprocessableEntityError(rayTrace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(rayTrace, message, ErrUnprocessableEntity, http.StatusUnprocessableEntity, causes)
}

func NewConflictValidationError(rayTrace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(rayTrace, message, ErrConflict, http.StatusConflict, causes)
}
