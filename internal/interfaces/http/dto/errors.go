package dto

import (
	"net/http"

	"github.com/estoque/backend/internal/domain/shared"
)

// ErrCodeBadRequest is used for malformed requests that never reach the domain
const ErrCodeBadRequest = "BAD_REQUEST"

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Business rule violations are 422: the request is well formed but the
// operation is not allowed in the current state.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:            http.StatusBadRequest,
	shared.CodeValidation:        http.StatusBadRequest,
	shared.CodeNotFound:          http.StatusNotFound,
	shared.CodeConflict:          http.StatusConflict,
	shared.CodeInvalidTransition: http.StatusUnprocessableEntity,
	shared.CodeInvalidState:      http.StatusUnprocessableEntity,
	shared.CodeInsufficientStock: http.StatusUnprocessableEntity,
	shared.CodeInternal:          http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
