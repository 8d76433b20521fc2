package handler

import (
	"net/http"

	"github.com/efuentes/blackjack-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeUnauthorized        = apierr.CodeUnauthorized
	CodeForbidden           = apierr.CodeForbidden
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeInvalidState        = apierr.CodeInvalidState
	CodeInvalidOperation    = apierr.CodeInvalidOperation
	CodeInsufficientBalance = apierr.CodeInsufficientBalance
	CodeEmptyDeck           = apierr.CodeEmptyDeck
	CodeUsernameExists      = apierr.CodeUsernameExists
	CodeInvalidCredentials  = apierr.CodeInvalidCredentials
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
