package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/signup-api/internal/api/shared"
	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/service/account"
	"github.com/phrazzld/signup-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request: malformed or policy-violating input
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Conflict: username already taken
	case errors.Is(err, account.ErrUsernameTaken),
		store.IsDuplicateError(err):
		return http.StatusConflict

	// Not found
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: storage or unknown failure
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message for
// the given error. Raw backend error text never appears here; only the error
// kind and minimal context (which field, which username) cross the boundary.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		if errors.Is(err, domain.ErrPasswordTooShort) {
			return fmt.Sprintf("Password must be at least %d characters long", domain.MinPasswordLength)
		}
		return fmt.Sprintf("Missing required field: %s", validationErr.Field)

	case errors.Is(err, account.ErrUsernameTaken),
		store.IsDuplicateError(err):
		return "Username already exists. Please choose a different username."

	case store.IsNotFoundError(err):
		return "Account not found"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response for err, using the mapped status
// code and sanitized message. If userMessage is non-empty it overrides the
// derived message. The underlying error is logged (redacted) but never sent
// to the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	message := userMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
