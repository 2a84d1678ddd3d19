package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/service/account"
	"github.com/phrazzld/signup-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error",
			err:  domain.NewValidationError("email", "is required", domain.ErrValidation),
			want: http.StatusBadRequest,
		},
		{
			name: "short password",
			err:  domain.NewValidationError("password", "too short", domain.ErrPasswordTooShort),
			want: http.StatusBadRequest,
		},
		{
			name: "username taken",
			err:  fmt.Errorf("%w: alice", account.ErrUsernameTaken),
			want: http.StatusConflict,
		},
		{
			name: "duplicate from store",
			err:  store.ErrUsernameExists,
			want: http.StatusConflict,
		},
		{
			name: "account not found",
			err:  store.ErrAccountNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "storage failure",
			err:  store.NewStoreError("account", "insert", "failed", errors.New("connection refused")),
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "An unexpected error occurred",
		},
		{
			name: "missing field names the field",
			err:  domain.NewValidationError("mobile", "is required", domain.ErrValidation),
			want: "Missing required field: mobile",
		},
		{
			name: "short password",
			err:  domain.NewValidationError("password", "too short", domain.ErrPasswordTooShort),
			want: "Password must be at least 8 characters long",
		},
		{
			name: "username taken",
			err:  fmt.Errorf("%w: alice", account.ErrUsernameTaken),
			want: "Username already exists. Please choose a different username.",
		},
		{
			name: "storage failure hides backend detail",
			err: store.NewStoreError("account", "insert", "failed",
				errors.New(`connection to "db.internal:5432" refused`)),
			want: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
