package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/mocks"
	"github.com/phrazzld/signup-api/internal/store"
)

func storeWithAccount(t *testing.T, username, password string) *mocks.MockCredentialStore {
	t.Helper()

	credentials := mocks.NewMockCredentialStore()
	account, err := domain.NewAccount(map[string]string{
		"firstname": "Test",
		"lastname":  "User",
		"email":     "test.user@example.com",
		"mobile":    "1122334455",
		"username":  username,
		"password":  password,
	})
	require.NoError(t, err)
	require.NoError(t, credentials.Insert(context.Background(), account))
	return credentials
}

func TestVerifyCredentials(t *testing.T) {
	t.Parallel()

	t.Run("matching credentials", func(t *testing.T) {
		t.Parallel()

		credentials := storeWithAccount(t, "alice", "longenough1")
		service := NewService(credentials, nil)

		ok, err := service.VerifyCredentials(context.Background(), "alice", "longenough1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		credentials := storeWithAccount(t, "alice", "longenough1")
		service := NewService(credentials, nil)

		ok, err := service.VerifyCredentials(context.Background(), "alice", "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		t.Parallel()

		credentials := storeWithAccount(t, "alice", "longenough1")
		service := NewService(credentials, nil)

		ok, err := service.VerifyCredentials(context.Background(), "alice", "Longenough1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()

		credentials := storeWithAccount(t, "alice", "longenough1")
		service := NewService(credentials, nil)

		ok, err := service.VerifyCredentials(context.Background(), "bob", "x")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty inputs fail validation", func(t *testing.T) {
		t.Parallel()

		service := NewService(mocks.NewMockCredentialStore(), nil)

		tests := []struct {
			name      string
			username  string
			password  string
			wantField string
		}{
			{"empty username", "", "longenough1", "username"},
			{"empty password", "alice", "", "password"},
			{"both empty", "", "", "username"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ok, err := service.VerifyCredentials(context.Background(), tt.username, tt.password)
				assert.False(t, ok)

				var validationErr *domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
			})
		}
	})

	t.Run("storage failure is not a mismatch", func(t *testing.T) {
		t.Parallel()

		credentials := mocks.NewMockCredentialStore()
		credentials.FindCredentialError = store.NewStoreError("account", "find_credential",
			"failed to look up credential", errors.New("connection refused"))

		service := NewService(credentials, nil)
		ok, err := service.VerifyCredentials(context.Background(), "alice", "longenough1")
		assert.False(t, ok)
		require.Error(t, err)
		assert.True(t, store.IsStorageError(err))
	})
}
