package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]string {
	return map[string]string{
		"firstname": "Test",
		"lastname":  "User",
		"email":     "test.user@example.com",
		"mobile":    "1122334455",
		"username":  "testuser",
		"password":  "securepassword123",
	}
}

func TestNewAccount(t *testing.T) {
	t.Parallel()

	t.Run("valid fields", func(t *testing.T) {
		t.Parallel()

		account, err := NewAccount(validFields())
		require.NoError(t, err)
		require.NotNil(t, account)

		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, "Test", account.Firstname)
		assert.Equal(t, "User", account.Lastname)
		assert.Equal(t, "test.user@example.com", account.Email)
		assert.Equal(t, "1122334455", account.Mobile)
		assert.Equal(t, "testuser", account.Username)
		assert.Equal(t, "securepassword123", account.Password)
		assert.False(t, account.CreatedAt.IsZero())
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		for _, field := range RequiredFields {
			fields := validFields()
			delete(fields, field)

			account, err := NewAccount(fields)
			assert.Nil(t, account)
			require.Error(t, err, "missing %s should fail", field)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, field, validationErr.Field)
			assert.True(t, errors.Is(err, ErrValidation))
		}
	})

	t.Run("empty field is treated as missing", func(t *testing.T) {
		t.Parallel()

		fields := validFields()
		fields["email"] = ""

		_, err := NewAccount(fields)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "email", validationErr.Field)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()

		fields := validFields()
		fields["password"] = "short"

		account, err := NewAccount(fields)
		assert.Nil(t, account)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPasswordTooShort))
		assert.True(t, errors.Is(err, ErrValidation))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "password", validationErr.Field)
	})

	t.Run("password length counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		fields := validFields()
		fields["password"] = "пароль78" // 8 characters, 14 bytes

		_, err := NewAccount(fields)
		assert.NoError(t, err)
	})

	t.Run("exactly minimum length password", func(t *testing.T) {
		t.Parallel()

		fields := validFields()
		fields["password"] = "12345678"

		_, err := NewAccount(fields)
		assert.NoError(t, err)
	})
}

func TestAccountView(t *testing.T) {
	t.Parallel()

	account, err := NewAccount(validFields())
	require.NoError(t, err)

	view := account.View()
	assert.Equal(t, &AccountView{
		Firstname: "Test",
		Lastname:  "User",
		Email:     "test.user@example.com",
		Mobile:    "1122334455",
		Username:  "testuser",
	}, view)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("mobile", "is required", ErrValidation)
	assert.Equal(t, `invalid field "mobile": is required`, err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
}
