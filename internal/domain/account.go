package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinPasswordLength is the minimum number of characters a password must have
// at registration time.
const MinPasswordLength = 8

// RequiredFields lists the registration fields every account must supply,
// in the order they are validated.
var RequiredFields = []string{"firstname", "lastname", "email", "mobile", "username", "password"}

// Account represents one registered identity.
//
// The plaintext password is part of the stored record; this mirrors the
// legacy system being replaced, whose verification contract is an exact
// byte-for-byte comparison against the stored value.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // Never expose the password in JSON
	CreatedAt time.Time `json:"created_at"`
}

// AccountView is the subset of an Account safe to return to a caller:
// every registration field except the password.
type AccountView struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Username  string `json:"username"`
}

// NewAccount creates an Account from the submitted registration fields.
// It generates a new UUID for the account ID and sets the creation timestamp.
// Returns a *ValidationError if any field is missing/empty or the password is
// below MinPasswordLength.
func NewAccount(fields map[string]string) (*Account, error) {
	account := &Account{
		ID:        uuid.New(),
		Firstname: fields["firstname"],
		Lastname:  fields["lastname"],
		Email:     fields["email"],
		Mobile:    fields["mobile"],
		Username:  fields["username"],
		Password:  fields["password"],
		CreatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks the Account's creation-time invariants: all six
// registration fields present and non-empty, password at least
// MinPasswordLength characters. Returns a *ValidationError naming the first
// field that fails.
func (a *Account) Validate() error {
	for _, field := range RequiredFields {
		if a.fieldValue(field) == "" {
			return NewValidationError(field, "is required", ErrValidation)
		}
	}

	// Length in characters, not bytes, so multi-byte passwords are not
	// penalized.
	if len([]rune(a.Password)) < MinPasswordLength {
		return NewValidationError("password", "too short", ErrPasswordTooShort)
	}

	return nil
}

// View returns the public projection of the account.
func (a *Account) View() *AccountView {
	return &AccountView{
		Firstname: a.Firstname,
		Lastname:  a.Lastname,
		Email:     a.Email,
		Mobile:    a.Mobile,
		Username:  a.Username,
	}
}

func (a *Account) fieldValue(name string) string {
	switch name {
	case "firstname":
		return a.Firstname
	case "lastname":
		return a.Lastname
	case "email":
		return a.Email
	case "mobile":
		return a.Mobile
	case "username":
		return a.Username
	case "password":
		return a.Password
	default:
		return ""
	}
}
