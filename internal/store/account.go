package store

import (
	"context"

	"github.com/phrazzld/signup-api/internal/domain"
)

// CredentialStore defines the interface for account persistence and
// credential lookup. It owns all interaction with the relational backend;
// nothing else in the application touches the database.
type CredentialStore interface {
	// Exists reports whether an account with the given username is present.
	// This is a fast-path convenience only: two concurrent registrations can
	// both observe false before either inserts. The backend's uniqueness
	// constraint, surfaced by Insert, is the authoritative check.
	// Returns a *StoreError on connection or query failure.
	Exists(ctx context.Context, username string) (bool, error)

	// Insert persists a new account row. Returns ErrUsernameExists if the
	// backend rejects the write due to the uniqueness constraint on
	// username, and a *StoreError for any other connection or query
	// failure. The row either fully exists afterwards or not at all.
	Insert(ctx context.Context, account *domain.Account) error

	// FindCredential returns the stored password for the given username.
	// Returns ErrAccountNotFound if no such row exists, and a *StoreError
	// on connection or query failure.
	FindCredential(ctx context.Context, username string) (string, error)
}
