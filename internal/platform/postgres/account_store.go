package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/store"
)

// accountsTable is the table holding registered accounts. The name is
// inherited from the system being replaced.
const accountsTable = "userinfo"

// AccountStore implements the store.CredentialStore interface using a
// PostgreSQL database as the storage backend.
type AccountStore struct {
	db *sql.DB
}

// NewAccountStore creates a new PostgreSQL implementation of the
// CredentialStore interface. It accepts a database connection pool that
// should be initialized and managed by the caller.
func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{
		db: db,
	}
}

// Ensure AccountStore implements store.CredentialStore
var _ store.CredentialStore = (*AccountStore)(nil)

// Exists implements store.CredentialStore.Exists.
func (s *AccountStore) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM ` + accountsTable + ` WHERE username = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, store.NewStoreError("account", "exists", "failed to check username", MapError(err))
	}

	return exists, nil
}

// Insert implements store.CredentialStore.Insert. A uniqueness violation on
// username is reported as store.ErrUsernameExists; this is the authoritative
// conflict signal even when the pre-insert existence check passed.
func (s *AccountStore) Insert(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO ` + accountsTable + ` (id, firstname, lastname, email, mobile, username, password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Firstname,
		account.Lastname,
		account.Email,
		account.Mobile,
		account.Username,
		account.Password,
		account.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		return store.NewStoreError("account", "insert", "failed to insert account", MapError(err))
	}

	return nil
}

// FindCredential implements store.CredentialStore.FindCredential.
func (s *AccountStore) FindCredential(ctx context.Context, username string) (string, error) {
	query := `SELECT password FROM ` + accountsTable + ` WHERE username = $1`

	var password string
	err := s.db.QueryRowContext(ctx, query, username).Scan(&password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrAccountNotFound
		}
		return "", store.NewStoreError("account", "find_credential", "failed to look up credential", MapError(err))
	}

	return password, nil
}
