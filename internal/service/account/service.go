package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/store"
)

// Service implements account registration on top of a CredentialStore.
// It is stateless; every call is a single-shot request/response operation.
type Service struct {
	credentials store.CredentialStore
	logger      *slog.Logger
}

// NewService creates an account Service with the given dependencies.
// If logger is nil, the default slog logger is used.
func NewService(credentials store.CredentialStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		credentials: credentials,
		logger:      logger,
	}
}

// CreateAccount registers a new account from the submitted fields and
// returns its public view on success.
//
// The checks run in a fixed order: presence of the six required fields,
// username availability, password length, then the insert itself. The
// availability check is an early exit only — two concurrent registrations
// for the same username can both pass it, so a uniqueness violation from
// the insert is translated to ErrUsernameTaken as well. On any failure no
// partial state is left behind: the account either fully exists in the
// store or not at all.
//
// Error kinds: *domain.ValidationError for missing fields or a short
// password, ErrUsernameTaken for a conflict, and a *store.StoreError when
// the backend could not be reached or queried.
func (s *Service) CreateAccount(ctx context.Context, fields map[string]string) (*domain.AccountView, error) {
	for _, field := range domain.RequiredFields {
		if fields[field] == "" {
			return nil, domain.NewValidationError(field, "is required", domain.ErrValidation)
		}
	}

	username := fields["username"]

	taken, err := s.credentials.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username availability: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, username)
	}

	if len([]rune(fields["password"])) < domain.MinPasswordLength {
		return nil, domain.NewValidationError("password", "too short", domain.ErrPasswordTooShort)
	}

	account, err := domain.NewAccount(fields)
	if err != nil {
		return nil, err
	}

	if err := s.credentials.Insert(ctx, account); err != nil {
		if store.IsDuplicateError(err) {
			// The race the availability check missed: another request
			// inserted the same username first. The constraint is the
			// authoritative arbiter, so report a clean conflict.
			s.logger.Info("registration lost uniqueness race", "username", username)
			return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, username)
		}
		return nil, fmt.Errorf("persisting account: %w", err)
	}

	s.logger.Info("account created", "username", username)

	return account.View(), nil
}
