// Package verification orchestrates credential checks: input validation,
// credential lookup, and the match decision.
package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/store"
)

// Service implements credential verification on top of a CredentialStore.
type Service struct {
	credentials store.CredentialStore
	logger      *slog.Logger
}

// NewService creates a verification Service with the given dependencies.
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

// VerifyCredentials reports whether the submitted username/password pair
// matches a persisted account. A mismatch or unknown username is (false, nil)
// — a checked negative, not an error. A storage failure is returned as an
// error and is never conflated with "credentials invalid".
//
// The comparison is exact and case-sensitive against the stored value.
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, domain.NewValidationError("username", "is required", domain.ErrValidation)
	}
	if password == "" {
		return false, domain.NewValidationError("password", "is required", domain.ErrValidation)
	}

	stored, err := s.credentials.FindCredential(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("looking up credential: %w", err)
	}

	if stored != password {
		s.logger.Debug("credential mismatch", "username", username)
		return false, nil
	}

	return true, nil
}
