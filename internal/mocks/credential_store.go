// Package mocks provides hand-rolled test doubles for the store interfaces.
package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/store"
)

// MockCredentialStore implements store.CredentialStore for testing.
//
// The default implementation is an in-memory map guarded by a mutex, with
// Insert enforcing username uniqueness the way the backend constraint does.
// That makes the mock safe for concurrent use, so tests can reproduce the
// same-username registration race. Individual methods can be overridden via
// the function fields.
type MockCredentialStore struct {
	// Function fields for customizable behavior
	ExistsFn         func(ctx context.Context, username string) (bool, error)
	InsertFn         func(ctx context.Context, account *domain.Account) error
	FindCredentialFn func(ctx context.Context, username string) (string, error)

	// Data for the default implementation
	mu       sync.Mutex
	Accounts map[string]*domain.Account

	// Errors returned by the default implementation when set
	ExistsError         error
	InsertError         error
	FindCredentialError error
}

// NewMockCredentialStore creates a new mock store with initialized defaults.
func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{
		Accounts: make(map[string]*domain.Account),
	}
}

// Ensure MockCredentialStore implements store.CredentialStore
var _ store.CredentialStore = (*MockCredentialStore)(nil)

// Exists implements the CredentialStore interface.
func (m *MockCredentialStore) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, username)
	}

	if m.ExistsError != nil {
		return false, m.ExistsError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.Accounts[username]
	return exists, nil
}

// Insert implements the CredentialStore interface. The check and the write
// happen under one lock, mirroring the atomicity of the backend's
// uniqueness constraint.
func (m *MockCredentialStore) Insert(ctx context.Context, account *domain.Account) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, account)
	}

	if m.InsertError != nil {
		return m.InsertError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Accounts[account.Username]; exists {
		return store.ErrUsernameExists
	}
	m.Accounts[account.Username] = account
	return nil
}

// FindCredential implements the CredentialStore interface.
func (m *MockCredentialStore) FindCredential(ctx context.Context, username string) (string, error) {
	if m.FindCredentialFn != nil {
		return m.FindCredentialFn(ctx, username)
	}

	if m.FindCredentialError != nil {
		return "", m.FindCredentialError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	account, exists := m.Accounts[username]
	if !exists {
		return "", store.ErrAccountNotFound
	}
	return account.Password, nil
}
