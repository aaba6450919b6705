package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.TokenStore = (*KeyringStore)(nil)

// KeyringStore keeps the token in the OS credential store (macOS Keychain,
// Windows Credential Manager, or the Secret Service on Linux).
type KeyringStore struct {
	service string
	user    string
}

// NewKeyringStore returns a store for the given keyring service and user.
func NewKeyringStore(service, user string) *KeyringStore {
	return &KeyringStore{service: service, user: user}
}

// Token returns the stored token, or ErrNoToken when none is stored.
func (k *KeyringStore) Token(_ context.Context) (string, error) {
	token, err := keyring.Get(k.service, k.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("reading keyring %s/%s: %w", k.service, k.user, err)
	}
	return token, nil
}

// Save stores token, replacing any previous one.
func (k *KeyringStore) Save(_ context.Context, token string) error {
	if token == "" {
		return ErrNoToken
	}
	if err := keyring.Set(k.service, k.user, token); err != nil {
		return fmt.Errorf("writing keyring %s/%s: %w", k.service, k.user, err)
	}
	return nil
}

// Delete removes the stored token. Deleting a missing token is not an error.
func (k *KeyringStore) Delete(_ context.Context) error {
	err := keyring.Delete(k.service, k.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("deleting keyring %s/%s: %w", k.service, k.user, err)
	}
	return nil
}
