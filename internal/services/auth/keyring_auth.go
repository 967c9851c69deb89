package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps API keys in the OS keychain (Keychain on macOS, Secret
// Service on Linux, Credential Manager on Windows).
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store scoped to service, or to ServiceName when
// service is empty.
func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = ServiceName
	}
	return &KeyringStore{service: service}
}

func (k *KeyringStore) SetToken(account string, token string) error {
	err := keyring.Set(k.service, NormalizeAccount(account), token)
	if errors.Is(err, keyring.ErrSetDataTooBig) {
		return fmt.Errorf("auth: %w: too long for the system keychain", ErrInvalidAPIKey)
	}
	if err != nil {
		return fmt.Errorf("auth: keychain write failed: %w", err)
	}
	return nil
}

// GetToken returns ErrTokenNotFound when nothing is stored for account.
func (k *KeyringStore) GetToken(account string) (string, error) {
	token, err := keyring.Get(k.service, NormalizeAccount(account))
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	default:
		return "", fmt.Errorf("auth: keychain read failed: %w", err)
	}
}

// DeleteToken returns ErrTokenNotFound when there was nothing to delete.
func (k *KeyringStore) DeleteToken(account string) error {
	err := keyring.Delete(k.service, NormalizeAccount(account))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, keyring.ErrNotFound):
		return ErrTokenNotFound
	default:
		return fmt.Errorf("auth: keychain delete failed: %w", err)
	}
}
