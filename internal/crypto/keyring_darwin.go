//go:build darwin

package crypto

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

type darwinKeyring struct{}

func newPlatformKeyring() Keyring {
	return &darwinKeyring{}
}

// GetCredentials retrieves the service account JSON from macOS Keychain
func (k *darwinKeyring) GetCredentials() (string, error) {
	creds, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("drive credentials not found in keychain: %w", err)
		}
		return "", fmt.Errorf("failed to retrieve credentials from keychain: %w", err)
	}

	if creds == "" {
		return "", errors.New("stored credentials are empty")
	}

	return creds, nil
}

// SetCredentials stores the service account JSON in macOS Keychain
func (k *darwinKeyring) SetCredentials(json string) error {
	if json == "" {
		return errors.New("credentials cannot be empty")
	}

	err := keyring.Set(ServiceName, KeyName, json)
	if err != nil {
		return fmt.Errorf("failed to store credentials in keychain: %w", err)
	}

	return nil
}

// DeleteCredentials removes the service account JSON from macOS Keychain
func (k *darwinKeyring) DeleteCredentials() error {
	err := keyring.Delete(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("drive credentials not found in keychain: %w", err)
		}
		return fmt.Errorf("failed to delete credentials from keychain: %w", err)
	}

	return nil
}

// IsAvailable checks if the macOS Keychain is accessible
func (k *darwinKeyring) IsAvailable() bool {
	// Test keychain availability by attempting a dummy operation
	// We use a test key that we immediately delete
	testKey := "__pavadzimes_availability_test__"
	err := keyring.Set(ServiceName, testKey, "test")
	if err != nil {
		return false
	}

	// Clean up test key
	_ = keyring.Delete(ServiceName, testKey)
	return true
}
