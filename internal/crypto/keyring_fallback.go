//go:build !darwin

package crypto

import (
	"errors"
	"fmt"
	"os"
)

type fallbackKeyring struct{}

func newPlatformKeyring() Keyring {
	return &fallbackKeyring{}
}

// GetCredentials retrieves the service account JSON from the
// PAVADZIMES_DRIVE_CREDENTIALS environment variable
func (k *fallbackKeyring) GetCredentials() (string, error) {
	creds := os.Getenv("PAVADZIMES_DRIVE_CREDENTIALS")
	if creds == "" {
		return "", errors.New("PAVADZIMES_DRIVE_CREDENTIALS environment variable not set")
	}

	return creds, nil
}

// SetCredentials returns an error suggesting to set the environment variable
func (k *fallbackKeyring) SetCredentials(json string) error {
	if json == "" {
		return errors.New("credentials cannot be empty")
	}

	return fmt.Errorf("keyring not available on this platform: please set the PAVADZIMES_DRIVE_CREDENTIALS environment variable instead")
}

// DeleteCredentials returns an error suggesting to unset the environment variable
func (k *fallbackKeyring) DeleteCredentials() error {
	return errors.New("keyring not available on this platform: please unset PAVADZIMES_DRIVE_CREDENTIALS manually")
}

// IsAvailable checks if the PAVADZIMES_DRIVE_CREDENTIALS environment variable is set
func (k *fallbackKeyring) IsAvailable() bool {
	return os.Getenv("PAVADZIMES_DRIVE_CREDENTIALS") != ""
}
