// Package remote mirrors generated documents to a Google Drive folder.
// Uploading is strictly optional: no configured folder means a no-op
// uploader, and upload failures never block local generation.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/bratus/pavadzimes/internal/crypto"
	"github.com/bratus/pavadzimes/internal/logger"
)

// Uploader mirrors one generated file to remote storage.
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte) error
	Enabled() bool
}

type driveUploader struct {
	folderID string
	creds    []byte
	log      zerolog.Logger
}

type disabledUploader struct{}

func (disabledUploader) Upload(context.Context, string, []byte) error { return nil }
func (disabledUploader) Enabled() bool                                { return false }

// New builds an uploader for the configured folder. An empty folder ID
// or absent credentials yields the disabled uploader.
func New(folderID string, keyring crypto.Keyring) Uploader {
	log := logger.WithComponent("remote")

	if folderID == "" {
		return disabledUploader{}
	}

	creds, err := loadCredentials(keyring)
	if err != nil {
		log.Warn().Err(err).Msg("remote upload disabled: no drive credentials")
		return disabledUploader{}
	}

	return &driveUploader{folderID: folderID, creds: creds, log: log}
}

// loadCredentials resolves the service account JSON: keyring first, then
// the standard Google environment variables.
func loadCredentials(keyring crypto.Keyring) ([]byte, error) {
	if keyring != nil && keyring.IsAvailable() {
		if creds, err := keyring.GetCredentials(); err == nil {
			return []byte(creds), nil
		}
	}

	if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		data, err := os.ReadFile(credFile)
		if err != nil {
			return nil, fmt.Errorf("read GOOGLE_APPLICATION_CREDENTIALS: %w", err)
		}
		return data, nil
	}

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		return []byte(credJSON), nil
	}

	return nil, fmt.Errorf("no service account credentials found")
}

func (u *driveUploader) Enabled() bool { return true }

// Upload creates the file inside the configured folder. An existing
// remote file with the same name is not replaced; Drive keeps both.
func (u *driveUploader) Upload(ctx context.Context, name string, data []byte) error {
	config, err := google.JWTConfigFromJSON(u.creds, drive.DriveFileScope)
	if err != nil {
		return fmt.Errorf("parse drive credentials: %w", err)
	}

	client := config.Client(ctx)
	svc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("create drive service: %w", err)
	}

	file := &drive.File{
		Name:    name,
		Parents: []string{u.folderID},
	}
	created, err := svc.Files.Create(file).
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}

	u.log.Info().Str("name", name).Str("file_id", created.Id).Msg("uploaded to drive")
	return nil
}
