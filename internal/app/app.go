package app

import (
	"fmt"

	"github.com/bratus/pavadzimes/internal/config"
	"github.com/bratus/pavadzimes/internal/crypto"
	"github.com/bratus/pavadzimes/internal/history"
	"github.com/bratus/pavadzimes/internal/remote"
	"github.com/bratus/pavadzimes/internal/scrape"
	"github.com/bratus/pavadzimes/internal/service"
)

// App is the dependency injection container for all application components
type App struct {
	Config  *config.Config
	Keyring crypto.Keyring

	Ledger   *history.Ledger
	Uploader remote.Uploader
	Scraper  *scrape.Scraper

	DocumentService service.DocumentService
}

// New creates a new App instance from the default config path
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	keyring := crypto.NewKeyring()
	ledger := history.New(cfg.Document.HistoryPath)
	uploader := remote.New(cfg.Remote.FolderID, keyring)

	return &App{
		Config:          cfg,
		Keyring:         keyring,
		Ledger:          ledger,
		Uploader:        uploader,
		Scraper:         scrape.New(),
		DocumentService: service.NewDocumentService(cfg, ledger, uploader),
	}, nil
}
