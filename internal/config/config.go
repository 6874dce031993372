package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bratus/pavadzimes/internal/logger"
)

type Config struct {
	// Issuing company identity printed on every document
	Company CompanyConfig `yaml:"company"`

	// Bank details shown in the issuer block
	Bank BankConfig `yaml:"bank"`

	// Document numbering, dates and output settings
	Document DocumentConfig `yaml:"document"`

	// Optional remote mirror of generated files
	Remote RemoteConfig `yaml:"remote"`

	// Logging
	Log logger.Config `yaml:"log"`
}

type CompanyConfig struct {
	LegalName    string   `yaml:"legal_name"`
	AddressLine1 string   `yaml:"address_line1"`
	AddressLine2 string   `yaml:"address_line2"`
	RegNo        string   `yaml:"reg_no"`
	VATNo        string   `yaml:"vat_no"`
	Phone        string   `yaml:"phone"`
	SignerTitle  string   `yaml:"signer_title"` // default title, e.g. "valdes loceklis"
	Signers      []string `yaml:"signers"`      // selectable signatory names
}

type BankConfig struct {
	Name  string `yaml:"name"`
	SWIFT string `yaml:"swift"`
	IBAN  string `yaml:"iban"`
}

type DocumentConfig struct {
	NumberPrefix string `yaml:"number_prefix"` // document ID prefix, e.g. "BR"
	DueDays      int    `yaml:"due_days"`      // days from issue date to due date
	OutputDir    string `yaml:"output_dir"`    // directory for generated files
	HistoryPath  string `yaml:"history_path"`  // JSON history ledger file
	LogoPath     string `yaml:"logo_path"`     // optional logo image
	FontDir      string `yaml:"font_dir"`      // DejaVu Serif font directory
}

type RemoteConfig struct {
	FolderID string `yaml:"folder_id"` // Drive folder to mirror outputs into
}

// DefaultConfigPath returns ~/.config/pavadzimes/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "pavadzimes", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "pavadzimes", "config.yaml")
}

// DefaultConfig returns the SIA Bratus defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	base := filepath.Join(homeDir, ".config", "pavadzimes")

	return &Config{
		Company: CompanyConfig{
			LegalName:    "SIA Bratus",
			AddressLine1: "Ķekavas nov., Ķekava,",
			AddressLine2: "Dārzenieku iela 42, LV-2123",
			RegNo:        "40203628316",
			VATNo:        "LV40203628316",
			Phone:        "+371 24424434",
			SignerTitle:  "valdes loceklis",
			Signers: []string{
				"Adrians Stankevičs",
				"Rihards Ozoliņš",
				"Ēriks Ušackis",
				"Aleks Kristiāns Grīnbergs",
			},
		},
		Bank: BankConfig{
			Name:  "AS Swedbank",
			SWIFT: "HABALV22",
			IBAN:  "LV64HABA0551060367591",
		},
		Document: DocumentConfig{
			NumberPrefix: "BR",
			DueDays:      14,
			OutputDir:    filepath.Join(base, "documents"),
			HistoryPath:  filepath.Join(base, "history.json"),
			LogoPath:     filepath.Join(base, "logo.png"),
			FontDir:      "/usr/share/fonts/truetype/dejavu",
		},
		Remote: RemoteConfig{},
		Log:    logger.DefaultConfig(),
	}
}

// Load loads config from the given path, or returns defaults if the file
// doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the output and history directories
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Document.OutputDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(c.Document.HistoryPath), 0755)
}
