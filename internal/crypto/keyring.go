package crypto

// Keyring provides secure credential storage abstraction
type Keyring interface {
	GetCredentials() (string, error)
	SetCredentials(json string) error
	DeleteCredentials() error
	IsAvailable() bool
}

const (
	ServiceName = "pavadzimes"
	KeyName     = "drive-service-account"
)

// NewKeyring returns the best available keyring implementation
func NewKeyring() Keyring {
	return newPlatformKeyring()
}
