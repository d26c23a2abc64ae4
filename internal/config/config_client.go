package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ClientConfig is the validated configuration view consumed by the CLI
// runtime. It is passed by value into every component that needs it.
type ClientConfig struct {
	// PasswordsPath is the password store file.
	PasswordsPath string
	// KeyPath is the key file next to the store.
	KeyPath string
	// CipherScheme selects the encryption scheme.
	CipherScheme string
	// AllowEmptyTemplate accepts empty templates.
	AllowEmptyTemplate bool
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the log destination; empty means next to the executable.
	LogFile string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. flags is the command's flag set; it may be
// nil when no flags are registered.
func GetClientConfig(flags *pflag.FlagSet) (ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return ClientConfig{}, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Client(), nil
}

// Client maps the structured config onto the flat client view.
func (cfg *StructuredConfig) Client() ClientConfig {
	return ClientConfig{
		PasswordsPath:      cfg.Storage.Files.PasswordsPath,
		KeyPath:            cfg.Storage.Files.KeyPath,
		CipherScheme:       cfg.Cipher.Scheme,
		AllowEmptyTemplate: cfg.Generator.AllowEmptyTemplate,
		LogLevel:           cfg.App.LogLevel,
		LogFile:            cfg.App.LogFile,
	}
}
