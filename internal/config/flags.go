package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared between the command line and the config layer.
const (
	FlagConfig             = "config"
	FlagStore              = "store"
	FlagKey                = "key"
	FlagCipher             = "cipher"
	FlagLogLevel           = "log-level"
	FlagLogFile            = "log-file"
	FlagAllowEmptyTemplate = "allow-empty-template"
)

// RegisterFlags adds the configuration flags to fs. Defaults are left empty
// so that unset flags never shadow env or JSON values.
//
// Flags:
//
//	--config               json file path with configs
//	--store                password store file
//	--key                  encryption key file
//	--cipher               encryption scheme (aes-gcm, xchacha20poly1305, age)
//	--log-level            log level (debug, info, warn, error)
//	--log-file             log file path
//	--allow-empty-template accept an empty template
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "JSON config file path")
	fs.String(FlagStore, "", "Password store file (default \""+DefaultPasswordsPath+"\")")
	fs.String(FlagKey, "", "Encryption key file (default \""+DefaultKeyPath+"\")")
	fs.String(FlagCipher, "", "Encryption scheme: aes-gcm, xchacha20poly1305 or age (default \""+DefaultCipherScheme+"\")")
	fs.String(FlagLogLevel, "", "Log level (default \""+DefaultLogLevel+"\")")
	fs.String(FlagLogFile, "", "Log file path (default \"logs\" next to the executable)")
	fs.Bool(FlagAllowEmptyTemplate, false, "Accept an empty template")
}

// parseFlags reads the configuration flags that were explicitly set on fs.
// A nil set, or one without the configuration flags registered, yields an
// empty config.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if fs == nil {
		return cfg, nil
	}

	targets := map[string]*string{
		FlagConfig:   &cfg.JSONFilePath,
		FlagStore:    &cfg.Storage.Files.PasswordsPath,
		FlagKey:      &cfg.Storage.Files.KeyPath,
		FlagCipher:   &cfg.Cipher.Scheme,
		FlagLogLevel: &cfg.App.LogLevel,
		FlagLogFile:  &cfg.App.LogFile,
	}
	for name, dst := range targets {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	if fs.Lookup(FlagAllowEmptyTemplate) != nil && fs.Changed(FlagAllowEmptyTemplate) {
		v, err := fs.GetBool(FlagAllowEmptyTemplate)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", FlagAllowEmptyTemplate, err)
		}
		cfg.Generator.AllowEmptyTemplate = v
	}

	return cfg, nil
}
