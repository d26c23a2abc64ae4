// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// Default values applied before any other configuration source.
const (
	DefaultPasswordsPath = "passwords.txt"
	DefaultKeyPath       = "key.txt"
	DefaultCipherScheme  = "aes-gcm"
	DefaultLogLevel      = "info"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-gen application. It aggregates all sub-configurations and is
// populated by merging defaults, an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the password and key files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cipher selects the at-rest encryption scheme.
	Cipher Cipher `envPrefix:"CIPHER_"`

	// Generator holds generation behaviour switches.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file log entries are appended to. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the on-disk artifacts.
type Storage struct {
	// Files holds file-system locations.
	Files Files `envPrefix:"FILES_"`
}

// Files holds the paths of the store and key artifacts.
type Files struct {
	// PasswordsPath is the newline-delimited password store.
	// Env: STORAGE_FILES_PASSWORDS_PATH
	PasswordsPath string `env:"PASSWORDS_PATH"`

	// KeyPath is the sibling file holding the encryption key. Its presence
	// marks the store as encrypted.
	// Env: STORAGE_FILES_KEY_PATH
	KeyPath string `env:"KEY_PATH"`
}

// Cipher holds the encryption scheme selection.
type Cipher struct {
	// Scheme is one of "aes-gcm", "xchacha20poly1305" or "age".
	// Env: CIPHER_SCHEME
	Scheme string `env:"SCHEME"`
}

// Generator holds password generation switches.
type Generator struct {
	// AllowEmptyTemplate accepts an empty template in template mode, which
	// yields empty passwords. When false an empty template is re-prompted.
	// Env: GENERATOR_ALLOW_EMPTY_TEMPLATE
	AllowEmptyTemplate bool `env:"ALLOW_EMPTY_TEMPLATE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig(flags *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
