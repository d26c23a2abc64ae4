package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty path or the key file equal to the store file).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCipherConfigs indicates an unsupported cipher scheme.
	ErrInvalidCipherConfigs = errors.New("invalid cipher configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
