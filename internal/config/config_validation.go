// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
)

// SupportedCipherSchemes lists the accepted values of Cipher.Scheme.
var SupportedCipherSchemes = []string{"aes-gcm", "xchacha20poly1305", "age"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	files := cfg.Storage.Files
	if files.PasswordsPath == "" || files.KeyPath == "" {
		return ErrInvalidStorageConfigs
	}
	if filepath.Clean(files.PasswordsPath) == filepath.Clean(files.KeyPath) {
		return fmt.Errorf("%w: store and key must be different files", ErrInvalidStorageConfigs)
	}

	if !slices.Contains(SupportedCipherSchemes, cfg.Cipher.Scheme) {
		return fmt.Errorf("%w: unknown scheme %q", ErrInvalidCipherConfigs, cfg.Cipher.Scheme)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
