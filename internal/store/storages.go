package store

import (
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
)

// ClientStorages groups the storage layer handed to the service layer.
type ClientStorages struct {
	// Passwords is the flat-file password store.
	Passwords PasswordStorage
}

// NewClientStorages wires the storages from the client configuration.
func NewClientStorages(cfg config.ClientConfig, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("store", cfg.PasswordsPath).Msg("creating storages...")

	return &ClientStorages{
		Passwords: NewPasswordFileStorage(cfg.PasswordsPath, logger),
	}
}
