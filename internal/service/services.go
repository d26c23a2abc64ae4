package service

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/prompt"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
)

// ClientServices groups the services used by the client application.
type ClientServices struct {
	PasswordService PasswordService
	StoreService    StoreService
	VaultService    VaultService
}

// NewClientServices wires the services from configuration, storages and the
// collaborators that talk to the user. out receives all user-facing output.
func NewClientServices(
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	clipboard adapter.Clipboard,
	prompter prompt.Prompter,
	out io.Writer,
	logger *logger.Logger,
) (*ClientServices, error) {
	cipher, err := crypto.NewCipher(cfg.CipherScheme)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}

	vaultSvc := NewVaultService(storages.Passwords, crypto.NewKeyFile(cfg.KeyPath), cipher)
	passwordSvc := NewPasswordService(
		generator.NewGenerator(out, logger),
		validators.NewGenerationValidator(),
		prompter,
		clipboard,
		out,
		cfg.AllowEmptyTemplate,
	)

	return &ClientServices{
		PasswordService: passwordSvc,
		StoreService:    NewStoreService(storages.Passwords, vaultSvc, prompter, out),
		VaultService:    vaultSvc,
	}, nil
}
