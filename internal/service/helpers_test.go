package service

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/prompt"
	"github.com/MKhiriev/go-pass-gen/internal/store"
)

// testEnv is a store, key file and services rooted in a temp dir.
type testEnv struct {
	dir       string
	storePath string
	keyPath   string
	storage   store.PasswordStorage
	keys      crypto.KeyStore
	vault     VaultService
	out       *bytes.Buffer
}

func newTestEnv(t *testing.T, scheme string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		dir:       dir,
		storePath: filepath.Join(dir, "passwords.txt"),
		keyPath:   filepath.Join(dir, "key.txt"),
		out:       &bytes.Buffer{},
	}
	cipher, err := crypto.NewCipher(scheme)
	require.NoError(t, err)

	env.storage = store.NewPasswordFileStorage(env.storePath, logger.Nop())
	env.keys = crypto.NewKeyFile(env.keyPath)
	env.vault = NewVaultService(env.storage, env.keys, cipher)
	return env
}

// storeService builds a StoreService answering prompts from answers.
func (e *testEnv) storeService(answers ...string) StoreService {
	p := prompt.NewPrompter(prompt.NewScriptedSource(answers...), e.out)
	return NewStoreService(e.storage, e.vault, p, e.out)
}
