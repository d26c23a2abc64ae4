// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/awnumar/memguard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/mock"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/models"
)

var schemes = []string{crypto.SchemeAESGCM, crypto.SchemeXChaCha20Poly1305, crypto.SchemeAge}

// ── round trips ───────────────────────────────────────────────────────────────

// TestVaultService_PlaintextRoundTrip verifies retrieve(save(L)) == L
// without encryption.
func TestVaultService_PlaintextRoundTrip(t *testing.T) {
	env := newTestEnv(t, crypto.SchemeAESGCM)
	ctx := context.Background()
	list := models.PasswordList{"abc123", "Q!w2", "zz"}

	_, err := env.storeService().Save(ctx, list, false)
	require.NoError(t, err)

	got, err := env.vault.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	encrypted, err := env.vault.IsEncrypted()
	require.NoError(t, err)
	assert.False(t, encrypted)
}

// TestVaultService_EncryptedRoundTrip verifies retrieve(encrypt(save(L))) == L
// for every scheme.
func TestVaultService_EncryptedRoundTrip(t *testing.T) {
	for _, scheme := range schemes {
		t.Run(scheme, func(t *testing.T) {
			env := newTestEnv(t, scheme)
			ctx := context.Background()
			list := models.PasswordList{"abc123", "def456"}

			_, err := env.storeService().Save(ctx, list, false)
			require.NoError(t, err)

			created, err := env.vault.EncryptStore(ctx)
			require.NoError(t, err)
			assert.True(t, created)

			raw, err := os.ReadFile(env.storePath)
			require.NoError(t, err)
			assert.NotContains(t, string(raw), "abc123")

			encrypted, err := env.vault.IsEncrypted()
			require.NoError(t, err)
			assert.True(t, encrypted)

			got, err := env.vault.Retrieve(ctx)
			require.NoError(t, err)
			assert.Equal(t, list, got)
		})
	}
}

// TestVaultService_KeyReused verifies that a second encryption keeps the key
// file and reports no new key.
func TestVaultService_KeyReused(t *testing.T) {
	env := newTestEnv(t, crypto.SchemeAESGCM)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(env.storePath, []byte("one"), 0o600))
	_, err := env.vault.EncryptStore(ctx)
	require.NoError(t, err)
	key1, err := os.ReadFile(env.keyPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(env.storePath, []byte("two"), 0o600))
	created, err := env.vault.EncryptStore(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	key2, err := os.ReadFile(env.keyPath)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	got, err := env.vault.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PasswordList{"two"}, got)
}

// ── negative paths ────────────────────────────────────────────────────────────

// TestVaultService_DoubleEncryptNotRecoverable verifies that encrypting twice
// is not silently safe: a single decrypt does not give the list back.
func TestVaultService_DoubleEncryptNotRecoverable(t *testing.T) {
	for _, scheme := range schemes {
		t.Run(scheme, func(t *testing.T) {
			env := newTestEnv(t, scheme)
			ctx := context.Background()
			list := models.PasswordList{"abc123"}

			_, err := env.storeService().Save(ctx, list, false)
			require.NoError(t, err)
			_, err = env.vault.EncryptStore(ctx)
			require.NoError(t, err)
			_, err = env.vault.EncryptStore(ctx)
			require.NoError(t, err)

			got, err := env.vault.Retrieve(ctx)
			require.NoError(t, err)
			assert.NotEqual(t, list, got)
		})
	}
}

// TestVaultService_WrongKeyFails verifies that a replaced key is a hard
// decrypt error with no partial result.
func TestVaultService_WrongKeyFails(t *testing.T) {
	env := newTestEnv(t, crypto.SchemeAESGCM)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(env.storePath, []byte("secret"), 0o600))
	_, err := env.vault.EncryptStore(ctx)
	require.NoError(t, err)

	other, err := crypto.NewAESGCMCipher().GenerateKey()
	require.NoError(t, err)
	defer other.Destroy()
	require.NoError(t, os.WriteFile(env.keyPath, other.Bytes(), 0o600))

	got, err := env.vault.Retrieve(ctx)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
	assert.ErrorIs(t, err, ErrRetrievingPasswords)
}

// TestVaultService_PlaintextWithKeyFails verifies that a plaintext store next
// to a key is treated as encrypted and fails to decrypt.
func TestVaultService_PlaintextWithKeyFails(t *testing.T) {
	env := newTestEnv(t, crypto.SchemeAESGCM)
	key, err := crypto.NewAESGCMCipher().GenerateKey()
	require.NoError(t, err)
	require.NoError(t, env.keys.Create(key))
	key.Destroy()
	require.NoError(t, os.WriteFile(env.storePath, []byte("abc123\ndef456"), 0o600))

	_, err = env.vault.Retrieve(context.Background())
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}

func TestVaultService_MissingStore(t *testing.T) {
	env := newTestEnv(t, crypto.SchemeAESGCM)
	ctx := context.Background()

	_, err := env.vault.Retrieve(ctx)
	assert.ErrorIs(t, err, store.ErrStoreNotFound)

	created, err := env.vault.EncryptStore(ctx)
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
	assert.False(t, created)

	_, statErr := os.Stat(env.keyPath)
	assert.True(t, os.IsNotExist(statErr), "no key must be created without a store")
}

func TestVaultService_RewriteRequiresKey(t *testing.T) {
	env := newTestEnv(t, crypto.SchemeAESGCM)
	err := env.vault.Rewrite(context.Background(), models.PasswordList{"x"})
	assert.ErrorIs(t, err, ErrStoreNotEncrypted)
}

func TestVaultService_EmptyStore(t *testing.T) {
	env := newTestEnv(t, crypto.SchemeAESGCM)
	require.NoError(t, os.WriteFile(env.storePath, nil, 0o600))

	got, err := env.vault.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── mocked collaborators ──────────────────────────────────────────────────────

// TestVaultService_EncryptFailureKeepsStore verifies that a cipher failure
// never overwrites the store.
func TestVaultService_EncryptFailureKeepsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockPasswordStorage(ctrl)
	keys := mock.NewMockKeyStore(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewVaultService(storage, keys, cipher)

	key := memguard.NewBufferFromBytes([]byte("key"))
	boom := errors.New("boom")

	gomock.InOrder(
		storage.EXPECT().Exists().Return(true, nil),
		keys.EXPECT().Exists().Return(true, nil),
		keys.EXPECT().Load().Return(key, nil),
		storage.EXPECT().Read().Return([]byte("abc"), nil),
		cipher.EXPECT().Encrypt([]byte("abc"), key).Return(nil, boom),
	)
	storage.EXPECT().Overwrite(gomock.Any()).Times(0)

	created, err := svc.EncryptStore(context.Background())
	assert.False(t, created)
	assert.ErrorIs(t, err, ErrEncryptingStore)
	assert.ErrorIs(t, err, boom)
	assert.False(t, key.IsAlive(), "key buffer must be destroyed")
}

// TestVaultService_GenerateKeyFailure verifies that no key file is created
// when key generation fails.
func TestVaultService_GenerateKeyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockPasswordStorage(ctrl)
	keys := mock.NewMockKeyStore(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewVaultService(storage, keys, cipher)

	storage.EXPECT().Exists().Return(true, nil)
	keys.EXPECT().Exists().Return(false, nil)
	cipher.EXPECT().GenerateKey().Return(nil, errors.New("entropy exhausted"))
	keys.EXPECT().Create(gomock.Any()).Times(0)

	_, err := svc.EncryptStore(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestVaultService_IsEncryptedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := mock.NewMockKeyStore(ctrl)
	svc := NewVaultService(mock.NewMockPasswordStorage(ctrl), keys, mock.NewMockCipher(ctrl))

	keys.EXPECT().Exists().Return(false, errors.New("permission denied"))

	_, err := svc.IsEncrypted()
	assert.ErrorContains(t, err, "permission denied")
}

// ── failed encryption ─────────────────────────────────────────────────────────

// failingOverwrite wraps a real storage and fails every Overwrite.
type failingOverwrite struct {
	store.PasswordStorage
	err error
}

func (f failingOverwrite) Overwrite([]byte) error {
	return f.err
}

// TestVaultService_FailedWriteLeavesNoKey verifies that when the encrypted
// blob cannot be written, the new key file is removed and the store stays a
// readable plaintext list.
func TestVaultService_FailedWriteLeavesNoKey(t *testing.T) {
	for _, scheme := range schemes {
		t.Run(scheme, func(t *testing.T) {
			env := newTestEnv(t, scheme)
			ctx := context.Background()
			require.NoError(t, os.WriteFile(env.storePath, []byte("abc123\ndef456"), 0o600))

			cipher, err := crypto.NewCipher(scheme)
			require.NoError(t, err)
			diskFull := errors.New("disk full")
			svc := NewVaultService(failingOverwrite{PasswordStorage: env.storage, err: diskFull}, env.keys, cipher)

			created, err := svc.EncryptStore(ctx)
			assert.False(t, created)
			assert.ErrorIs(t, err, ErrEncryptingStore)
			assert.ErrorIs(t, err, diskFull)

			encrypted, err := env.vault.IsEncrypted()
			require.NoError(t, err)
			assert.False(t, encrypted, "key file must not outlive a failed encryption")

			got, err := env.vault.Retrieve(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.PasswordList{"abc123", "def456"}, got)

			// a later attempt with a working storage still succeeds
			created, err = env.vault.EncryptStore(ctx)
			require.NoError(t, err)
			assert.True(t, created)
		})
	}
}

// TestVaultService_NewKeyWrittenAfterEncrypt verifies the order for a fresh
// key: encrypt in memory, then persist the key, then the blob.
func TestVaultService_NewKeyWrittenAfterEncrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockPasswordStorage(ctrl)
	keys := mock.NewMockKeyStore(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewVaultService(storage, keys, cipher)

	key := memguard.NewBufferFromBytes([]byte("key"))

	gomock.InOrder(
		storage.EXPECT().Exists().Return(true, nil),
		keys.EXPECT().Exists().Return(false, nil),
		cipher.EXPECT().GenerateKey().Return(key, nil),
		storage.EXPECT().Read().Return([]byte("abc"), nil),
		cipher.EXPECT().Encrypt([]byte("abc"), key).Return([]byte("blob"), nil),
		keys.EXPECT().Create(key).Return(nil),
		storage.EXPECT().Overwrite([]byte("blob")).Return(nil),
	)
	keys.EXPECT().Path().Return("key.txt").AnyTimes()
	cipher.EXPECT().Scheme().Return("aes-gcm").AnyTimes()

	created, err := svc.EncryptStore(context.Background())
	require.NoError(t, err)
	assert.True(t, created)
}

// TestVaultService_EncryptFailureCreatesNoKey verifies that a cipher failure
// with a fresh key touches neither the key file nor the store.
func TestVaultService_EncryptFailureCreatesNoKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockPasswordStorage(ctrl)
	keys := mock.NewMockKeyStore(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewVaultService(storage, keys, cipher)

	boom := errors.New("boom")
	storage.EXPECT().Exists().Return(true, nil)
	keys.EXPECT().Exists().Return(false, nil)
	cipher.EXPECT().GenerateKey().Return(memguard.NewBufferFromBytes([]byte("key")), nil)
	storage.EXPECT().Read().Return([]byte("abc"), nil)
	cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(nil, boom)
	keys.EXPECT().Create(gomock.Any()).Times(0)
	storage.EXPECT().Overwrite(gomock.Any()).Times(0)

	_, err := svc.EncryptStore(context.Background())
	assert.ErrorIs(t, err, boom)
}

// TestVaultService_ExistingKeyKeptOnWriteFailure verifies that a key that
// was already there is never removed.
func TestVaultService_ExistingKeyKeptOnWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockPasswordStorage(ctrl)
	keys := mock.NewMockKeyStore(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewVaultService(storage, keys, cipher)

	diskFull := errors.New("disk full")
	storage.EXPECT().Exists().Return(true, nil)
	keys.EXPECT().Exists().Return(true, nil)
	keys.EXPECT().Load().Return(memguard.NewBufferFromBytes([]byte("key")), nil)
	storage.EXPECT().Read().Return([]byte("abc"), nil)
	cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return([]byte("blob"), nil)
	storage.EXPECT().Overwrite([]byte("blob")).Return(diskFull)
	keys.EXPECT().Remove().Times(0)

	_, err := svc.EncryptStore(context.Background())
	assert.ErrorIs(t, err, diskFull)
}
