// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/models"
)

type vaultService struct {
	storage store.PasswordStorage
	keys    crypto.KeyStore
	cipher  crypto.Cipher
}

// NewVaultService builds a [VaultService] sealing storage with cipher under
// the key held by keys. Log entries go to the logger attached to the call
// context.
func NewVaultService(storage store.PasswordStorage, keys crypto.KeyStore, cipher crypto.Cipher) VaultService {
	return &vaultService{
		storage: storage,
		keys:    keys,
		cipher:  cipher,
	}
}

// IsEncrypted is the only place that decides whether the store holds a
// blob: the key file next to it is present.
func (s *vaultService) IsEncrypted() (bool, error) {
	ok, err := s.keys.Exists()
	if err != nil {
		return false, fmt.Errorf("error checking key file: %w", err)
	}
	return ok, nil
}

// EncryptStore does not check whether the store is already encrypted; a
// second call seals the blob again and a single decrypt no longer yields
// the list.
//
// A new key reaches the disk only after the blob is ready, and it is removed
// again if the blob cannot be written, so a key file never sits next to a
// plaintext store.
func (s *vaultService) EncryptStore(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := s.storage.Exists()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}
	if !exists {
		return false, store.ErrStoreNotFound
	}

	key, isNew, err := s.loadOrGenerateKey()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}
	defer key.Destroy()

	plaintext, err := s.storage.Read()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}
	defer memguard.WipeBytes(plaintext)

	blob, err := s.cipher.Encrypt(plaintext, key)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}

	if isNew {
		if err := s.keys.Create(key); err != nil {
			return false, fmt.Errorf("%w: %w", ErrEncryptingStore, err)
		}
		log.Info().Str("path", s.keys.Path()).Msg("key file created")
	}

	if err := s.storage.Overwrite(blob); err != nil {
		if isNew {
			if rmErr := s.keys.Remove(); rmErr != nil {
				log.Error().Err(rmErr).Str("path", s.keys.Path()).Msg("removing key of failed encryption")
			}
		}
		return false, fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}

	log.Info().
		Str("scheme", s.cipher.Scheme()).
		Bool("key_created", isNew).
		Msg("password store encrypted")
	return isNew, nil
}

func (s *vaultService) Rewrite(ctx context.Context, list models.PasswordList) error {
	encrypted, err := s.IsEncrypted()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}
	if !encrypted {
		return ErrStoreNotEncrypted
	}

	key, err := s.keys.Load()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}
	defer key.Destroy()

	plaintext := []byte(list.Join())
	defer memguard.WipeBytes(plaintext)

	blob, err := s.cipher.Encrypt(plaintext, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}
	if err := s.storage.Overwrite(blob); err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptingStore, err)
	}

	logger.FromContext(ctx).Debug().Int("count", len(list)).Msg("encrypted store rewritten")
	return nil
}

func (s *vaultService) Retrieve(ctx context.Context) (models.PasswordList, error) {
	data, err := s.storage.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRetrievingPasswords, err)
	}

	encrypted, err := s.IsEncrypted()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRetrievingPasswords, err)
	}
	if !encrypted {
		return models.ParsePasswordList(string(data)), nil
	}

	key, err := s.keys.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRetrievingPasswords, err)
	}
	defer key.Destroy()

	plaintext, err := s.cipher.Decrypt(data, key)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("scheme", s.cipher.Scheme()).Msg("decrypt failed")
		return nil, fmt.Errorf("%w: %w", ErrRetrievingPasswords, err)
	}
	defer memguard.WipeBytes(plaintext)

	return models.ParsePasswordList(string(plaintext)), nil
}

// loadOrGenerateKey returns the existing key, or fresh key material that is
// not yet on disk (isNew).
func (s *vaultService) loadOrGenerateKey() (key *memguard.LockedBuffer, isNew bool, err error) {
	exists, err := s.keys.Exists()
	if err != nil {
		return nil, false, err
	}
	if exists {
		key, err = s.keys.Load()
		return key, false, err
	}

	key, err = s.cipher.GenerateKey()
	if err != nil {
		return nil, false, err
	}
	return key, true, nil
}
