// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

// Supported scheme names.
const (
	SchemeAESGCM            = "aes-gcm"
	SchemeXChaCha20Poly1305 = "xchacha20poly1305"
	SchemeAge               = "age"
)

// symmetricKeySize is the raw key length of the AEAD schemes (256 bits).
const symmetricKeySize = 32

// NewCipher returns the [Cipher] registered under scheme.
func NewCipher(scheme string) (Cipher, error) {
	switch scheme {
	case SchemeAESGCM:
		return NewAESGCMCipher(), nil
	case SchemeXChaCha20Poly1305:
		return NewXChaChaCipher(), nil
	case SchemeAge:
		return NewAgeCipher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// generateSymmetricKey reads 32 bytes from the OS CSPRNG and returns them
// base64-encoded, which is the key-file format of the AEAD schemes.
func generateSymmetricKey() (*memguard.LockedBuffer, error) {
	raw := make([]byte, symmetricKeySize)
	defer memguard.WipeBytes(raw)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(encoded, raw)
	return memguard.NewBufferFromBytes(encoded), nil
}

// decodeSymmetricKey returns the raw key bytes held base64-encoded in key.
// The caller wipes the result.
func decodeSymmetricKey(key *memguard.LockedBuffer) ([]byte, error) {
	if key == nil || !key.IsAlive() {
		return nil, ErrInvalidKey
	}
	text := bytes.TrimSpace(key.Bytes())
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(raw, text)
	if err != nil || n != symmetricKeySize {
		memguard.WipeBytes(raw)
		return nil, fmt.Errorf("%w: expected base64 of %d bytes", ErrInvalidKey, symmetricKeySize)
	}
	return raw[:n], nil
}
