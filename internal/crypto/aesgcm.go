package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

// aesGCMCipher seals the store with AES-256-GCM. The blob is the Base64
// (standard encoding) string of nonce (12 bytes) ‖ ciphertext.
type aesGCMCipher struct{}

// NewAESGCMCipher returns the default [Cipher].
func NewAESGCMCipher() Cipher {
	return &aesGCMCipher{}
}

func (c *aesGCMCipher) Scheme() string {
	return SchemeAESGCM
}

func (c *aesGCMCipher) GenerateKey() (*memguard.LockedBuffer, error) {
	return generateSymmetricKey()
}

func (c *aesGCMCipher) Encrypt(plaintext []byte, key *memguard.LockedBuffer) ([]byte, error) {
	gcm, err := c.newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(blob)))
	base64.StdEncoding.Encode(out, blob)
	return out, nil
}

func (c *aesGCMCipher) Decrypt(blob []byte, key *memguard.LockedBuffer) ([]byte, error) {
	gcm, err := c.newGCM(key)
	if err != nil {
		return nil, err
	}

	raw, err := decodeBlob(blob)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, ErrCiphertextTooShort)
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}

func (c *aesGCMCipher) newGCM(key *memguard.LockedBuffer) (cipher.AEAD, error) {
	raw, err := decodeSymmetricKey(key)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// decodeBlob strips surrounding whitespace and Base64-decodes an AEAD blob.
func decodeBlob(blob []byte) ([]byte, error) {
	text := bytes.TrimSpace(blob)
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(raw, text)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecrypt, err)
	}
	return raw[:n], nil
}
