package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/chacha20poly1305"
)

// xChaChaCipher seals the store with XChaCha20-Poly1305. Key and blob use
// the same text formats as the AES-GCM scheme; the nonce is 24 bytes.
type xChaChaCipher struct{}

// NewXChaChaCipher returns the XChaCha20-Poly1305 [Cipher].
func NewXChaChaCipher() Cipher {
	return &xChaChaCipher{}
}

func (c *xChaChaCipher) Scheme() string {
	return SchemeXChaCha20Poly1305
}

func (c *xChaChaCipher) GenerateKey() (*memguard.LockedBuffer, error) {
	return generateSymmetricKey()
}

func (c *xChaChaCipher) Encrypt(plaintext []byte, key *memguard.LockedBuffer) ([]byte, error) {
	raw, err := decodeSymmetricKey(key)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(raw)

	aead, err := chacha20poly1305.NewX(raw)
	if err != nil {
		return nil, fmt.Errorf("create xchacha20poly1305: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := aead.Seal(nonce, nonce, plaintext, nil)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(blob)))
	base64.StdEncoding.Encode(out, blob)
	return out, nil
}

func (c *xChaChaCipher) Decrypt(blob []byte, key *memguard.LockedBuffer) ([]byte, error) {
	raw, err := decodeSymmetricKey(key)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(raw)

	aead, err := chacha20poly1305.NewX(raw)
	if err != nil {
		return nil, fmt.Errorf("create xchacha20poly1305: %w", err)
	}

	data, err := decodeBlob(blob)
	if err != nil {
		return nil, err
	}
	if len(data) < aead.NonceSize() {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, ErrCiphertextTooShort)
	}
	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}
