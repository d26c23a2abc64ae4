package crypto

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"
	"github.com/awnumar/memguard"
)

// ageCipher encrypts the store to an X25519 age identity. The key file
// holds the AGE-SECRET-KEY-1... identity string and the blob is an
// ASCII-armored age file.
type ageCipher struct{}

// NewAgeCipher returns the age [Cipher].
func NewAgeCipher() Cipher {
	return &ageCipher{}
}

func (c *ageCipher) Scheme() string {
	return SchemeAge
}

func (c *ageCipher) GenerateKey() (*memguard.LockedBuffer, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}
	return memguard.NewBufferFromBytes([]byte(identity.String())), nil
}

func (c *ageCipher) Encrypt(plaintext []byte, key *memguard.LockedBuffer) ([]byte, error) {
	identity, err := parseIdentity(key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	aw := armor.NewWriter(&buf)
	w, err := age.Encrypt(aw, identity.Recipient())
	if err != nil {
		return nil, fmt.Errorf("failed to create encrypted writer: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("failed to write encrypted data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close encrypted writer: %w", err)
	}
	if err := aw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close armor writer: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c *ageCipher) Decrypt(blob []byte, key *memguard.LockedBuffer) ([]byte, error) {
	identity, err := parseIdentity(key)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(blob)
	armored := make([]byte, 0, len(trimmed)+1)
	armored = append(append(armored, trimmed...), '\n')

	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(armored)), identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}

func parseIdentity(key *memguard.LockedBuffer) (*age.X25519Identity, error) {
	if key == nil || !key.IsAlive() {
		return nil, ErrInvalidKey
	}
	identity, err := age.ParseX25519Identity(strings.TrimSpace(string(key.Bytes())))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return identity, nil
}
