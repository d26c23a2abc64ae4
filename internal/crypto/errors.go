package crypto

import "errors"

var (
	// ErrDecrypt is returned when a blob cannot be authenticated or decoded
	// with the given key.
	ErrDecrypt = errors.New("decryption failed")
	// ErrInvalidKey is returned when key material has the wrong format.
	ErrInvalidKey = errors.New("invalid encryption key")
	// ErrUnknownScheme is returned by [NewCipher] for an unsupported scheme.
	ErrUnknownScheme = errors.New("unknown cipher scheme")
	// ErrCiphertextTooShort is returned when a blob is shorter than its nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrKeyExists is returned when creating a key file that already exists.
	ErrKeyExists = errors.New("key file already exists")
	// ErrKeyNotFound is returned when loading a key file that does not exist.
	ErrKeyNotFound = errors.New("key file not found")
)
