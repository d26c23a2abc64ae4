package crypto

import "github.com/awnumar/memguard"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher encrypts and decrypts the whole password store with a symmetric key.
//
// Key material is the exact content of the key file, kept in a
// [memguard.LockedBuffer] while in memory. The encrypted blob is printable
// text so that the store file stays a text file.
type Cipher interface {
	// Scheme returns the configuration name of the cipher.
	Scheme() string

	// GenerateKey creates fresh key material in the scheme's key-file format.
	GenerateKey() (*memguard.LockedBuffer, error)

	// Encrypt seals plaintext under key.
	Encrypt(plaintext []byte, key *memguard.LockedBuffer) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Any authentication failure,
	// including a wrong key, is reported as [ErrDecrypt]; no partial
	// plaintext is ever returned.
	Decrypt(blob []byte, key *memguard.LockedBuffer) ([]byte, error)
}

// KeyStore owns the key artifact that sits next to the password store. Its
// presence marks the store as encrypted.
type KeyStore interface {
	// Exists reports whether the key file is present.
	Exists() (bool, error)

	// Create writes key to a new file. An existing key is never replaced;
	// [ErrKeyExists] is returned instead.
	Create(key *memguard.LockedBuffer) error

	// Load reads the key into a locked buffer. The caller destroys it.
	Load() (*memguard.LockedBuffer, error)

	// Remove deletes the key file. A missing file is not an error.
	Remove() error

	// Path returns the key file location.
	Path() string
}
