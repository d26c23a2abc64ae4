package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/awnumar/memguard"
)

const keyFileMode = 0o600

type keyFile struct {
	path string
}

// NewKeyFile returns a [KeyStore] for the key file at path.
func NewKeyFile(path string) KeyStore {
	return &keyFile{path: path}
}

func (k *keyFile) Path() string {
	return k.path
}

func (k *keyFile) Exists() (bool, error) {
	_, err := os.Stat(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat key file: %w", err)
	}
	return true, nil
}

func (k *keyFile) Create(key *memguard.LockedBuffer) error {
	if key == nil || !key.IsAlive() {
		return ErrInvalidKey
	}

	f, err := os.OpenFile(k.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, keyFileMode)
	if errors.Is(err, fs.ErrExist) {
		return ErrKeyExists
	}
	if err != nil {
		return fmt.Errorf("create key file: %w", err)
	}

	if _, err := f.Write(key.Bytes()); err != nil {
		_ = f.Close()
		_ = os.Remove(k.path)
		return fmt.Errorf("write key file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(k.path)
		return fmt.Errorf("close key file: %w", err)
	}
	return nil
}

func (k *keyFile) Remove() error {
	if err := os.Remove(k.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove key file: %w", err)
	}
	return nil
}

func (k *keyFile) Load() (*memguard.LockedBuffer, error) {
	raw, err := os.ReadFile(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	defer memguard.WipeBytes(raw)

	material := bytes.TrimSpace(raw)
	if len(material) == 0 {
		return nil, fmt.Errorf("%w: key file is empty", ErrInvalidKey)
	}
	return memguard.NewBufferFromBytes(material), nil
}
