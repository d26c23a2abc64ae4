// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
)

const storeFileMode = 0o600

// passwordFileStorage is the flat-file implementation of [PasswordStorage].
type passwordFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewPasswordFileStorage returns a [PasswordStorage] backed by the file at
// path. The file is not touched until the first call.
func NewPasswordFileStorage(path string, log *logger.Logger) PasswordStorage {
	return &passwordFileStorage{
		path:   path,
		logger: log,
	}
}

func (s *passwordFileStorage) Path() string {
	return s.path
}

func (s *passwordFileStorage) Exists() (bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadStore, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: %s is a directory", ErrReadStore, s.path)
	}
	return true, nil
}

func (s *passwordFileStorage) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadStore, err)
	}

	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("store read")
	return data, nil
}

// Overwrite writes data to a temporary file in the same directory and
// renames it over the store, so readers never observe a partial file.
func (s *passwordFileStorage) Overwrite(data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(storeFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}

	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("store overwritten")
	return nil
}

func (s *passwordFileStorage) Append(data []byte) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, storeFileMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteStore, err)
	}

	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("store appended")
	return nil
}
