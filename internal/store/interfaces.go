package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PasswordStorage owns the on-disk password store artifact. Content is
// handled as raw bytes: plaintext lists and encrypted blobs go through the
// same methods.
type PasswordStorage interface {
	// Exists reports whether the store file is present.
	Exists() (bool, error)

	// Read returns the whole store content. A missing file returns
	// [ErrStoreNotFound].
	Read() ([]byte, error)

	// Overwrite replaces the store content. The previous content is kept
	// intact if the write fails.
	Overwrite(data []byte) error

	// Append writes data after the current content, creating the file if
	// needed.
	Append(data []byte) error

	// Path returns the store location.
	Path() string
}
