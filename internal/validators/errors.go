package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLength    = errors.New("number of characters must be a positive integer")
	ErrInvalidCount     = errors.New("number of passwords must be a positive integer")
	ErrInvalidCharClass = errors.New("unknown character class")
)
