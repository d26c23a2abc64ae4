package generator

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCount is returned when fewer than one password is requested.
	ErrInvalidCount = errors.New("password count must be at least 1")
	// ErrInvalidLength is returned for a policy plan shorter than one character.
	ErrInvalidLength = errors.New("password length must be at least 1")
	// ErrInvalidTemplate is the sentinel matched by every [*InvalidTemplateError].
	ErrInvalidTemplate = errors.New("invalid template")
	// ErrEmptyTemplate is returned when a template has no tokens left after
	// whitespace is stripped.
	ErrEmptyTemplate = errors.New("template is empty")
)

// InvalidTemplateError lists the template characters that are not one of the
// l, u, n, s tokens. Tokens are unique and kept in first-seen order.
type InvalidTemplateError struct {
	Tokens []string
}

func (e *InvalidTemplateError) Error() string {
	return "invalid template tokens: " + strings.Join(e.Tokens, ", ")
}

func (e *InvalidTemplateError) Unwrap() error {
	return ErrInvalidTemplate
}
