package prompt

import "errors"

var (
	// ErrNoInput is returned when the answer source is exhausted (for
	// example, standard input was closed) before a valid answer was read.
	ErrNoInput = errors.New("no more input")
	// ErrNoChoices is returned when Choose is called without choices.
	ErrNoChoices = errors.New("no choices offered")
)
