package cli

import "errors"

// ErrInvalidArgument is returned when a positional argument is not a number.
var ErrInvalidArgument = errors.New("invalid argument")
