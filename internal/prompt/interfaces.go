package prompt

import "context"

// AnswerSource supplies raw answer lines.
type AnswerSource interface {
	// ReadLine returns the next line without its line terminator. It
	// returns [ErrNoInput] once no further lines are available.
	ReadLine(ctx context.Context) (string, error)
}

// Prompter asks questions and blocks until an acceptable answer arrives.
type Prompter interface {
	// Choose prints question and returns the key of the chosen [Choice]
	// in lower case. Invalid answers re-prompt without limit.
	Choose(ctx context.Context, question string, choices ...Choice) (string, error)

	// Confirm asks a [Y]/[N] question and reports whether the answer was yes.
	Confirm(ctx context.Context, question string) (bool, error)

	// Ask prints question and returns the next answer line as typed.
	Ask(ctx context.Context, question string) (string, error)
}
