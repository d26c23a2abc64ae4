// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CharClass identifies one of the fixed alphabets a password character can be
// drawn from.
type CharClass int

const (
	// Lowercase is the ASCII lowercase letters a-z. Always enabled in policy mode.
	Lowercase CharClass = iota

	// Uppercase is the ASCII uppercase letters A-Z.
	Uppercase

	// Digit is the ASCII digits 0-9.
	Digit

	// Special is the 32 printable ASCII punctuation characters.
	Special
)

// String returns the human-readable name of the class.
func (c CharClass) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// GenerationPolicy describes policy-mode generation: which character classes
// are enabled, how long each password is and how many passwords to produce.
//
// Lowercase letters are always enabled; Upper, Digits and Special toggle the
// remaining classes independently.
type GenerationPolicy struct {
	// Upper enables the uppercase class.
	Upper bool

	// Digits enables the digit class.
	Digits bool

	// Special enables the punctuation class.
	Special bool

	// Length is the number of characters in every password. Must be >= 1.
	Length int

	// Count is the number of passwords to produce. Must be >= 1.
	Count int
}

// Classes returns the enabled classes in a stable order, lowercase first.
func (p GenerationPolicy) Classes() []CharClass {
	classes := []CharClass{Lowercase}
	if p.Upper {
		classes = append(classes, Uppercase)
	}
	if p.Digits {
		classes = append(classes, Digit)
	}
	if p.Special {
		classes = append(classes, Special)
	}
	return classes
}

// GenerationTemplate is a user-authored sequence of classes, one per output
// position. Its length is the length of every password generated from it.
type GenerationTemplate []CharClass

// RunOptions is the parsed command-line surface handed to the client
// application by value.
type RunOptions struct {
	// CharCount is the password length in policy mode.
	CharCount int

	// PassCount is the number of passwords to generate.
	PassCount int

	// Upper, Number and Special enable the corresponding character classes.
	Upper   bool
	Number  bool
	Special bool

	// Copy copies generated or viewed passwords to the clipboard.
	Copy bool

	// Template switches to template mode; the template is requested
	// interactively.
	Template bool

	// Force skips the overwrite confirmation when saving.
	Force bool

	// View prints the stored passwords instead of generating new ones.
	View bool
}

// Policy builds the [GenerationPolicy] described by the options.
func (o RunOptions) Policy() GenerationPolicy {
	return GenerationPolicy{
		Upper:   o.Upper,
		Digits:  o.Number,
		Special: o.Special,
		Length:  o.CharCount,
		Count:   o.PassCount,
	}
}
