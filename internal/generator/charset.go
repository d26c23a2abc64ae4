package generator

import "github.com/MKhiriev/go-pass-gen/models"

// Alphabets for every character class.
const (
	LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	UppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitAlphabet     = "0123456789"
	SpecialAlphabet   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Alphabet returns the characters of class c, or an empty string for an
// unknown class.
func Alphabet(c models.CharClass) string {
	switch c {
	case models.Lowercase:
		return LowercaseAlphabet
	case models.Uppercase:
		return UppercaseAlphabet
	case models.Digit:
		return DigitAlphabet
	case models.Special:
		return SpecialAlphabet
	default:
		return ""
	}
}
