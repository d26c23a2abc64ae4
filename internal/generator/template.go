package generator

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pass-gen/models"
)

// Template tokens, one per generated character.
const (
	TokenLowercase = 'l'
	TokenUppercase = 'u'
	TokenDigit     = 'n'
	TokenSpecial   = 's'
)

var tokenClasses = map[rune]models.CharClass{
	TokenLowercase: models.Lowercase,
	TokenUppercase: models.Uppercase,
	TokenDigit:     models.Digit,
	TokenSpecial:   models.Special,
}

// ParseTemplate turns a user-typed expression into a [models.GenerationTemplate].
//
// Matching is case-insensitive and whitespace is ignored. Any other character
// makes the whole expression invalid and is reported in an
// [*InvalidTemplateError]. An expression with no tokens returns
// [ErrEmptyTemplate] together with an empty, non-nil template so callers may
// still accept it.
func ParseTemplate(expr string) (models.GenerationTemplate, error) {
	tmpl := make(models.GenerationTemplate, 0, len(expr))
	var invalid []string
	seen := make(map[rune]struct{})

	for _, r := range strings.ToLower(expr) {
		if unicode.IsSpace(r) {
			continue
		}
		class, ok := tokenClasses[r]
		if !ok {
			if _, dup := seen[r]; !dup {
				seen[r] = struct{}{}
				invalid = append(invalid, string(r))
			}
			continue
		}
		tmpl = append(tmpl, class)
	}

	if len(invalid) > 0 {
		return nil, &InvalidTemplateError{Tokens: invalid}
	}
	if len(tmpl) == 0 {
		return tmpl, ErrEmptyTemplate
	}
	return tmpl, nil
}

// TemplateHelp is shown before the first template prompt.
const TemplateHelp = `You've selected to create an expression to use for password generation.
A password expression is created by using a sequence of characters in a
designated order. The characters to use are below:

 - [L] lowercase letter
 - [U] uppercase letter
 - [N] digit
 - [S] special character
`
