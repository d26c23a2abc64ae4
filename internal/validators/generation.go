package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldLength targets the per-password character count.
	FieldLength = "length"

	// FieldCount targets the number of passwords to generate.
	FieldCount = "count"

	// FieldClasses targets the character classes of a template.
	FieldClasses = "classes"
)

var knownClasses = []models.CharClass{
	models.Lowercase,
	models.Uppercase,
	models.Digit,
	models.Special,
}

// GenerationValidator implements [Validator] for the generation inputs:
// [models.GenerationPolicy], [models.GenerationTemplate] and
// [models.RunOptions]. Value and pointer forms are both accepted.
type GenerationValidator struct {
}

// NewGenerationValidator constructs a GenerationValidator and returns it as
// the [Validator] interface.
func NewGenerationValidator() Validator {
	return &GenerationValidator{}
}

func (v *GenerationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GenerationPolicy:
		return v.validatePolicy(ctx, value, fields...)
	case *models.GenerationPolicy:
		return v.validatePolicy(ctx, *value, fields...)

	case models.GenerationTemplate:
		return v.validateTemplate(ctx, value, fields...)
	case *models.GenerationTemplate:
		return v.validateTemplate(ctx, *value, fields...)

	case models.RunOptions:
		return v.validateRunOptions(ctx, value, fields...)
	case *models.RunOptions:
		return v.validateRunOptions(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isKnownClass(c models.CharClass) bool {
	for _, k := range knownClasses {
		if c == k {
			return true
		}
	}
	return false
}

func (v *GenerationValidator) validatePolicy(_ context.Context, policy models.GenerationPolicy, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldCount}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if policy.Length < 1 {
				return ErrInvalidLength
			}
		case FieldCount:
			if policy.Count < 1 {
				return ErrInvalidCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerationValidator) validateTemplate(_ context.Context, tmpl models.GenerationTemplate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClasses}
	}

	for _, f := range fields {
		switch f {
		case FieldClasses:
			for i, c := range tmpl {
				if !isKnownClass(c) {
					return fmt.Errorf("validation error at position %d: %w", i, ErrInvalidCharClass)
				}
			}
		case FieldLength:
			if len(tmpl) == 0 {
				return ErrInvalidLength
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerationValidator) validateRunOptions(ctx context.Context, opts models.RunOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldCount}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			// view skips generation; a template sets its own length
			if opts.View || opts.Template {
				continue
			}
			if err := v.validatePolicy(ctx, opts.Policy(), FieldLength); err != nil {
				return err
			}
		case FieldCount:
			if opts.View {
				continue
			}
			if err := v.validatePolicy(ctx, opts.Policy(), FieldCount); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
