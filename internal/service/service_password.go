package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/prompt"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
)

type passwordService struct {
	generator          generator.Generator
	validator          validators.Validator
	prompter           prompt.Prompter
	clipboard          adapter.Clipboard
	out                io.Writer
	allowEmptyTemplate bool
}

// NewPasswordService builds a [PasswordService]. allowEmptyTemplate accepts
// an empty template instead of asking again.
func NewPasswordService(
	gen generator.Generator,
	validator validators.Validator,
	prompter prompt.Prompter,
	clipboard adapter.Clipboard,
	out io.Writer,
	allowEmptyTemplate bool,
) PasswordService {
	return &passwordService{
		generator:          gen,
		validator:          validator,
		prompter:           prompter,
		clipboard:          clipboard,
		out:                out,
		allowEmptyTemplate: allowEmptyTemplate,
	}
}

func (s *passwordService) ResolvePlan(ctx context.Context, opts models.RunOptions) (generator.Plan, error) {
	if err := s.validator.Validate(ctx, opts); err != nil {
		return generator.Plan{}, fmt.Errorf("%w: %w", ErrGeneratingPasswords, err)
	}

	if !opts.Template {
		return generator.NewPolicyPlan(opts.Policy()), nil
	}

	tmpl, err := s.PromptTemplate(ctx)
	if err != nil {
		return generator.Plan{}, err
	}
	return generator.NewTemplatePlan(tmpl), nil
}

func (s *passwordService) PromptTemplate(ctx context.Context) (models.GenerationTemplate, error) {
	log := logger.FromContext(ctx)

	if _, err := fmt.Fprint(s.out, generator.TemplateHelp+"\n"); err != nil {
		return nil, fmt.Errorf("error writing template help: %w", err)
	}

	question := app.PromptTemplate
	for {
		answer, err := s.prompter.Ask(ctx, question)
		if err != nil {
			return nil, err
		}

		tmpl, err := generator.ParseTemplate(answer)
		var invalid *generator.InvalidTemplateError
		switch {
		case err == nil:
			if err := s.validator.Validate(ctx, tmpl); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrGeneratingPasswords, err)
			}
			log.Debug().Int("length", len(tmpl)).Msg("template accepted")
			return tmpl, nil
		case errors.Is(err, generator.ErrEmptyTemplate):
			if s.allowEmptyTemplate {
				return tmpl, nil
			}
			fmt.Fprintf(s.out, "\n%s\n\n", app.MsgEmptyTemplate)
		case errors.As(err, &invalid):
			fmt.Fprintf(s.out, "\n%s\n\n - %s\n\n", app.MsgInvalidTemplate, strings.Join(invalid.Tokens, "\n - "))
		default:
			return nil, err
		}

		log.Debug().Err(err).Msg("template rejected")
		question = app.PromptTemplateRetry
	}
}

func (s *passwordService) Generate(_ context.Context, plan generator.Plan, count int) (models.PasswordList, error) {
	list, err := s.generator.Generate(plan, count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratingPasswords, err)
	}
	return list, nil
}

func (s *passwordService) Copy(ctx context.Context, list models.PasswordList) error {
	log := logger.FromContext(ctx)

	if err := s.clipboard.WriteAll(list.Join()); err != nil {
		log.Warn().Err(err).Msg("clipboard copy failed")
		return err
	}
	log.Debug().Int("count", len(list)).Msg("passwords copied")
	return nil
}
