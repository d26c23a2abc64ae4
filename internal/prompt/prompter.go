// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
)

// Choice is one acceptable answer: a single-letter key and what it does.
type Choice struct {
	Key  string
	Desc string
}

// Common choice pairs.
var (
	Yes       = Choice{Key: "y", Desc: "yes"}
	No        = Choice{Key: "n", Desc: "no"}
	Overwrite = Choice{Key: "w", Desc: "overwrite"}
	Append    = Choice{Key: "a", Desc: "append"}
)

type prompter struct {
	src AnswerSource
	out io.Writer
}

// NewPrompter returns a [Prompter] reading from src and printing to out.
func NewPrompter(src AnswerSource, out io.Writer) Prompter {
	return &prompter{
		src: src,
		out: out,
	}
}

func (p *prompter) Choose(ctx context.Context, question string, choices ...Choice) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	text := question
	for {
		answer, err := p.Ask(ctx, text)
		if err != nil {
			return "", err
		}

		answer = strings.ToLower(strings.TrimSpace(answer))
		for _, c := range choices {
			if answer == strings.ToLower(c.Key) {
				return answer, nil
			}
		}

		logger.FromContext(ctx).Debug().Str("answer", answer).Msg("invalid prompt answer")
		text = RetryText(choices...)
	}
}

func (p *prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Choose(ctx, question, Yes, No)
	if err != nil {
		return false, err
	}
	return answer == Yes.Key, nil
}

func (p *prompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("error writing prompt: %w", err)
	}
	return p.src.ReadLine(ctx)
}

// RetryText is printed after an answer outside the offered choices, e.g.
// "Sorry, but that wasn't a valid input. Please enter a [W] for overwrite or
// [A] for append: ".
func RetryText(choices ...Choice) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = fmt.Sprintf("[%s] for %s", strings.ToUpper(c.Key), c.Desc)
	}
	return "Sorry, but that wasn't a valid input. Please enter a " + strings.Join(parts, " or ") + ": "
}
