package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type consoleSource struct {
	reader *bufio.Reader
	echo   io.Writer
}

// NewConsoleSource reads answers from in. When in is a file that is not a
// terminal (a pipe or a redirected file) each answer is echoed to echo so
// the transcript shows what was answered.
func NewConsoleSource(in io.Reader, echo io.Writer) AnswerSource {
	s := &consoleSource{reader: bufio.NewReader(in)}
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		s.echo = echo
	}
	return s
}

func (s *consoleSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}

	line = strings.TrimRight(line, "\r\n")
	if s.echo != nil {
		_, _ = fmt.Fprintln(s.echo, line)
	}
	return line, nil
}

type scriptedSource struct {
	answers []string
}

// NewScriptedSource replays answers in order, then reports [ErrNoInput].
func NewScriptedSource(answers ...string) AnswerSource {
	return &scriptedSource{answers: answers}
}

func (s *scriptedSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.answers) == 0 {
		return "", ErrNoInput
	}
	line := s.answers[0]
	s.answers = s.answers[1:]
	return line, nil
}
