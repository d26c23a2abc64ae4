package generator

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Separator frames every printed password list.
var Separator = strings.Repeat("-", 50)

type generator struct {
	out    io.Writer
	rnd    *rand.Rand
	logger *logger.Logger
}

// Option configures a [Generator].
type Option func(*generator)

// WithRand replaces the default random source. Tests use it to fix the seed.
func WithRand(r *rand.Rand) Option {
	return func(g *generator) {
		g.rnd = r
	}
}

// NewGenerator returns a [Generator] printing to out. By default it draws
// from a ChaCha8 stream seeded by crypto/rand.
func NewGenerator(out io.Writer, log *logger.Logger, opts ...Option) Generator {
	g := &generator{
		out:    out,
		logger: log,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:]) // never returns an error since Go 1.24
		g.rnd = rand.New(rand.NewChaCha8(seed))
	}
	return g
}

func (g *generator) Generate(plan Plan, count int) (models.PasswordList, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if !plan.IsTemplate() && plan.Len() < 1 {
		return nil, ErrInvalidLength
	}

	list := make(models.PasswordList, 0, count)
	var sb strings.Builder
	for range count {
		sb.Reset()
		sb.Grow(plan.Len())
		for i := range plan.Len() {
			alphabet := Alphabet(plan.classAt(i, g.rnd))
			sb.WriteByte(alphabet[g.rnd.IntN(len(alphabet))])
		}
		list = append(list, sb.String())
	}

	g.logger.Debug().
		Int("count", count).
		Int("length", plan.Len()).
		Bool("template", plan.IsTemplate()).
		Msg("passwords generated")

	if err := Print(g.out, list); err != nil {
		return nil, fmt.Errorf("error printing passwords: %w", err)
	}
	return list, nil
}

// Print writes list between two separator lines.
func Print(w io.Writer, list models.PasswordList) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", Separator, list.Join(), Separator)
	return err
}
