package service

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/mock"
	"github.com/MKhiriev/go-pass-gen/internal/prompt"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
)

// newTestPasswordSvc is a helper building a passwordService with a fixed seed,
// scripted answers and a mocked clipboard.
func newTestPasswordSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	allowEmpty bool,
	answers ...string,
) (PasswordService, *mock.MockClipboard, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	clip := mock.NewMockClipboard(ctrl)
	gen := generator.NewGenerator(out, logger.Nop(), generator.WithRand(rand.New(rand.NewPCG(7, 7))))
	p := prompt.NewPrompter(prompt.NewScriptedSource(answers...), out)

	svc := NewPasswordService(gen, validators.NewGenerationValidator(), p, clip, out, allowEmpty)
	return svc, clip, out
}

// ── ResolvePlan ───────────────────────────────────────────────────────────────

func TestPasswordService_ResolvePlan_Policy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, out := newTestPasswordSvc(t, ctrl, false)

	plan, err := svc.ResolvePlan(context.Background(), models.RunOptions{CharCount: 12, PassCount: 3, Upper: true})

	require.NoError(t, err)
	assert.False(t, plan.IsTemplate())
	assert.Equal(t, 12, plan.Len())
	assert.Empty(t, out.String(), "policy mode must not prompt")
}

func TestPasswordService_ResolvePlan_InvalidOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPasswordSvc(t, ctrl, false)

	_, err := svc.ResolvePlan(context.Background(), models.RunOptions{CharCount: 0, PassCount: 1})
	assert.ErrorIs(t, err, ErrGeneratingPasswords)
	assert.ErrorIs(t, err, validators.ErrInvalidLength)

	_, err = svc.ResolvePlan(context.Background(), models.RunOptions{CharCount: 5, PassCount: 0})
	assert.ErrorIs(t, err, validators.ErrInvalidCount)
}

// TestPasswordService_ResolvePlan_Template verifies that template mode asks
// for an expression and ignores the character count.
func TestPasswordService_ResolvePlan_Template(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, out := newTestPasswordSvc(t, ctrl, false, "LLuns")

	plan, err := svc.ResolvePlan(context.Background(), models.RunOptions{Template: true, CharCount: 99, PassCount: 1})

	require.NoError(t, err)
	assert.True(t, plan.IsTemplate())
	assert.Equal(t, 5, plan.Len())
	assert.Contains(t, out.String(), "[L] lowercase letter")
	assert.Contains(t, out.String(), "Please input a compatible expression: ")
}

// ── PromptTemplate ────────────────────────────────────────────────────────────

// TestPasswordService_PromptTemplate_RetriesInvalid verifies that invalid
// tokens are listed and the user is asked again, never aborting.
func TestPasswordService_PromptTemplate_RetriesInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, out := newTestPasswordSvc(t, ctrl, false, "lxq", "l u n s")

	tmpl, err := svc.PromptTemplate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.GenerationTemplate{models.Lowercase, models.Uppercase, models.Digit, models.Special}, tmpl)
	assert.Contains(t, out.String(), "The invalid characters are:\n\n - x\n - q\n")
	assert.Contains(t, out.String(), "Please try to input another expression: ")
}

// TestPasswordService_PromptTemplate_HelpThenBlankLine verifies that the
// token help is followed by one blank line before the first question.
func TestPasswordService_PromptTemplate_HelpThenBlankLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, out := newTestPasswordSvc(t, ctrl, false, "l")

	_, err := svc.PromptTemplate(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), generator.TemplateHelp+"\nPlease input a compatible expression: "))
}

func TestPasswordService_PromptTemplate_EmptyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, out := newTestPasswordSvc(t, ctrl, false, "   ", "n")

	tmpl, err := svc.PromptTemplate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.GenerationTemplate{models.Digit}, tmpl)
	assert.Contains(t, out.String(), "Your expression is empty.")
}

func TestPasswordService_PromptTemplate_EmptyAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPasswordSvc(t, ctrl, true, "")

	tmpl, err := svc.PromptTemplate(context.Background())

	require.NoError(t, err)
	assert.Empty(t, tmpl)
}

func TestPasswordService_PromptTemplate_NoInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPasswordSvc(t, ctrl, false, "zz")

	_, err := svc.PromptTemplate(context.Background())
	assert.ErrorIs(t, err, prompt.ErrNoInput)
}

// ── Generate ──────────────────────────────────────────────────────────────────

func TestPasswordService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, out := newTestPasswordSvc(t, ctrl, false)

	list, err := svc.Generate(context.Background(), generator.NewPolicyPlan(models.GenerationPolicy{Length: 10}), 4)

	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Contains(t, out.String(), strings.Join(list, "\n"))
}

func TestPasswordService_Generate_InvalidCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestPasswordSvc(t, ctrl, false)

	_, err := svc.Generate(context.Background(), generator.NewPolicyPlan(models.GenerationPolicy{Length: 10}), 0)
	assert.ErrorIs(t, err, ErrGeneratingPasswords)
	assert.ErrorIs(t, err, generator.ErrInvalidCount)
}

// ── Copy ──────────────────────────────────────────────────────────────────────

func TestPasswordService_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, clip, _ := newTestPasswordSvc(t, ctrl, false)

	clip.EXPECT().WriteAll("abc123\ndef456").Return(nil)

	require.NoError(t, svc.Copy(context.Background(), models.PasswordList{"abc123", "def456"}))
}

// TestPasswordService_Copy_LogsToContextLogger verifies that a clipboard
// failure is logged through the logger carried by ctx.
func TestPasswordService_Copy_LogsToContextLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, clip, _ := newTestPasswordSvc(t, ctrl, false)

	var logs bytes.Buffer
	ctx := logger.NewLogger("test", &logs, "info").WithRunID("run-42").WithContext(context.Background())
	clip.EXPECT().WriteAll(gomock.Any()).Return(errors.New("no clipboard"))

	require.Error(t, svc.Copy(ctx, models.PasswordList{"x"}))
	assert.Contains(t, logs.String(), `"run_id":"run-42"`)
	assert.Contains(t, logs.String(), "clipboard copy failed")
}

func TestPasswordService_Copy_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, clip, _ := newTestPasswordSvc(t, ctrl, false)

	noClip := errors.New("no clipboard")
	clip.EXPECT().WriteAll(gomock.Any()).Return(noClip)

	assert.ErrorIs(t, svc.Copy(context.Background(), models.PasswordList{"x"}), noClip)
}
