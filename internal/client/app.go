package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/generator"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/prompt"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/models"
)

// ErrNilServices is returned by [NewApp] when the service set is incomplete.
var ErrNilServices = errors.New("client services are not initialised")

var _ Client = (*App)(nil)

// App is the passgen orchestrator.
type App struct {
	services *service.ClientServices
	prompter prompt.Prompter
	keyPath  string
	out      io.Writer
	logger   *logger.Logger
}

// NewApp builds the orchestrator. keyPath is only used in the message shown
// when a new key file is created.
func NewApp(services *service.ClientServices, prompter prompt.Prompter, keyPath string, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.PasswordService == nil || services.StoreService == nil || services.VaultService == nil {
		return nil, ErrNilServices
	}

	return &App{
		services: services,
		prompter: prompter,
		keyPath:  keyPath,
		out:      out,
		logger:   logger,
	}, nil
}

// Run executes view mode when opts.View is set and the generate flow
// otherwise. Generation flags are ignored in view mode.
func (a *App) Run(ctx context.Context, opts models.RunOptions) error {
	if opts.View {
		return a.view(ctx, opts)
	}
	return a.generate(ctx, opts)
}

func (a *App) view(ctx context.Context, opts models.RunOptions) error {
	path := a.services.StoreService.Path()

	list, err := a.services.VaultService.Retrieve(ctx)
	if errors.Is(err, store.ErrStoreNotFound) {
		fmt.Fprintf(a.out, app.MsgNoStore+"\n", path)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, app.MsgPasswordsIn+"\n", path)
	if err := generator.Print(a.out, list); err != nil {
		return fmt.Errorf("error printing passwords: %w", err)
	}

	if opts.Copy {
		a.copy(ctx, list)
	}
	return nil
}

func (a *App) generate(ctx context.Context, opts models.RunOptions) error {
	plan, err := a.services.PasswordService.ResolvePlan(ctx, opts)
	if err != nil {
		return err
	}

	if plan.IsTemplate() {
		fmt.Fprintln(a.out)
	}
	fmt.Fprintln(a.out, app.MsgPasswordsGenerated)

	list, err := a.services.PasswordService.Generate(ctx, plan, opts.PassCount)
	if err != nil {
		return err
	}

	if opts.Copy {
		a.copy(ctx, list)
	}

	save, err := a.prompter.Confirm(ctx, app.PromptSave)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	for {
		result, err := a.services.StoreService.Save(ctx, list, opts.Force)
		if err != nil {
			return err
		}
		if result == models.Saved {
			break
		}
	}

	return a.offerEncryption(ctx)
}

// offerEncryption asks to encrypt a freshly saved store. A store that is
// already encrypted was sealed by the save itself.
func (a *App) offerEncryption(ctx context.Context) error {
	encrypted, err := a.services.VaultService.IsEncrypted()
	if err != nil {
		return err
	}
	if encrypted {
		fmt.Fprintln(a.out, app.MsgStoreEncryptedSave)
		return nil
	}

	yes, err := a.prompter.Confirm(ctx, app.PromptEncrypt)
	if err != nil {
		return err
	}
	if !yes {
		return nil
	}

	created, err := a.services.VaultService.EncryptStore(ctx)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintln(a.out, noticeStyle.Render(fmt.Sprintf(app.MsgKeyCreated, a.keyPath)))
	}
	fmt.Fprintln(a.out, app.MsgStoreEncrypted)

	return nil
}

// copy reports clipboard failures as a warning; the run goes on.
func (a *App) copy(ctx context.Context, list models.PasswordList) {
	if err := a.services.PasswordService.Copy(ctx, list); err != nil {
		a.logger.Warn().Err(err).Msg("copy to clipboard")
		fmt.Fprintln(a.out, warnStyle.Render(fmt.Sprintf(app.MsgCopyFailed, err)))
		return
	}
	fmt.Fprintln(a.out, app.MsgCopied)
}
