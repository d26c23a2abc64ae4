// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the passgen command line.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/client"
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/prompt"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/store"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

// Defaults of the positional arguments.
const (
	DefaultCharCount = 10
	DefaultPassCount = 1
)

// Generation flag names.
const (
	FlagUpper      = "upper"
	FlagNumber     = "number"
	FlagSpecial    = "special"
	FlagCopy       = "copy"
	FlagExpression = "expression"
	FlagForce      = "force"
	FlagView       = "view"
)

const logRole = "passgen"

// IO is the terminal the command talks to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewRootCommand builds the passgen command.
func NewRootCommand(info models.AppBuildInfo, stdio IO) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen [Num_of_Chars] [Num_of_Passwords]",
		Short: "Generate random passwords",
		Long: `passgen generates random passwords from the enabled character classes or
from an interactively entered expression, and can save them to a file and
encrypt that file.

Lowercase letters are always used. Num_of_Chars defaults to 10 and
Num_of_Passwords to 1.`,
		Args:          cobra.MaximumNArgs(2),
		Version:       info.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseRunOptions(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd, opts, stdio)
		},
	}

	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)
	cmd.SetVersionTemplate(info.VersionText())

	fs := cmd.Flags()
	fs.BoolP(FlagUpper, "u", false, "Include uppercase letters")
	fs.BoolP(FlagNumber, "n", false, "Include digits")
	fs.BoolP(FlagSpecial, "s", false, "Include special characters")
	fs.BoolP(FlagCopy, "c", false, "Copy the passwords to the clipboard")
	fs.BoolP(FlagExpression, "e", false, "Enter a generation expression interactively")
	fs.BoolP(FlagForce, "f", false, "Overwrite the passwords file without confirmation")
	fs.Bool(FlagView, false, "Print the saved passwords")
	config.RegisterFlags(fs)

	return cmd
}

// parseRunOptions maps positional arguments and generation flags onto
// [models.RunOptions].
func parseRunOptions(cmd *cobra.Command, args []string) (models.RunOptions, error) {
	opts := models.RunOptions{
		CharCount: DefaultCharCount,
		PassCount: DefaultPassCount,
	}

	var err error
	if len(args) > 0 {
		if opts.CharCount, err = strconv.Atoi(args[0]); err != nil {
			return opts, fmt.Errorf("%w: Num_of_Chars %q is not a number", ErrInvalidArgument, args[0])
		}
	}
	if len(args) > 1 {
		if opts.PassCount, err = strconv.Atoi(args[1]); err != nil {
			return opts, fmt.Errorf("%w: Num_of_Passwords %q is not a number", ErrInvalidArgument, args[1])
		}
	}

	fs := cmd.Flags()
	targets := map[string]*bool{
		FlagUpper:      &opts.Upper,
		FlagNumber:     &opts.Number,
		FlagSpecial:    &opts.Special,
		FlagCopy:       &opts.Copy,
		FlagExpression: &opts.Template,
		FlagForce:      &opts.Force,
		FlagView:       &opts.View,
	}
	for name, dst := range targets {
		if *dst, err = fs.GetBool(name); err != nil {
			return opts, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
	}

	return opts, nil
}

func run(cmd *cobra.Command, opts models.RunOptions, stdio IO) error {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log, closeLog := logger.NewClientLogger(logRole, cfg.LogFile, cfg.LogLevel)
	defer closeLog()
	log = log.WithRunID(utils.RunID())
	ctx := log.WithContext(cmd.Context())

	log.Debug().
		Bool("view", opts.View).
		Bool("template", opts.Template).
		Int("count", opts.PassCount).
		Str("cipher", cfg.CipherScheme).
		Msg("passgen started")

	prompter := prompt.NewPrompter(prompt.NewConsoleSource(stdio.In, stdio.Out), stdio.Out)

	services, err := service.NewClientServices(
		cfg,
		store.NewClientStorages(cfg, log),
		adapter.NewSystemClipboard(),
		prompter,
		stdio.Out,
		log,
	)
	if err != nil {
		return fmt.Errorf("error creating client services: %w", err)
	}

	app, err := client.NewApp(services, prompter, cfg.KeyPath, stdio.Out, log)
	if err != nil {
		return fmt.Errorf("error creating client app: %w", err)
	}

	if err := app.Run(ctx, opts); err != nil {
		log.Error().Err(err).Msg("passgen failed")
		return err
	}
	return nil
}
