// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the envcheck command line tool: it loads the Gemini
// client configuration the same way the application does and shows,
// validates, checks or copies the result.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/gemini-env/internal/adapter"
	"github.com/MKhiriev/gemini-env/internal/config"
	"github.com/MKhiriev/gemini-env/internal/logger"
	"github.com/MKhiriev/gemini-env/internal/utils"
	"github.com/MKhiriev/gemini-env/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// AdapterFactory builds the API adapter used by the check command.
type AdapterFactory func(cfg config.LoadedConfig, log *logger.Logger) (adapter.GeminiAdapter, error)

// App wires the commands to their collaborators. Fields are set through
// [AppOption]s so tests can replace the outside world.
type App struct {
	out io.Writer
	err io.Writer

	newAdapter AdapterFactory
	copyText   func(string) error
	buildInfo  models.AppBuildInfo
	ids        *utils.UUIDGenerator

	flags  rootFlags
	logger *logger.Logger
}

// AppOption customises an [App].
type AppOption func(*App)

// WithOutput redirects command output and diagnostics.
func WithOutput(out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.out = out
		a.err = errOut
	}
}

// WithAdapterFactory replaces the Gemini adapter constructor.
func WithAdapterFactory(f AdapterFactory) AppOption {
	return func(a *App) {
		a.newAdapter = f
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(f func(string) error) AppOption {
	return func(a *App) {
		a.copyText = f
	}
}

// WithBuildInfo sets the metadata printed by the version command.
func WithBuildInfo(info models.AppBuildInfo) AppOption {
	return func(a *App) {
		a.buildInfo = info
	}
}

// NewApp returns an App writing to stdout/stderr, talking to the public
// Gemini endpoint and the system clipboard.
func NewApp(opts ...AppOption) *App {
	a := &App{
		out: os.Stdout,
		err: os.Stderr,
		newAdapter: func(cfg config.LoadedConfig, log *logger.Logger) (adapter.GeminiAdapter, error) {
			return adapter.NewGeminiAdapter(cfg, adapter.Options{UserAgent: "envcheck"}, log)
		},
		copyText:  clipboard.WriteAll,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Execute runs the command tree with args (without the program name).
func (a *App) Execute(ctx context.Context, args []string) error {
	cmd := a.Command()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// Command builds a fresh command tree bound to the App.
func (a *App) Command() *cobra.Command {
	root := a.rootCommand()
	root.AddCommand(
		a.showCommand(),
		a.validateCommand(),
		a.checkCommand(),
		a.modelsCommand(),
		a.copyCommand(),
		a.versionCommand(),
	)

	return root
}
