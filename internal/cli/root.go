// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/gemini-env/internal/config"
	"github.com/MKhiriev/gemini-env/internal/logger"
	"github.com/MKhiriev/gemini-env/internal/report"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	dir       string
	mode      string
	jsonPath  string
	prefix    string
	noOSEnv   bool
	overrides []string
	output    string
	logLevel  string
	logFormat string
}

// Log formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

func (a *App) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envcheck",
		Short: "Inspect Gemini API client configuration",
		Long: "envcheck loads the Gemini API keys, proxy, model, timeout and retry settings " +
			"from dotenv files, a JSON file and the environment, and shows the result with keys masked.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(a.flags.logLevel)
			if err != nil {
				return err
			}

			switch a.flags.logFormat {
			case logFormatText:
				a.logger = logger.NewConsoleLogger("envcheck", a.err, level)
			case logFormatJSON:
				a.logger = logger.New("envcheck", a.err).Leveled(level)
			default:
				return fmt.Errorf("%w: %q", ErrUnknownLogFormat, a.flags.logFormat)
			}

			cmd.SetContext(a.logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd)
		},
	}

	cmd.SetOut(a.out)
	cmd.SetErr(a.err)

	f := cmd.PersistentFlags()
	f.StringVar(&a.flags.dir, "dir", ".", "directory searched for .env files (empty disables dotenv)")
	f.StringVar(&a.flags.mode, "mode", "", "mode selecting .env.<mode> files")
	f.StringVarP(&a.flags.jsonPath, "config", "c", "", "JSON config file")
	f.StringVar(&a.flags.prefix, "prefix", config.DefaultPrefix, "variable name prefix")
	f.BoolVar(&a.flags.noOSEnv, "no-os-env", false, "ignore the process environment")
	f.StringArrayVar(&a.flags.overrides, "set", nil, "override a variable, KEY=VALUE (repeatable)")
	f.StringVarP(&a.flags.output, "output", "o", report.FormatText, "output format: text|json|yaml")
	f.StringVar(&a.flags.logLevel, "log-level", "warn", "log level: debug|info|warn|error|disabled")
	f.StringVar(&a.flags.logFormat, "log-format", logFormatText, "log format on stderr: text|json")

	return cmd
}

// loadConfig builds the layered source from the flags and loads it.
func (a *App) loadConfig() (config.LoadedConfig, error) {
	overrides, err := config.ParseOverrides(a.flags.overrides)
	if err != nil {
		return config.LoadedConfig{}, err
	}

	prefix := a.flags.prefix
	src, err := config.NewSource(config.SourceOptions{
		Dir:       a.flags.dir,
		Mode:      a.flags.mode,
		JSONPath:  a.flags.jsonPath,
		Prefix:    &prefix,
		Overrides: overrides,
		UseOS:     !a.flags.noOSEnv,
	})
	if err != nil {
		return config.LoadedConfig{}, fmt.Errorf("error loading sources: %w", err)
	}

	return config.NewLoader(src, config.WithPrefix(prefix), config.WithLogger(a.logger)).LoadAll(), nil
}

func (a *App) render(cmd *cobra.Command, s report.Summary) error {
	return report.Render(cmd.OutOrStdout(), a.flags.output, s)
}
