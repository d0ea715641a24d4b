// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/gemini-env/internal/report"
	"github.com/MKhiriev/gemini-env/internal/validators"
	"github.com/spf13/cobra"
)

func (a *App) validateCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the loaded configuration",
		Long: "validate checks key format, proxy URL, model, timeout and retries. " +
			"It exits with an error when any check fails.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			verr := validators.NewConfigValidator().Validate(cmd.Context(), cfg, fields...)
			if errors.Is(verr, validators.ErrUnknownField) {
				return verr
			}

			summary := report.Build(cfg).WithProblems(problems(verr))
			if err = a.render(cmd, summary); err != nil {
				return err
			}
			if verr != nil {
				a.logger.Debug().Err(verr).Msg("validation failed")
				return fmt.Errorf("%w: %d problem(s)", ErrInvalidConfig, len(summary.Problems))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "field", nil, "restrict validation to fields: api_keys, proxy_url, default_model, request_timeout, max_retries")

	return cmd
}

// problems flattens a joined validation error into one message per failure.
func problems(err error) []string {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		out := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}

	return []string{err.Error()}
}
