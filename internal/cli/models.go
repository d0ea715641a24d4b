// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/gemini-env/internal/logger"
	"github.com/MKhiriev/gemini-env/internal/report"
	"github.com/MKhiriev/gemini-env/internal/utils"
	"github.com/spf13/cobra"
)

func (a *App) modelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models available to the configured keys",
		Long: "models lists every Gemini model visible to the first key that is accepted. " +
			"Rejected or rate limited keys are skipped in order; the key that served the list is shown masked.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.APIKeys) == 0 {
				return ErrNoAPIKeys
			}

			api, err := a.newAdapter(cfg, a.logger)
			if err != nil {
				return fmt.Errorf("error creating gemini adapter: %w", err)
			}

			requestID := a.ids.Generate()
			ctx := utils.WithRequestID(cmd.Context(), requestID)
			list, err := api.ListModels(ctx)
			if err != nil {
				return fmt.Errorf("error listing models: %w", err)
			}

			idx := api.KeyIndex()
			logger.FromContext(ctx).Info().
				Int("key_index", idx).
				Int("models", len(list)).
				Str("request_id", requestID).
				Msg("models listed")

			return report.RenderModels(cmd.OutOrStdout(), a.flags.output, report.BuildModelList(cfg, idx, list))
		},
	}
}
