// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/gemini-env/internal/config"
	"github.com/MKhiriev/gemini-env/internal/logger"
	"github.com/MKhiriev/gemini-env/internal/report"
	"github.com/MKhiriev/gemini-env/internal/utils"
	"github.com/MKhiriev/gemini-env/models"
	"github.com/spf13/cobra"
)

func (a *App) checkCommand() *cobra.Command {
	var checkModel bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every API key against the Gemini API",
		Long: "check sends one minimal request per key through the configured proxy, " +
			"timeout and retry settings and reports which keys are accepted.",
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

			results := make([]models.KeyCheckResult, 0, len(cfg.APIKeys))
			failed := 0
			masked := config.MaskAPIKeys(cfg.APIKeys)
			for i, key := range cfg.APIKeys {
				res := models.KeyCheckResult{Index: i, Masked: masked[i], OK: true, RequestID: a.ids.Generate()}
				ctx := utils.WithRequestID(cmd.Context(), res.RequestID)
				if err := api.CheckKey(ctx, key); err != nil {
					res.OK = false
					res.Error = err.Error()
					failed++
				}
				logger.FromContext(ctx).Info().
					Int("index", i).
					Str("key", res.Masked).
					Str("request_id", res.RequestID).
					Bool("ok", res.OK).
					Msg("key checked")
				results = append(results, res)
			}

			summary := report.Build(cfg).WithChecks(results)
			if checkModel && failed < len(cfg.APIKeys) {
				ctx := utils.WithRequestID(cmd.Context(), a.ids.Generate())
				if _, err := api.GetModel(ctx, cfg.DefaultModel); err != nil {
					summary = summary.WithProblems([]string{fmt.Sprintf("default model %q: %v", cfg.DefaultModel, err)})
				}
			}

			if err = a.render(cmd, summary); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrKeyCheckFailed, failed, len(cfg.APIKeys))
			}
			if len(summary.Problems) > 0 {
				return fmt.Errorf("%w: %s", ErrInvalidConfig, summary.Problems[0])
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&checkModel, "model", false, "also verify that the default model exists")

	return cmd
}
