// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/gemini-env/internal/report"
	"github.com/spf13/cobra"
)

func (a *App) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration with keys masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd)
		},
	}
}

func (a *App) runShow(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	return a.render(cmd, report.Build(cfg))
}
