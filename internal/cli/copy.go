// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/gemini-env/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <index>",
		Short: "Copy one API key to the clipboard",
		Long:  "copy places the key at the given 0-based index on the clipboard. Only the masked key is printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if idx < 0 || idx >= len(cfg.APIKeys) {
				return fmt.Errorf("%w: %d (have %d)", ErrKeyIndexOutOfRange, idx, len(cfg.APIKeys))
			}

			masked := config.MaskAPIKey(cfg.APIKeys[idx])
			if err = a.copyText(cfg.APIKeys[idx]); err != nil {
				return fmt.Errorf("error copying to clipboard: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "copied key [%d] %s\n", idx, masked)
			return err
		},
	}
}
