// SPDX-License-Identifier: EPL-2.0

package main

import "github.com/spf13/cobra"

func newBandsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Print the configured frequency bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := newPrinter(cmd.OutOrStdout(), a.noColor)
			if asJSON {
				return out.writeJSON(a.cfg.Bands)
			}

			out.bands(a.cfg.Bands)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
