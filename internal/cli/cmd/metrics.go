package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics <domain>",
	Short: "Fetch the current metrics snapshot for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		raw, err := newClient().Get(ctx, args[0]+"/metrics")
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
