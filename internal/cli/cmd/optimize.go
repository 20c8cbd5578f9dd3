package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <domain> [json-body]",
	Short: "Trigger an optimization pass for a domain",
	Long: `Trigger an optimization pass for a domain. The optional json-body is
forwarded verbatim and recorded in the domain's activity log, e.g.:

  arielctl optimize affiliate '{"campaign":"X"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		if len(args) == 2 {
			if err := json.Unmarshal([]byte(args[1]), &body); err != nil {
				return fmt.Errorf("invalid JSON body: %w", err)
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		raw, err := newClient().Post(ctx, args[0]+"/optimize", body)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
