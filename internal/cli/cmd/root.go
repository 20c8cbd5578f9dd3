// Package cmd implements the arielctl command tree.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-systems/ariel-bridge/internal/cli/config"
	"github.com/ariel-systems/ariel-bridge/pkg/client"
)

var (
	cfgFile     string
	profileName string
	gatewayURL  string
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "arielctl",
	Short: "Ariel bridge stack CLI",
	Long: `arielctl is the command-line interface for the Ariel bridge stack.

Fetch domain metrics, trigger optimizations and inspect activity feeds
through the universal gateway from your terminal.`,
	Version: "0.1.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.ariel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "profile to use")
	rootCmd.PersistentFlags().StringVar(&gatewayURL, "gateway", "", "gateway base URL (overrides profile)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
		cfg = config.Default()
	}
}

// newClient builds a gateway client from flags and the active profile.
func newClient() *client.Client {
	url := gatewayURL
	if url == "" {
		if profile, err := cfg.GetProfile(profileName); err == nil {
			url = profile.GatewayURL
		}
	}
	if url == "" {
		url = "http://localhost:3001"
	}
	return client.New(url)
}

// printJSON pretty-prints a raw JSON payload to stdout.
func printJSON(raw json.RawMessage) error {
	var buf any
	if err := json.Unmarshal(raw, &buf); err != nil {
		fmt.Println(string(raw))
		return nil
	}
	out, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
