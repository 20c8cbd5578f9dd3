package main

import (
	"os"

	"github.com/ariel-systems/ariel-bridge/internal/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
