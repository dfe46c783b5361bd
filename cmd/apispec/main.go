package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by ldflags during build).
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "apispec",
		Short:   "OpenAPI document tooling",
		Long:    "Serve OpenAPI documents together with interactive documentation viewers.",
		Version: version,
	}

	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
