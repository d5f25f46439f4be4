package main

import (
	"fmt"
	"os"

	"github.com/bryanCE/dnsgrid/internal/cli"

	"github.com/spf13/cobra"
)

var version = "dev" // Will be set by ldflags during build

func main() {
	rootCmd := &cobra.Command{
		Use:   "dnsgrid",
		Short: "Compare DNS answers and timings across resolvers",
		Long: `Query a set of DNS names against a set of DNS servers concurrently and
render the results as a color-annotated comparison table. Useful for
spotting resolver inconsistencies and latency differences.`,
		Version: version,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewServersCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
