// Package main provides the CLI entry point for finconsol.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finconsol",
		Short: "Consolidate company P&L and Balance Sheet spreadsheets",
		Long: `finconsol merges financial spreadsheets (Excel or CSV) from several
companies into one consolidated report per account code and period.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./finconsol.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newConsolidateCmd(), newTemplateCmd(), newInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
