package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/finconsol-go/internal/config"
	"github.com/ukaji3/finconsol-go/internal/logging"
	"github.com/ukaji3/finconsol-go/pkg/finconsol"
)

// setup loads configuration, applies flags that override it and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	logger := logging.New(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func ingestOptions(cfg config.IngestConfig, logger *slog.Logger) finconsol.Options {
	opts := finconsol.DefaultOptions()
	opts.Encoding = cfg.Encoding
	opts.Comma = cfg.Comma()
	opts.Sheet = cfg.Sheet
	opts.IgnorePrintArea = cfg.IgnorePrintArea
	opts.Logger = logger
	return opts
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
