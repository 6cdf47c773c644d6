package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/finconsol-go/pkg/finconsol"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/output"
)

func newInspectCmd() *cobra.Command {
	var (
		company    string
		reportType string
		sheet      string
	)
	cmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "Print the rows ingestion reads from a file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			kind, err := models.ParseReportType(reportType)
			if err != nil {
				return err
			}
			opts := ingestOptions(cfg.Ingest, logger)
			if sheet != "" {
				opts.Sheet = sheet
			}

			table, err := finconsol.Ingest(args[0], company, kind, opts)
			if err != nil {
				return err
			}
			data, err := output.TableToJSON(table, true)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput("", append(data, '\n'))
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "Company name to tag the table with")
	cmd.Flags().StringVar(&reportType, "type", "PL", "Report type: PL or BS")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	return cmd
}
