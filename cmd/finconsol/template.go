package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/template"
)

func newTemplateCmd() *cobra.Command {
	var (
		xlsx bool
		out  string
	)
	cmd := &cobra.Command{
		Use:       "template pl|bs",
		Short:     "Write an example input file for P&L or Balance Sheet",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"pl", "bs"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(cmd); err != nil {
				return err
			}
			kind, err := models.ParseReportType(args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			name := template.FileName(kind)
			if xlsx {
				name = strings.TrimSuffix(name, ".csv") + ".xlsx"
				err = template.WriteXLSX(&buf, kind)
			} else {
				err = template.WriteCSV(&buf, kind)
			}
			if err != nil {
				return fmt.Errorf("template export failed: %w", err)
			}

			if out == "" {
				out = name
			}
			if err := writeOutput(out, buf.Bytes()); err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintln(cmd.ErrOrStderr(), "wrote", out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&xlsx, "xlsx", false, "Write an Excel workbook instead of CSV")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output path, '-' for stdout (default: template file name)")
	return cmd
}
