package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/finconsol-go/internal/config"
	"github.com/ukaji3/finconsol-go/pkg/finconsol"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/output"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/store"
)

type consolidateFlags struct {
	tables    []string
	manifest  string
	format    string
	output    string
	pretty    bool
	style     string
	from      string
	to        string
	year      string
	expand    []string
	encoding  string
	delimiter string
	sheet     string
}

func newConsolidateCmd() *cobra.Command {
	var f consolidateFlags
	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Consolidate tagged spreadsheets into one report",
		Example: `  finconsol consolidate -t "Acme:PL:acme_pl.csv" -t "Beta:PL:beta.xlsx"
  finconsol consolidate -m uploads.yaml --format xlsx -o report.xlsx
  finconsol consolidate -m uploads.yaml --year 24 --expand all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsolidate(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&f.tables, "table", "t", nil, "Upload as COMPANY:TYPE:PATH (repeatable; TYPE is PL or BS)")
	flags.StringVarP(&f.manifest, "manifest", "m", "", "YAML manifest listing uploads")
	flags.StringVar(&f.format, "format", "", "Output format: json, markdown, xlsx")
	flags.StringVarP(&f.output, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&f.style, "style", "", "Terminal style for markdown: auto, dark, light, notty, plain")
	flags.StringVar(&f.from, "from", "", "First visible period")
	flags.StringVar(&f.to, "to", "", "Last visible period")
	flags.StringVar(&f.year, "year", "", "Show only periods starting with this prefix (e.g. 24)")
	flags.StringSliceVar(&f.expand, "expand", nil, "Periods to break down per company, or 'all'")
	flags.StringVar(&f.encoding, "encoding", "", "CSV encoding: utf-8, windows-1252, iso-8859-1")
	flags.StringVar(&f.delimiter, "delimiter", "", "CSV delimiter")
	flags.StringVar(&f.sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	return cmd
}

func runConsolidate(cmd *cobra.Command, f consolidateFlags) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	applyConsolidateFlags(cmd, cfg, f)

	uploads, err := collectUploads(f)
	if err != nil {
		return err
	}
	if len(uploads) == 0 {
		return errors.New("no uploads: use --table or --manifest")
	}

	bench := store.NewWorkbench(logger)
	for _, u := range uploads {
		kind, err := models.ParseReportType(u.Type)
		if err != nil {
			return fmt.Errorf("%s: %w", u.File, err)
		}
		opts := ingestOptions(cfg.Ingest, logger)
		if u.Sheet != "" {
			opts.Sheet = u.Sheet
		}
		table, err := finconsol.Ingest(u.File, u.Company, kind, opts)
		if err != nil {
			return err
		}
		bench.Add(table)
	}

	report, err := bench.Consolidate()
	if err != nil {
		return fmt.Errorf("consolidation failed: %w", err)
	}

	view, err := viewOptions(report, f)
	if err != nil {
		return err
	}
	return render(report, cfg.Output, view, f.output)
}

func applyConsolidateFlags(cmd *cobra.Command, cfg *config.Config, f consolidateFlags) {
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("pretty") {
		cfg.Output.Pretty = f.pretty
	}
	if changed("style") {
		cfg.Output.Style = f.style
	}
	if changed("encoding") {
		cfg.Ingest.Encoding = f.encoding
	}
	if changed("delimiter") {
		cfg.Ingest.Delimiter = f.delimiter
	}
	if changed("sheet") {
		cfg.Ingest.Sheet = f.sheet
	}
}

func collectUploads(f consolidateFlags) ([]config.Upload, error) {
	var uploads []config.Upload
	if f.manifest != "" {
		m, err := config.LoadManifest(f.manifest)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, m.Uploads...)
	}
	for _, spec := range f.tables {
		u, err := parseTableSpec(spec)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, nil
}

// parseTableSpec parses COMPANY:TYPE:PATH. The path may itself contain colons.
func parseTableSpec(spec string) (config.Upload, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 || parts[2] == "" {
		return config.Upload{}, fmt.Errorf("invalid table %q (want COMPANY:TYPE:PATH)", spec)
	}
	return config.Upload{Company: parts[0], Type: parts[1], File: parts[2]}, nil
}

func viewOptions(report *models.ConsolidatedReport, f consolidateFlags) (output.ViewOptions, error) {
	view := output.ViewOptions{From: f.from, To: f.to}
	if f.year != "" {
		start, end, ok := output.YearPreset(report.PeriodNames, f.year)
		if !ok {
			return view, fmt.Errorf("no period starts with %q", f.year)
		}
		view.From, view.To = start, end
	}
	for _, p := range f.expand {
		if strings.EqualFold(p, "all") {
			view.ExpandAll = true
			continue
		}
		view.Expanded = append(view.Expanded, p)
	}
	return view, nil
}

func render(report *models.ConsolidatedReport, cfg config.OutputConfig, view output.ViewOptions, path string) error {
	switch cfg.Format {
	case "json":
		data, err := output.ToJSON(report, cfg.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeOutput(path, append(data, '\n'))
	case "xlsx":
		if path == "" || path == "-" {
			return errors.New("xlsx output needs --output")
		}
		var buf bytes.Buffer
		if err := output.WriteXLSX(&buf, report, view); err != nil {
			return fmt.Errorf("xlsx export failed: %w", err)
		}
		return writeOutput(path, buf.Bytes())
	default:
		md := output.MarkdownReport(report, view)
		if (path == "" || path == "-") && cfg.Style != "plain" {
			styled, err := output.RenderTerminal(md, cfg.Style)
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
			md = styled
		}
		return writeOutput(path, []byte(md))
	}
}
