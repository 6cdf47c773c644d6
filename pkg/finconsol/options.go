// Package finconsol ingests company financial spreadsheets for consolidation.
package finconsol

import (
	"log/slog"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/parser"
)

// Options configures ingestion behavior.
type Options struct {
	// Sheet names the workbook sheet to read. Empty means the first sheet.
	Sheet string
	// Encoding is the CSV charset (utf-8, windows-1252, iso-8859-1).
	Encoding string
	// Comma is the CSV delimiter. Zero means ','.
	Comma rune
	// IgnorePrintArea reads the whole sheet even when a print area is defined.
	IgnorePrintArea bool
	// Logger receives ingestion diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default ingestion options.
func DefaultOptions() Options {
	return Options{Encoding: "utf-8", Comma: ','}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) csv() parser.CSVOptions {
	return parser.CSVOptions{Encoding: o.Encoding, Comma: o.Comma}
}
