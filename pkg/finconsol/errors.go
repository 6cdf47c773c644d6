package finconsol

import (
	"errors"
	"fmt"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is neither a readable workbook nor CSV.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptySheet indicates the sheet has no header row.
var ErrEmptySheet = parser.ErrNoHeader

// ErrUnsupportedEncoding indicates an unknown CSV charset.
var ErrUnsupportedEncoding = parser.ErrUnsupportedEncoding

// ErrUnknownReportType indicates a report type that is neither P&L nor Balance Sheet.
var ErrUnknownReportType = models.ErrUnknownReportType

// IngestionError represents an error while turning a file into a table.
type IngestionError struct {
	FileName string
	Stage    string // "open", "read", "rows", "metadata"
	Err      error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion error in %q (%s): %v", e.FileName, e.Stage, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// NewIngestionError creates a new IngestionError.
func NewIngestionError(fileName, stage string, err error) *IngestionError {
	return &IngestionError{
		FileName: fileName,
		Stage:    stage,
		Err:      err,
	}
}
