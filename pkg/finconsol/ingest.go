package finconsol

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/parser"
	"github.com/xuri/excelize/v2"
)

// Ingest reads a spreadsheet or CSV file and tags it with a company and report type.
func Ingest(path, companyName string, reportType models.ReportType, opts Options) (*models.UploadedTable, error) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewIngestionError(name, "open", fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return nil, NewIngestionError(name, "open", err)
	}
	defer f.Close()

	return IngestReader(name, f, companyName, reportType, opts)
}

// IngestReader is Ingest for content already in hand. fileName decides the
// format: a .csv extension is read as CSV, anything else as a workbook.
func IngestReader(fileName string, r io.Reader, companyName string, reportType models.ReportType, opts Options) (*models.UploadedTable, error) {
	if reportType != models.ReportPL && reportType != models.ReportBalanceSheet {
		return nil, NewIngestionError(fileName, "metadata", fmt.Errorf("%w: %q", ErrUnknownReportType, reportType))
	}

	logger := opts.logger().With("file", fileName, "company", companyName, "report_type", string(reportType))

	var (
		grid *parser.Grid
		area *parser.Bounds
		err  error
	)
	if isCSV(fileName) {
		grid, err = parser.ReadCSV(r, opts.csv())
		if err != nil {
			return nil, NewIngestionError(fileName, "read", err)
		}
	} else {
		grid, area, err = readWorkbook(r, opts, logger)
		if err != nil {
			return nil, NewIngestionError(fileName, "read", err)
		}
	}

	rows, err := parser.ExtractRows(grid, area)
	if err != nil {
		return nil, NewIngestionError(fileName, "rows", err)
	}

	table := &models.UploadedTable{
		ID:             uuid.New().String(),
		SourceFileName: fileName,
		CompanyName:    companyName,
		ReportType:     reportType,
		UploadTime:     time.Now(),
		Rows:           rows,
	}
	if len(rows) > 0 {
		logger.Debug("ingested table", "id", table.ID, "rows", len(rows), "columns", len(rows[0]))
	} else {
		logger.Warn("table has a header but no data rows", "id", table.ID)
	}
	return table, nil
}

func isCSV(fileName string) bool {
	return strings.EqualFold(filepath.Ext(fileName), ".csv")
}

func readWorkbook(r io.Reader, opts Options, logger *slog.Logger) (*parser.Grid, *parser.Bounds, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptySheet
	}
	sheetName := sheets[0]
	if opts.Sheet != "" {
		if !slices.Contains(sheets, opts.Sheet) {
			return nil, nil, fmt.Errorf("%w: %q", ErrSheetNotFound, opts.Sheet)
		}
		sheetName = opts.Sheet
	}

	grid, err := parser.ReadSheet(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	var area *parser.Bounds
	if !opts.IgnorePrintArea {
		if a, ok := parser.PrintArea(f, sheetName); ok {
			logger.Debug("restricting to print area", "sheet", sheetName, "area", *a)
			area = a
		}
	}
	return grid, area, nil
}
