package output

import (
	"io"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/xuri/excelize/v2"
)

// sheetNames maps categories to workbook sheet names.
var sheetNames = map[models.ReportType]string{
	models.ReportPL:           "P&L",
	models.ReportBalanceSheet: "Balance Sheet",
}

// amountNumFmt is the built-in "#,##0.00" number format.
const amountNumFmt = 4

// WriteXLSX writes one sheet per category with the same columns as Markdown.
// Row 1 holds period labels (merged over expanded periods), row 2 the
// company or TOTAL label of each column.
func WriteXLSX(w io.Writer, report *models.ConsolidatedReport, opts ViewOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return err
	}

	cols := layout(report, opts)
	for i, kind := range []models.ReportType{models.ReportPL, models.ReportBalanceSheet} {
		name := sheetNames[kind]
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeSheet(f, name, report.Rows(kind), cols, style); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, sheet string, rows []*models.ConsolidatedAccountRow, cols []column, style int) error {
	set := func(col, row int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	if err := set(1, 1, "Account Code"); err != nil {
		return err
	}
	if err := set(2, 1, "Account Name"); err != nil {
		return err
	}

	// Period header spans from its first company column to its TOTAL column.
	spanStart := 3
	for i, c := range cols {
		col := i + 3
		label := totalLabel
		if !c.total() {
			label = c.company
		}
		if err := set(col, 2, label); err != nil {
			return err
		}
		if !c.total() {
			continue
		}
		if err := set(spanStart, 1, c.period); err != nil {
			return err
		}
		if col > spanStart {
			from, _ := excelize.CoordinatesToCellName(spanStart, 1)
			to, _ := excelize.CoordinatesToCellName(col, 1)
			if err := f.MergeCell(sheet, from, to); err != nil {
				return err
			}
		}
		spanStart = col + 1
	}

	for r, row := range rows {
		line := r + 3
		if err := set(1, line, row.AccountCode); err != nil {
			return err
		}
		if err := set(2, line, row.AccountName); err != nil {
			return err
		}
		for i, c := range cols {
			agg := row.Period(c.period)
			amount := agg.Total
			if !c.total() {
				amount = agg.Contribution(c.company)
			}
			if err := set(i+3, line, amount.InexactFloat64()); err != nil {
				return err
			}
		}
	}

	if len(rows) > 0 && len(cols) > 0 {
		from, _ := excelize.CoordinatesToCellName(3, 3)
		to, _ := excelize.CoordinatesToCellName(len(cols)+2, len(rows)+2)
		if err := f.SetCellStyle(sheet, from, to, style); err != nil {
			return err
		}
	}
	return nil
}
