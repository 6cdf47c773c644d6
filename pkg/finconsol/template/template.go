// Package template produces downloadable example input files.
package template

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/xuri/excelize/v2"
)

// Header is the header row shared by both templates.
var Header = []string{"GL Account Code", "Raw Name", "24-Jan", "24-Feb", "24-Mar", "24-Apr", "24-May", "24-Jun"}

// Line is one example account line.
type Line struct {
	Code    string
	Name    string
	Amounts []float64
}

var plLines = []Line{
	{"4113000", "4113000InterestIncome", []float64{26660.86, 28046.34, 29226.6, 25004.2, 24669.74, 25682.91}},
	{"5216100", "5216100Interestcharge-OPEX", []float64{8475.98, 8026.43, 6712.51, 10811.29, 11029.22, 9347.15}},
	{"6011100", "6011100Socialmedia", []float64{2046.86, 1768.1, 1800.00, 1900.00, 2000.00, 2100.00}},
}

var bsLines = []Line{
	{"1000000", "Cash", []float64{100000, 105000, 110000, 115000, 120000, 125000}},
	{"1200000", "Accounts Receivable", []float64{50000, 52000, 54000, 56000, 58000, 60000}},
	{"2000000", "Accounts Payable", []float64{20000, 21000, 22000, 23000, 24000, 25000}},
	{"3000000", "Retained Earnings", []float64{80000, 84000, 88000, 92000, 96000, 100000}},
}

// Lines returns the example lines for a report type.
func Lines(kind models.ReportType) []Line {
	if kind == models.ReportBalanceSheet {
		return bsLines
	}
	return plLines
}

// FileName returns the download name of the CSV template.
func FileName(kind models.ReportType) string {
	if kind == models.ReportBalanceSheet {
		return "Balance_Sheet_Template.csv"
	}
	return "P_L_Template.csv"
}

// Records returns the template as text records, header first.
// Amounts use the shortest decimal form (1800, 26660.86).
func Records(kind models.ReportType) [][]string {
	lines := Lines(kind)
	records := make([][]string, 0, len(lines)+1)
	records = append(records, Header)
	for _, l := range lines {
		rec := []string{l.Code, l.Name}
		for _, a := range l.Amounts {
			rec = append(rec, strconv.FormatFloat(a, 'f', -1, 64))
		}
		records = append(records, rec)
	}
	return records
}

// WriteCSV writes the template as CSV.
func WriteCSV(w io.Writer, kind models.ReportType) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Records(kind)); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX writes the template as a single-sheet workbook.
// Codes are stored as numbers, the way a user-typed sheet holds them.
func WriteXLSX(w io.Writer, kind models.ReportType) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, l := range Lines(kind) {
		row := []interface{}{codeCell(l.Code), l.Name}
		for _, a := range l.Amounts {
			row = append(row, a)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func codeCell(code string) interface{} {
	if n, err := strconv.ParseInt(code, 10, 64); err == nil {
		return n
	}
	return code
}
