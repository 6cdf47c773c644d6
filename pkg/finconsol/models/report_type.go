package models

import (
	"errors"
	"fmt"
	"strings"
)

// ReportType selects which consolidated output a table feeds.
type ReportType string

const (
	// ReportPL is a profit and loss statement.
	ReportPL ReportType = "PL"
	// ReportBalanceSheet is a balance sheet.
	ReportBalanceSheet ReportType = "BalanceSheet"
)

// ErrUnknownReportType indicates a report type label that is neither P&L nor Balance Sheet.
var ErrUnknownReportType = errors.New("unknown report type")

// ParseReportType accepts PL, P&L, BalanceSheet, Balance Sheet and BS in any case.
func ParseReportType(s string) (ReportType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pl", "p&l", "pnl", "profit and loss":
		return ReportPL, nil
	case "balancesheet", "balance sheet", "balance_sheet", "bs":
		return ReportBalanceSheet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
}

// Label returns the human-readable name of the report type.
func (t ReportType) Label() string {
	if t == ReportBalanceSheet {
		return "Balance Sheet"
	}
	return "P&L"
}
