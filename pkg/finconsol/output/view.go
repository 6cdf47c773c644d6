package output

import (
	"slices"
	"strings"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

// VisiblePeriods returns the periods from start to end inclusive, in report
// order. When either bound is empty, unknown, or start comes after end,
// every period is visible.
func VisiblePeriods(all []string, start, end string) []string {
	if start == "" || end == "" {
		return all
	}
	i := slices.Index(all, start)
	j := slices.Index(all, end)
	if i < 0 || j < 0 || i > j {
		return all
	}
	return all[i : j+1]
}

// YearPreset returns the first and last periods whose label starts with
// prefix, such as "24" for 2024.
func YearPreset(all []string, prefix string) (start, end string, ok bool) {
	for _, p := range all {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		if !ok {
			start, ok = p, true
		}
		end = p
	}
	return start, end, ok
}

// ViewOptions selects what a report view shows.
type ViewOptions struct {
	// From and To bound the visible periods (see VisiblePeriods).
	From, To string
	// Expanded lists periods broken down per company.
	Expanded []string
	// ExpandAll breaks every visible period down per company.
	ExpandAll bool
}

// column is one amount column of a rendered table.
type column struct {
	period  string
	company string // empty for the period total
}

func (c column) total() bool { return c.company == "" }

// amount returns the value shown in this column for row.
func (c column) amount(row *models.ConsolidatedAccountRow) string {
	agg := row.Period(c.period)
	if c.total() {
		return FormatAmount(agg.Total)
	}
	return FormatAmount(agg.Contribution(c.company))
}

// layout returns the amount columns for report under opts.
func layout(report *models.ConsolidatedReport, opts ViewOptions) []column {
	var cols []column
	for _, p := range VisiblePeriods(report.PeriodNames, opts.From, opts.To) {
		if opts.ExpandAll || slices.Contains(opts.Expanded, p) {
			for _, c := range report.CompanyNames {
				cols = append(cols, column{period: p, company: c})
			}
		}
		cols = append(cols, column{period: p})
	}
	return cols
}

// Title returns the heading of a report category.
func Title(kind models.ReportType) string {
	if kind == models.ReportBalanceSheet {
		return "Consolidated Balance Sheet"
	}
	return "Consolidated Profit & Loss Statement"
}

// EmptyMessage is shown instead of a table with no accounts.
func EmptyMessage(kind models.ReportType) string {
	return "No " + kind.Label() + " data to display."
}
