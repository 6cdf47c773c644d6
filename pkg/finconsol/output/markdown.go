package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

const totalLabel = "TOTAL"

// Markdown renders one report category as a markdown section.
// Expanded periods get one column per company before their TOTAL column.
func Markdown(report *models.ConsolidatedReport, kind models.ReportType, opts ViewOptions) string {
	var b strings.Builder
	b.WriteString("## " + Title(kind) + "\n\n")

	rows := report.Rows(kind)
	if len(rows) == 0 {
		b.WriteString(EmptyMessage(kind) + "\n")
		return b.String()
	}

	cols := layout(report, opts)
	header := []string{"Account Code", "Account Name"}
	align := []string{"---", "---"}
	for _, c := range cols {
		if c.total() {
			header = append(header, c.period+" "+totalLabel)
		} else {
			header = append(header, c.period+" "+c.company)
		}
		align = append(align, "---:")
	}
	writeRow(&b, header)
	writeRow(&b, align)

	for _, row := range rows {
		cells := []string{row.AccountCode, row.AccountName}
		for _, c := range cols {
			cells = append(cells, c.amount(row))
		}
		writeRow(&b, cells)
	}
	return b.String()
}

// MarkdownReport renders both categories, P&L first.
func MarkdownReport(report *models.ConsolidatedReport, opts ViewOptions) string {
	return Markdown(report, models.ReportPL, opts) + "\n" + Markdown(report, models.ReportBalanceSheet, opts)
}

// RenderTerminal styles markdown for a terminal with the named glamour style
// (dark, light, notty, ascii, auto).
func RenderTerminal(md, style string) (string, error) {
	if style == "" {
		style = "auto"
	}
	return glamour.Render(md, style)
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" " + escapeCell(c) + " |")
	}
	b.WriteString("\n")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
