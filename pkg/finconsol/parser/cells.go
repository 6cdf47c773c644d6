// Package parser reads workbook and CSV sources into ordered rows.
package parser

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoHeader indicates the sheet has no non-empty row to use as header.
var ErrNoHeader = errors.New("no header row")

// Grid holds the text of a sheet twice: as displayed, and as stored.
// Headers are read from Formatted so date headers keep their label;
// data cells are read from Raw so amounts keep full precision.
type Grid struct {
	Formatted [][]string
	Raw       [][]string
}

// ReadSheet reads the formatted and raw cell text of a sheet.
func ReadSheet(f *excelize.File, sheetName string) (*Grid, error) {
	formatted, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return &Grid{Formatted: formatted, Raw: raw}, nil
}

// ExtractRows turns a grid into ordered rows keyed by the header row.
// The header is the first non-empty row inside area (or the data bounds
// when area is nil). Every later row with at least one non-empty cell
// becomes a Row holding one cell per header, blanks included.
func ExtractRows(g *Grid, area *Bounds) ([]models.Row, error) {
	b, ok := findDataBounds(g.Raw)
	if !ok {
		return nil, ErrNoHeader
	}
	if area != nil {
		if b, ok = b.intersect(*area); !ok {
			return nil, ErrNoHeader
		}
	}

	headerIdx := -1
	for r := b.MinRow; r <= b.MaxRow; r++ {
		if !rowBlank(g.Raw, r, b) {
			headerIdx = r
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrNoHeader
	}

	labels := make([]string, 0, b.MaxCol-b.MinCol+1)
	for c := b.MinCol; c <= b.MaxCol; c++ {
		labels = append(labels, cellAt(g.Formatted, headerIdx, c))
	}
	headers := NormalizeHeaders(labels)

	var result []models.Row
	for r := headerIdx + 1; r <= b.MaxRow; r++ {
		if rowBlank(g.Raw, r, b) {
			continue
		}
		row := make(models.Row, len(headers))
		for i, h := range headers {
			row[i] = models.Cell{Header: h, Value: ParseValue(cellAt(g.Raw, r, b.MinCol+i))}
		}
		result = append(result, row)
	}

	return result, nil
}

func cellAt(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}

func rowBlank(rows [][]string, r int, b Bounds) bool {
	for c := b.MinCol; c <= b.MaxCol; c++ {
		if cellAt(rows, r, c) != "" {
			return false
		}
	}
	return true
}

var groupedDigits = regexp.MustCompile(`(\d),(\d)`)

// ParseValue attempts to parse a string value as a number.
// Text with a leading zero such as "0012" stays text so codes keep
// their digits; so does anything that parses to NaN or infinity.
// Formatted amounts like "$1,234.56" or "5%" are read as numbers.
func ParseValue(s string) models.Value {
	if hasLeadingZero(s) {
		return models.Text(s)
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// Try float
	if f, ok := parseFloat(s); ok {
		return models.Number(f)
	}
	if f, ok := parseFormatted(s); ok {
		return models.Number(f)
	}
	// Return as string
	return models.Text(s)
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseFormatted strips currency signs, digit group separators and
// trailing percent signs, each percent dividing by 100.
func parseFormatted(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	percents := 0
	for strings.HasSuffix(t, "%") {
		percents++
		t = strings.TrimSpace(strings.TrimSuffix(t, "%"))
	}
	t = strings.ReplaceAll(t, "$", "")
	t = groupedDigits.ReplaceAllString(t, "${1}${2}")
	if t == s || t == "" || hasLeadingZero(t) {
		return 0, false
	}
	f, ok := parseFloat(t)
	if !ok {
		return 0, false
	}
	for ; percents > 0; percents-- {
		f /= 100
	}
	return f, true
}

func hasLeadingZero(s string) bool {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
