package engine

import (
	"math"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

const (
	codeColumn        = 0
	nameColumn        = 1
	firstPeriodColumn = 2
)

// missingCell is the display form of a code or name column absent from a row.
const missingCell = "undefined"

// leadingNumber matches the longest numeric prefix of a cell, after leading whitespace.
var leadingNumber = regexp.MustCompile(`^[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// AccountCode returns the display string of the first column of row.
func AccountCode(row models.Row) string {
	return columnString(row, codeColumn)
}

// AccountName returns the display string of the second column of row.
func AccountName(row models.Row) string {
	return columnString(row, nameColumn)
}

func columnString(row models.Row, i int) string {
	c, ok := row.At(i)
	if !ok {
		return missingCell
	}
	return c.Value.String()
}

// CoerceAmount converts a raw cell to an amount.
// Strings contribute their leading numeric prefix; anything unparsable,
// empty, NaN or infinite is zero.
func CoerceAmount(v models.Value) decimal.Decimal {
	if v.IsNum {
		return finite(v.Num)
	}
	m := leadingNumber.FindStringSubmatch(v.Str)
	if m == nil {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return decimal.Zero
	}
	return finite(f)
}

func finite(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// accountSet keeps account rows of one report category in first-seen order.
type accountSet struct {
	byCode map[string]*models.ConsolidatedAccountRow
	order  []*models.ConsolidatedAccountRow
}

func newAccountSet() *accountSet {
	return &accountSet{byCode: make(map[string]*models.ConsolidatedAccountRow)}
}

// introduce returns the row for code, creating it with name on first sight.
// An existing row keeps its name: the first writer wins.
func (s *accountSet) introduce(code, name string) *models.ConsolidatedAccountRow {
	if row, ok := s.byCode[code]; ok {
		return row
	}
	row := &models.ConsolidatedAccountRow{
		AccountCode: code,
		AccountName: name,
		Periods:     make(map[string]*models.PeriodAggregate),
	}
	s.byCode[code] = row
	s.order = append(s.order, row)
	return row
}
