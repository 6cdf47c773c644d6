// Package engine merges ingested tables into a consolidated report.
package engine

import (
	"sort"

	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

// consolidation holds the accumulators of a single Consolidate call.
type consolidation struct {
	pl        *accountSet
	bs        *accountSet
	periods   map[string]struct{}
	companies map[string]struct{}
}

// Consolidate merges tables into a report with one row per account code
// per category and a dense period grid. It never fails: malformed cells
// degrade to zero amounts and "undefined" labels.
func Consolidate(tables []*models.UploadedTable) *models.ConsolidatedReport {
	c := &consolidation{
		pl:        newAccountSet(),
		bs:        newAccountSet(),
		periods:   make(map[string]struct{}),
		companies: make(map[string]struct{}),
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		c.fold(t)
	}
	return c.report()
}

func (c *consolidation) fold(t *models.UploadedTable) {
	c.companies[t.CompanyName] = struct{}{}

	target := c.pl
	if t.ReportType == models.ReportBalanceSheet {
		target = c.bs
	}

	for _, row := range t.Rows {
		account := target.introduce(AccountCode(row), AccountName(row))
		for i := firstPeriodColumn; i < len(row); i++ {
			label := row[i].Header
			c.periods[label] = struct{}{}
			agg, ok := account.Periods[label]
			if !ok {
				agg = models.NewPeriodAggregate()
				account.Periods[label] = agg
			}
			agg.Add(t.CompanyName, CoerceAmount(row[i].Value))
		}
	}
}

func (c *consolidation) report() *models.ConsolidatedReport {
	periods := sortedKeys(c.periods)
	companies := sortedKeys(c.companies)

	pl := densify(c.pl.order, periods)
	bs := densify(c.bs.order, periods)

	all := make([]*models.ConsolidatedAccountRow, 0, len(pl)+len(bs))
	all = append(all, pl...)
	all = append(all, bs...)

	return &models.ConsolidatedReport{
		PL:           pl,
		BS:           bs,
		AllAccounts:  all,
		PeriodNames:  periods,
		CompanyNames: companies,
	}
}

// densify backfills a zero aggregate for every period a row lacks.
func densify(rows []*models.ConsolidatedAccountRow, periods []string) []*models.ConsolidatedAccountRow {
	out := make([]*models.ConsolidatedAccountRow, 0, len(rows))
	for _, row := range rows {
		for _, p := range periods {
			if _, ok := row.Periods[p]; !ok {
				row.Periods[p] = models.NewPeriodAggregate()
			}
		}
		out = append(out, row)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
