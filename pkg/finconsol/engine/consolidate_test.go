package engine

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/finconsol-go/pkg/finconsol/models"
)

func row(code, name string, periods ...any) models.Row {
	r := models.Row{
		{Header: "GL Account Code", Value: models.Text(code)},
		{Header: "Raw Name", Value: models.Text(name)},
	}
	for i := 0; i+1 < len(periods); i += 2 {
		var v models.Value
		switch x := periods[i+1].(type) {
		case float64:
			v = models.Number(x)
		case int:
			v = models.Number(float64(x))
		case string:
			v = models.Text(x)
		}
		r = append(r, models.Cell{Header: periods[i].(string), Value: v})
	}
	return r
}

func table(company string, kind models.ReportType, rows ...models.Row) *models.UploadedTable {
	return &models.UploadedTable{CompanyName: company, ReportType: kind, Rows: rows}
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func assertDecimal(t *testing.T, want float64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %v, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestConsolidateTwoCompanies(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL, row("100", "Cash", "24-Jan", 50)),
		table("Beta", models.ReportPL, row("100", "Cash", "24-Jan", 30, "24-Feb", 10)),
	})

	require.Len(t, report.PL, 1)
	assert.Empty(t, report.BS)
	assert.Equal(t, []string{"24-Feb", "24-Jan"}, report.PeriodNames)
	assert.Equal(t, []string{"Acme", "Beta"}, report.CompanyNames)

	acct := report.PL[0]
	assert.Equal(t, "100", acct.AccountCode)
	assert.Equal(t, "Cash", acct.AccountName)

	jan := acct.Periods["24-Jan"]
	require.NotNil(t, jan)
	assertDecimal(t, 80, jan.Total)
	assertDecimal(t, 50, jan.Companies["Acme"])
	assertDecimal(t, 30, jan.Companies["Beta"])

	feb := acct.Periods["24-Feb"]
	require.NotNil(t, feb)
	assertDecimal(t, 10, feb.Total)
	assert.Len(t, feb.Companies, 1)
	_, hasAcme := feb.Companies["Acme"]
	assert.False(t, hasAcme)
}

func TestConsolidateEmpty(t *testing.T) {
	report := Consolidate(nil)

	assert.Empty(t, report.PL)
	assert.Empty(t, report.BS)
	assert.Empty(t, report.AllAccounts)
	assert.Empty(t, report.PeriodNames)
	assert.Empty(t, report.CompanyNames)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pl":[],"bs":[],"allAccounts":[],"periodNames":[],"companyNames":[]}`, string(data))
}

func TestConsolidateJSONAmountsAreNumbers(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL, row("100", "Cash", "24-Jan", 10.5)),
		table("Beta", models.ReportPL, row("100", "Cash", "24-Jan", 0.1)),
	})

	data, err := json.Marshal(report.PL[0].Periods["24-Jan"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":10.6,"companies":{"Acme":10.5,"Beta":0.1}}`, string(data))

	var back models.PeriodAggregate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Total.Equal(report.PL[0].Periods["24-Jan"].Total))
}

func TestConsolidateCategorySeparation(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL, row("1000000", "Revenue", "24-Jan", 5)),
		table("Acme", models.ReportBalanceSheet, row("1000000", "Cash", "24-Jan", 7)),
	})

	require.Len(t, report.PL, 1)
	require.Len(t, report.BS, 1)
	assert.Equal(t, "Revenue", report.PL[0].AccountName)
	assert.Equal(t, "Cash", report.BS[0].AccountName)
	assertDecimal(t, 5, report.PL[0].Periods["24-Jan"].Total)
	assertDecimal(t, 7, report.BS[0].Periods["24-Jan"].Total)

	require.Len(t, report.AllAccounts, 2)
	assert.Same(t, report.PL[0], report.AllAccounts[0])
	assert.Same(t, report.BS[0], report.AllAccounts[1])
}

func TestConsolidateFirstNameWins(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL, row("100", "Cash", "24-Jan", 1)),
		table("Beta", models.ReportPL, row("100", "CashOld", "24-Jan", 2)),
	})

	require.Len(t, report.PL, 1)
	assert.Equal(t, "Cash", report.PL[0].AccountName)
}

func TestConsolidateDensity(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL, row("100", "Cash", "24-Jan", 1)),
		table("Beta", models.ReportPL, row("200", "Rent", "24-Mar", 2)),
		table("Gamma", models.ReportBalanceSheet, row("300", "Debt", "25-Jan", 3)),
	})

	require.Equal(t, []string{"24-Jan", "24-Mar", "25-Jan"}, report.PeriodNames)
	for _, acct := range report.AllAccounts {
		assert.Len(t, acct.Periods, len(report.PeriodNames), acct.AccountCode)
		for _, p := range report.PeriodNames {
			agg, ok := acct.Periods[p]
			require.True(t, ok, "%s missing %s", acct.AccountCode, p)
			require.NotNil(t, agg.Companies)
		}
	}
	backfilled := report.BS[0].Periods["24-Jan"]
	assert.True(t, backfilled.Total.IsZero())
	assert.Empty(t, backfilled.Companies)
}

func TestConsolidateSumInvariant(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL,
			row("4113000", "Interest", "24-Jan", 26660.86, "24-Feb", 28046.34),
			row("4113000", "Interest dup", "24-Jan", 0.1, "24-Feb", "N/A")),
		table("Acme", models.ReportPL, row("4113000", "Interest", "24-Mar", 0.2)),
		table("Beta", models.ReportPL, row("4113000", "Interest", "24-Jan", 0.2, "24-Mar", "12abc")),
	})

	for _, acct := range report.AllAccounts {
		for label, agg := range acct.Periods {
			sum := decimal.Zero
			for _, v := range agg.Companies {
				sum = sum.Add(v)
			}
			assert.True(t, sum.Equal(agg.Total), "%s/%s: %s != %s", acct.AccountCode, label, sum, agg.Total)
		}
	}

	jan := report.PL[0].Periods["24-Jan"]
	assertDecimal(t, 26660.96, jan.Companies["Acme"])
	assertDecimal(t, 26661.16, jan.Total)
	assertDecimal(t, 12.2, report.PL[0].Periods["24-Mar"].Total)
}

func TestConsolidateNonNumericCell(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL, row("100", "Cash", "24-Jan", "N/A")),
	})

	agg := report.PL[0].Periods["24-Jan"]
	assert.True(t, agg.Total.IsZero())
	contribution, ok := agg.Companies["Acme"]
	assert.True(t, ok)
	assert.True(t, contribution.IsZero())
}

func TestConsolidateEmptyTableRegistersCompany(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Zeta", models.ReportBalanceSheet),
		table("Acme", models.ReportPL, row("100", "Cash")),
	})

	assert.Equal(t, []string{"Acme", "Zeta"}, report.CompanyNames)
	require.Len(t, report.PL, 1)
	assert.Empty(t, report.PL[0].Periods)
	assert.Empty(t, report.PeriodNames)
}

func TestConsolidateBlankColumnRegistersPeriod(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL,
			row("100", "Cash", "24-Jan", 5, "24-Feb", ""),
			row("200", "Rent", "24-Jan", 6, "24-Feb", "")),
	})

	assert.Equal(t, []string{"24-Feb", "24-Jan"}, report.PeriodNames)
	for _, acct := range report.PL {
		assert.True(t, acct.Periods["24-Feb"].Total.IsZero())
	}
}

func TestConsolidatePositionalColumns(t *testing.T) {
	// Header text is irrelevant; only position decides the role.
	r := models.Row{
		{Header: "2024", Value: models.Number(7)},
		{Header: "Code", Value: models.Text("Seven")},
		{Header: "Name", Value: models.Number(3)},
	}
	report := Consolidate([]*models.UploadedTable{table("Acme", models.ReportPL, r)})

	require.Len(t, report.PL, 1)
	assert.Equal(t, "7", report.PL[0].AccountCode)
	assert.Equal(t, "Seven", report.PL[0].AccountName)
	assert.Equal(t, []string{"Name"}, report.PeriodNames)
	assertDecimal(t, 3, report.PL[0].Periods["Name"].Total)
}

func TestConsolidateInsertionOrder(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{
		table("Acme", models.ReportPL, row("300", "C"), row("100", "A")),
		table("Beta", models.ReportPL, row("200", "B"), row("300", "C")),
	})

	var codes []string
	for _, acct := range report.PL {
		codes = append(codes, acct.AccountCode)
	}
	assert.Equal(t, []string{"300", "100", "200"}, codes)
}

func TestConsolidateIdempotent(t *testing.T) {
	tables := []*models.UploadedTable{
		table("Acme", models.ReportPL, row("100", "Cash", "24-Jan", 50)),
		table("Beta", models.ReportBalanceSheet, row("200", "Debt", "24-Feb", 10.5)),
	}

	first, err := json.Marshal(Consolidate(tables))
	require.NoError(t, err)
	second, err := json.Marshal(Consolidate(tables))
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestConsolidateDoesNotMutateInput(t *testing.T) {
	tables := []*models.UploadedTable{
		table("Acme", models.ReportPL, row("100", "Cash", "24-Jan", 50)),
	}
	Consolidate(tables)

	assert.Equal(t, row("100", "Cash", "24-Jan", 50), tables[0].Rows[0])
}

func TestConsolidateSkipsNilTables(t *testing.T) {
	report := Consolidate([]*models.UploadedTable{nil, table("Acme", models.ReportPL, row("1", "X", "P", 1))})

	assert.Equal(t, []string{"Acme"}, report.CompanyNames)
	assert.Len(t, report.PL, 1)
}
