package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PeriodAggregate is the (account, period) aggregate.
// Total always equals the sum of Companies.
type PeriodAggregate struct {
	// Total is the consolidated amount across companies.
	Total decimal.Decimal `json:"total"`
	// Companies maps company name to its contribution.
	Companies map[string]decimal.Decimal `json:"companies"`
}

// NewPeriodAggregate returns a zero aggregate with no contributions.
func NewPeriodAggregate() *PeriodAggregate {
	return &PeriodAggregate{Companies: make(map[string]decimal.Decimal)}
}

// Add folds amount into the total and into the company's contribution.
func (p *PeriodAggregate) Add(company string, amount decimal.Decimal) {
	p.Total = p.Total.Add(amount)
	p.Companies[company] = p.Companies[company].Add(amount)
}

// Contribution returns the company's contribution, zero when absent.
func (p *PeriodAggregate) Contribution(company string) decimal.Decimal {
	return p.Companies[company]
}

// MarshalJSON writes Total and the contributions as exact JSON numbers.
func (p PeriodAggregate) MarshalJSON() ([]byte, error) {
	companies := make(map[string]json.Number, len(p.Companies))
	for name, amount := range p.Companies {
		companies[name] = json.Number(amount.String())
	}
	return json.Marshal(struct {
		Total     json.Number            `json:"total"`
		Companies map[string]json.Number `json:"companies"`
	}{json.Number(p.Total.String()), companies})
}

// ConsolidatedAccountRow is one output row of a consolidated report.
type ConsolidatedAccountRow struct {
	// AccountCode is the account code as a display string.
	AccountCode string `json:"accountCode"`
	// AccountName comes from the first table that introduced the code.
	AccountName string `json:"accountName"`
	// Periods maps every report period label to its aggregate.
	Periods map[string]*PeriodAggregate `json:"periods"`
}

// Period returns the aggregate for label, or a zero aggregate when absent.
func (r *ConsolidatedAccountRow) Period(label string) *PeriodAggregate {
	if p, ok := r.Periods[label]; ok {
		return p
	}
	return NewPeriodAggregate()
}

// ConsolidatedReport is the immutable result of one consolidation run.
type ConsolidatedReport struct {
	// PL lists P&L accounts in first-seen order.
	PL []*ConsolidatedAccountRow `json:"pl"`
	// BS lists Balance Sheet accounts in first-seen order.
	BS []*ConsolidatedAccountRow `json:"bs"`
	// AllAccounts is PL followed by BS.
	AllAccounts []*ConsolidatedAccountRow `json:"allAccounts"`
	// PeriodNames is the sorted list of distinct period labels.
	PeriodNames []string `json:"periodNames"`
	// CompanyNames is the sorted list of distinct company names.
	CompanyNames []string `json:"companyNames"`
}

// Rows returns the account rows of one category.
func (r *ConsolidatedReport) Rows(t ReportType) []*ConsolidatedAccountRow {
	if t == ReportBalanceSheet {
		return r.BS
	}
	return r.PL
}
