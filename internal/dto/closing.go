package dto

import "github.com/shopspring/decimal"

// PreCloseCheckResult reports the state of a fiscal year ahead of closing.
// It is advisory: the close itself is not blocked on it.
type PreCloseCheckResult struct {
	CompanyID       string          `json:"companyID"`
	FiscalYear      int             `json:"fiscalYear"`
	OpenPeriods     []int           `json:"openPeriods"`
	AggregateDebit  decimal.Decimal `json:"aggregateDebit"`
	AggregateCredit decimal.Decimal `json:"aggregateCredit"`
	Balanced        bool            `json:"balanced"`
	Ready           bool            `json:"ready"`
}

// CloseYearResult reports a completed year-end close.
type CloseYearResult struct {
	EntryID         string          `json:"entryID"`
	ReferenceNumber string          `json:"referenceNumber"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	ClosedAccounts  int             `json:"closedAccounts"`
	PeriodsLocked   int             `json:"periodsLocked"`
}
