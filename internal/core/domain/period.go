package domain

// AccountingPeriod is one company-month of the fiscal calendar. Closed periods
// reject new postings; the year-end close locks all twelve months of a year.
type AccountingPeriod struct {
	CompanyID  string `json:"companyID"`
	FiscalYear int    `json:"fiscalYear"`
	Month      int    `json:"month"` // 1..12
	IsClosed   bool   `json:"isClosed"`
	AuditFields
}
