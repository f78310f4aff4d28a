package models

// AccountingPeriod is one company-month of the fiscal calendar.
type AccountingPeriod struct {
	CompanyID  string `json:"companyID"`
	FiscalYear int    `json:"fiscalYear"`
	Month      int    `json:"month"`
	IsClosed   bool   `json:"isClosed"`
	AuditFields
}
