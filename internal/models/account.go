package models

// Account is a chart-of-accounts row. Only code, name and type are consumed
// here; balances live with the hosted store.
type Account struct {
	AccountCode string `json:"accountCode"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
