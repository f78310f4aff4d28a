package domain

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a chart-of-accounts entry. The pipeline only needs the code, name
// and type; balances and hierarchy live with the hosted store.
type Account struct {
	AccountCode string      `json:"accountCode"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// NormalBalanceSide returns the entry type that increases an account of the
// given type: debit for assets/expenses, credit for the rest.
func NormalBalanceSide(t AccountType) EntryType {
	switch t {
	case Asset, Expense:
		return Debit
	default:
		return Credit
	}
}

// IsClosable reports whether the account type participates in the year-end
// close (revenue and expense accounts are netted to retained earnings).
func IsClosable(t AccountType) bool {
	return t == Revenue || t == Expense
}
