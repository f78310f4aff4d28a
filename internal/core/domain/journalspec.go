package domain

import "github.com/shopspring/decimal"

// AccountRole names the semantic slot a journal line fills. Lines generated by
// event handlers carry a role so that unset account codes can be substituted
// from per-company settings or the global default table without touching
// handler code.
type AccountRole string

const (
	RoleCash                   AccountRole = "CASH"
	RoleBank                   AccountRole = "BANK"
	RoleVATReceivable          AccountRole = "VAT_RECEIVABLE"
	RoleVATPayable             AccountRole = "VAT_PAYABLE"
	RoleAccountsPayable        AccountRole = "ACCOUNTS_PAYABLE"
	RoleAccountsReceivable     AccountRole = "ACCOUNTS_RECEIVABLE"
	RoleDeferredRevenue        AccountRole = "DEFERRED_REVENUE"
	RoleIntercompanyPayable    AccountRole = "INTERCOMPANY_PAYABLE"
	RoleIntercompanyReceivable AccountRole = "INTERCOMPANY_RECEIVABLE"
	RolePartnerPayable         AccountRole = "PARTNER_PAYABLE"
	RoleRetainedEarnings       AccountRole = "RETAINED_EARNINGS"
	RoleRevenue                AccountRole = "REVENUE"
	RoleExpense                AccountRole = "EXPENSE"
	RolePayrollPayable         AccountRole = "PAYROLL_PAYABLE"
	RoleWHTPayable             AccountRole = "WHT_PAYABLE"
	RoleOwnerEquity            AccountRole = "OWNER_EQUITY"
)

// SpecLine is one prospective posting inside a JournalSpec. AccountCode may be
// empty, in which case the pipeline resolves it from the line's Role.
type SpecLine struct {
	AccountCode string
	Role        AccountRole
	EntryType   EntryType
	Amount      decimal.Decimal
	Description string
}

// JournalSpec is the pure output of an event handler: one prospective journal
// entry for one company. Handlers never touch the store; the pipeline turns
// balanced specs into persisted entries.
type JournalSpec struct {
	CompanyID   string
	Description string
	Lines       []SpecLine
}

// TotalDebits sums the debit lines of the spec.
func (s JournalSpec) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		if l.EntryType == Debit {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// TotalCredits sums the credit lines of the spec.
func (s JournalSpec) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		if l.EntryType == Credit {
			total = total.Add(l.Amount)
		}
	}
	return total
}
