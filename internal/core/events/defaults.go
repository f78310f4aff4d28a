package events

import (
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// globalDefaultAccounts maps each semantic account role to the operating
// group's shared chart-of-accounts code. Per-company overrides from
// JournalEventSetting take precedence; this table is the last resort before a
// line is declared unresolvable.
var globalDefaultAccounts = map[domain.AccountRole]string{
	domain.RoleCash:                   "1010",
	domain.RoleBank:                   "1020",
	domain.RoleAccountsReceivable:     "1210",
	domain.RoleVATReceivable:          "1360",
	domain.RoleIntercompanyReceivable: "1410",
	domain.RoleAccountsPayable:        "2010",
	domain.RolePayrollPayable:         "2110",
	domain.RoleVATPayable:             "2310",
	domain.RoleWHTPayable:             "2320",
	domain.RoleIntercompanyPayable:    "2410",
	domain.RoleDeferredRevenue:        "2510",
	domain.RolePartnerPayable:         "2610",
	domain.RoleOwnerEquity:            "3010",
	domain.RoleRetainedEarnings:       "3200",
	domain.RoleRevenue:                "4010",
	domain.RoleExpense:                "5010",
}

// DefaultAccountForRole returns the global fallback code for a role.
func DefaultAccountForRole(role domain.AccountRole) (string, bool) {
	code, ok := globalDefaultAccounts[role]
	return code, ok
}

// ResolveAccountCode fills an unset line account code, preferring the
// company+event-type setting override for the line's entry side, then the
// global role default. A line that still has no code is a configuration error.
func ResolveAccountCode(line domain.SpecLine, setting domain.JournalEventSetting) (string, error) {
	if line.AccountCode != "" {
		return line.AccountCode, nil
	}
	if line.EntryType == domain.Debit && setting.DefaultDebitAccount != nil && *setting.DefaultDebitAccount != "" {
		return *setting.DefaultDebitAccount, nil
	}
	if line.EntryType == domain.Credit && setting.DefaultCreditAccount != nil && *setting.DefaultCreditAccount != "" {
		return *setting.DefaultCreditAccount, nil
	}
	if code, ok := globalDefaultAccounts[line.Role]; ok {
		return code, nil
	}
	return "", fmt.Errorf("%w: no account for role %s (%s line) in company %s",
		apperrors.ErrAccountResolution, line.Role, line.EntryType, setting.CompanyID)
}
