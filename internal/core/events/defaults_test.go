package events_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/core/events"
)

func TestDefaultAccountForRoleCoversEveryRole(t *testing.T) {
	roles := []domain.AccountRole{
		domain.RoleCash, domain.RoleBank, domain.RoleAccountsReceivable,
		domain.RoleVATReceivable, domain.RoleIntercompanyReceivable,
		domain.RoleAccountsPayable, domain.RolePayrollPayable, domain.RoleVATPayable,
		domain.RoleWHTPayable, domain.RoleIntercompanyPayable, domain.RoleDeferredRevenue,
		domain.RolePartnerPayable, domain.RoleOwnerEquity, domain.RoleRetainedEarnings,
		domain.RoleRevenue, domain.RoleExpense,
	}
	for _, role := range roles {
		code, ok := events.DefaultAccountForRole(role)
		assert.True(t, ok, "no default for role %s", role)
		assert.NotEmpty(t, code)
	}

	_, ok := events.DefaultAccountForRole("NOT_A_ROLE")
	assert.False(t, ok)
}

func TestResolveAccountCodePrecedence(t *testing.T) {
	debitOverride := "5999"
	creditOverride := "4999"
	setting := domain.JournalEventSetting{
		CompanyID:            "CO-A",
		EventType:            domain.EventExpenseApproved,
		IsEnabled:            true,
		DefaultDebitAccount:  &debitOverride,
		DefaultCreditAccount: &creditOverride,
	}
	amount := decimal.NewFromInt(100)

	t.Run("explicit line code wins", func(t *testing.T) {
		line := domain.SpecLine{AccountCode: "5123", Role: domain.RoleExpense, EntryType: domain.Debit, Amount: amount}
		code, err := events.ResolveAccountCode(line, setting)
		require.NoError(t, err)
		assert.Equal(t, "5123", code)
	})

	t.Run("setting override beats global default", func(t *testing.T) {
		debit := domain.SpecLine{Role: domain.RoleExpense, EntryType: domain.Debit, Amount: amount}
		code, err := events.ResolveAccountCode(debit, setting)
		require.NoError(t, err)
		assert.Equal(t, debitOverride, code)

		credit := domain.SpecLine{Role: domain.RoleAccountsPayable, EntryType: domain.Credit, Amount: amount}
		code, err = events.ResolveAccountCode(credit, setting)
		require.NoError(t, err)
		assert.Equal(t, creditOverride, code)
	})

	t.Run("global default when nothing overrides", func(t *testing.T) {
		plain := domain.DefaultJournalEventSetting("CO-A", domain.EventExpenseApproved)
		line := domain.SpecLine{Role: domain.RoleAccountsPayable, EntryType: domain.Credit, Amount: amount}
		code, err := events.ResolveAccountCode(line, plain)
		require.NoError(t, err)
		assert.Equal(t, "2010", code)
	})

	t.Run("empty override falls through", func(t *testing.T) {
		empty := ""
		withEmpty := domain.DefaultJournalEventSetting("CO-A", domain.EventExpenseApproved)
		withEmpty.DefaultDebitAccount = &empty
		line := domain.SpecLine{Role: domain.RoleExpense, EntryType: domain.Debit, Amount: amount}
		code, err := events.ResolveAccountCode(line, withEmpty)
		require.NoError(t, err)
		assert.Equal(t, "5010", code)
	})

	t.Run("unknown role is unresolvable", func(t *testing.T) {
		plain := domain.DefaultJournalEventSetting("CO-A", domain.EventExpenseApproved)
		line := domain.SpecLine{Role: "NOT_A_ROLE", EntryType: domain.Debit, Amount: amount}
		_, err := events.ResolveAccountCode(line, plain)
		assert.ErrorIs(t, err, apperrors.ErrAccountResolution)
	})
}
