package accounting

import (
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance is the maximum permitted difference between total debits and total
// credits of a journal, expressed in currency minor units.
var Tolerance = decimal.NewFromFloat(0.01)

// WithinTolerance reports whether two amounts are equal within Tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// CalculateSignedAmount applies the correct sign to a line amount based on the
// account's type and the posting direction.
// DEBIT to ASSET/EXPENSE -> positive, CREDIT to ASSET/EXPENSE -> negative,
// DEBIT to LIABILITY/EQUITY/REVENUE -> negative, CREDIT -> positive.
func CalculateSignedAmount(line domain.JournalEntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount
	isDebit := line.EntryType == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account code %s", accountType, line.AccountCode)
	}
	return signedAmount, nil
}

// ValidateSpecBalance checks that a generated journal spec has positive line
// amounts and that debits equal credits within Tolerance.
func ValidateSpecBalance(spec domain.JournalSpec) error {
	if len(spec.Lines) < 2 {
		return fmt.Errorf("journal for company %s must have at least two lines", spec.CompanyID)
	}
	for _, line := range spec.Lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("line amount must be positive for account role %s in company %s", line.Role, spec.CompanyID)
		}
	}
	debits := spec.TotalDebits()
	credits := spec.TotalCredits()
	if !WithinTolerance(debits, credits) {
		return fmt.Errorf("company %s: debits sum is %s and credits sum is %s", spec.CompanyID, debits.String(), credits.String())
	}
	return nil
}

// SumLineTotals returns the debit and credit totals of persisted-form lines.
func SumLineTotals(lines []domain.JournalEntryLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, line := range lines {
		if line.EntryType == domain.Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	return debits, credits
}
