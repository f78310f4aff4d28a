package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseLineItem is one category line of an approved expense.
type ExpenseLineItem struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	AccountCode string          `json:"accountCode,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// ExpenseApprovedPayload is the document behind an EXPENSE_APPROVED event.
type ExpenseApprovedPayload struct {
	ExpenseNumber string            `json:"expenseNumber"`
	VendorName    string            `json:"vendorName"`
	Lines         []ExpenseLineItem `json:"lines"`
	VATAmount     decimal.Decimal   `json:"vatAmount"`
}

// expenseApprovedHandler posts an approved vendor expense: debit each category
// line plus input VAT, credit accounts payable for the grand total.
type expenseApprovedHandler struct{}

func (expenseApprovedHandler) Validate(raw json.RawMessage) error {
	var p ExpenseApprovedPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.ExpenseNumber == "" {
		return fmt.Errorf("%w: expenseNumber is required", apperrors.ErrValidation)
	}
	if len(p.Lines) == 0 {
		return fmt.Errorf("%w: expense must have at least one line item", apperrors.ErrValidation)
	}
	for i, line := range p.Lines {
		if line.Amount.IsNegative() {
			return fmt.Errorf("%w: line item %d amount must not be negative", apperrors.ErrValidation, i+1)
		}
	}
	if p.VATAmount.IsNegative() {
		return fmt.Errorf("%w: vatAmount must not be negative", apperrors.ErrValidation)
	}
	total := p.VATAmount
	for _, line := range p.Lines {
		total = total.Add(line.Amount)
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: expense total must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (expenseApprovedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p ExpenseApprovedPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}

	spec := domain.JournalSpec{
		CompanyID:   companyID,
		Description: fmt.Sprintf("Expense approved %s (%s)", p.ExpenseNumber, p.VendorName),
	}
	grandTotal := decimal.Zero
	for _, line := range p.Lines {
		if line.Amount.IsZero() {
			continue
		}
		spec.Lines = append(spec.Lines, domain.SpecLine{
			AccountCode: line.AccountCode,
			Role:        domain.RoleExpense,
			EntryType:   domain.Debit,
			Amount:      line.Amount,
			Description: line.Description,
		})
		grandTotal = grandTotal.Add(line.Amount)
	}
	if p.VATAmount.IsPositive() {
		spec.Lines = append(spec.Lines, domain.SpecLine{
			Role:        domain.RoleVATReceivable,
			EntryType:   domain.Debit,
			Amount:      p.VATAmount,
			Description: "Input VAT on expense " + p.ExpenseNumber,
		})
		grandTotal = grandTotal.Add(p.VATAmount)
	}
	spec.Lines = append(spec.Lines, domain.SpecLine{
		Role:        domain.RoleAccountsPayable,
		EntryType:   domain.Credit,
		Amount:      grandTotal,
		Description: "Payable to " + p.VendorName,
	})
	return []domain.JournalSpec{spec}, nil
}

// PaymentMethodBank and PaymentMethodCash are the supported expense payment channels.
const (
	PaymentMethodBank = "BANK"
	PaymentMethodCash = "CASH"
)

// ExpensePaidPayload is the document behind an EXPENSE_PAID event.
type ExpensePaidPayload struct {
	ExpenseNumber   string          `json:"expenseNumber"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
}

// expensePaidHandler clears the payable raised at approval against bank or cash.
type expensePaidHandler struct{}

func (expensePaidHandler) Validate(raw json.RawMessage) error {
	var p ExpensePaidPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.ExpenseNumber == "" {
		return fmt.Errorf("%w: expenseNumber is required", apperrors.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	switch p.PaymentMethod {
	case PaymentMethodBank:
		if p.BankAccountCode == "" {
			return fmt.Errorf("%w: bankAccountCode is required when paymentMethod is BANK", apperrors.ErrValidation)
		}
	case PaymentMethodCash:
	default:
		return fmt.Errorf("%w: paymentMethod must be BANK or CASH", apperrors.ErrValidation)
	}
	return nil
}

func (expensePaidHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p ExpensePaidPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}

	creditLine := domain.SpecLine{
		EntryType:   domain.Credit,
		Amount:      p.Amount,
		Description: "Payment of expense " + p.ExpenseNumber,
	}
	if p.PaymentMethod == PaymentMethodBank {
		creditLine.AccountCode = p.BankAccountCode
		creditLine.Role = domain.RoleBank
	} else {
		creditLine.Role = domain.RoleCash
	}

	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: fmt.Sprintf("Expense %s paid", p.ExpenseNumber),
		Lines: []domain.SpecLine{
			{
				Role:        domain.RoleAccountsPayable,
				EntryType:   domain.Debit,
				Amount:      p.Amount,
				Description: "Settle payable for expense " + p.ExpenseNumber,
			},
			creditLine,
		},
	}}, nil
}
