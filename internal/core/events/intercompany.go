package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Paired event types always touch exactly two companies with fixed, named
// roles. The handler emits one spec per role with identical amounts: whichever
// side records a payable, the other records the mirrored receivable or bank
// movement, same date, same amount.

func validatePair(payingID, receivingID string, amount decimal.Decimal) error {
	if payingID == "" || receivingID == "" {
		return fmt.Errorf("%w: both company roles are required", apperrors.ErrValidation)
	}
	if payingID == receivingID {
		return fmt.Errorf("%w: paired event companies must differ", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// ManagementFeePayload charges a management fee from the managing company to a
// project company.
type ManagementFeePayload struct {
	PayingCompanyID   string          `json:"payingCompanyID"`
	ManagingCompanyID string          `json:"managingCompanyID"`
	Amount            decimal.Decimal `json:"amount"`
	FeeDescription    string          `json:"feeDescription,omitempty"`
}

type managementFeeHandler struct{}

func (managementFeeHandler) Validate(raw json.RawMessage) error {
	var p ManagementFeePayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	return validatePair(p.PayingCompanyID, p.ManagingCompanyID, p.Amount)
}

func (managementFeeHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p ManagementFeePayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	desc := p.FeeDescription
	if desc == "" {
		desc = "Management fee"
	}
	return []domain.JournalSpec{
		{
			CompanyID:   p.PayingCompanyID,
			Description: desc + " charged by " + p.ManagingCompanyID,
			Lines: []domain.SpecLine{
				{Role: domain.RoleExpense, EntryType: domain.Debit, Amount: p.Amount, Description: desc},
				{Role: domain.RoleIntercompanyPayable, EntryType: domain.Credit, Amount: p.Amount, Description: "Due to " + p.ManagingCompanyID},
			},
		},
		{
			CompanyID:   p.ManagingCompanyID,
			Description: desc + " charged to " + p.PayingCompanyID,
			Lines: []domain.SpecLine{
				{Role: domain.RoleIntercompanyReceivable, EntryType: domain.Debit, Amount: p.Amount, Description: "Due from " + p.PayingCompanyID},
				{Role: domain.RoleRevenue, EntryType: domain.Credit, Amount: p.Amount, Description: desc + " income"},
			},
		},
	}, nil
}

// IntercompanySettlementPayload settles an open intercompany balance in cash.
type IntercompanySettlementPayload struct {
	PayingCompanyID      string          `json:"payingCompanyID"`
	ReceivingCompanyID   string          `json:"receivingCompanyID"`
	Amount               decimal.Decimal `json:"amount"`
	PayingBankAccount    string          `json:"payingBankAccount,omitempty"`
	ReceivingBankAccount string          `json:"receivingBankAccount,omitempty"`
}

type intercompanySettlementHandler struct{}

func (intercompanySettlementHandler) Validate(raw json.RawMessage) error {
	var p IntercompanySettlementPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	return validatePair(p.PayingCompanyID, p.ReceivingCompanyID, p.Amount)
}

func (intercompanySettlementHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p IntercompanySettlementPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	return []domain.JournalSpec{
		{
			CompanyID:   p.PayingCompanyID,
			Description: "Intercompany settlement to " + p.ReceivingCompanyID,
			Lines: []domain.SpecLine{
				{Role: domain.RoleIntercompanyPayable, EntryType: domain.Debit, Amount: p.Amount, Description: "Settle balance due to " + p.ReceivingCompanyID},
				{AccountCode: p.PayingBankAccount, Role: domain.RoleBank, EntryType: domain.Credit, Amount: p.Amount, Description: "Transfer out"},
			},
		},
		{
			CompanyID:   p.ReceivingCompanyID,
			Description: "Intercompany settlement from " + p.PayingCompanyID,
			Lines: []domain.SpecLine{
				{AccountCode: p.ReceivingBankAccount, Role: domain.RoleBank, EntryType: domain.Debit, Amount: p.Amount, Description: "Transfer in"},
				{Role: domain.RoleIntercompanyReceivable, EntryType: domain.Credit, Amount: p.Amount, Description: "Clear balance due from " + p.PayingCompanyID},
			},
		},
	}, nil
}

// IntercompanyReceiptPayload records cash collected by one company on behalf
// of a sister company whose customer receivable is being settled.
type IntercompanyReceiptPayload struct {
	CollectingCompanyID  string          `json:"collectingCompanyID"`
	BeneficiaryCompanyID string          `json:"beneficiaryCompanyID"`
	Amount               decimal.Decimal `json:"amount"`
	BankAccountCode      string          `json:"bankAccountCode,omitempty"`
}

type intercompanyReceiptHandler struct{}

func (intercompanyReceiptHandler) Validate(raw json.RawMessage) error {
	var p IntercompanyReceiptPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	return validatePair(p.CollectingCompanyID, p.BeneficiaryCompanyID, p.Amount)
}

func (intercompanyReceiptHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p IntercompanyReceiptPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	return []domain.JournalSpec{
		{
			CompanyID:   p.CollectingCompanyID,
			Description: "Collected on behalf of " + p.BeneficiaryCompanyID,
			Lines: []domain.SpecLine{
				{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Debit, Amount: p.Amount, Description: "Cash collected"},
				{Role: domain.RoleIntercompanyPayable, EntryType: domain.Credit, Amount: p.Amount, Description: "Owed to " + p.BeneficiaryCompanyID},
			},
		},
		{
			CompanyID:   p.BeneficiaryCompanyID,
			Description: "Receipt collected by " + p.CollectingCompanyID,
			Lines: []domain.SpecLine{
				{Role: domain.RoleIntercompanyReceivable, EntryType: domain.Debit, Amount: p.Amount, Description: "Due from " + p.CollectingCompanyID},
				{Role: domain.RoleAccountsReceivable, EntryType: domain.Credit, Amount: p.Amount, Description: "Customer receivable settled"},
			},
		},
	}, nil
}

// IntercompanyExpensePayload records one company paying an expense that
// belongs to a sister company.
type IntercompanyExpensePayload struct {
	PayingCompanyID string          `json:"payingCompanyID"`
	OwingCompanyID  string          `json:"owingCompanyID"`
	Amount          decimal.Decimal `json:"amount"`
	ExpenseDesc     string          `json:"expenseDescription,omitempty"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
}

type intercompanyExpenseHandler struct{}

func (intercompanyExpenseHandler) Validate(raw json.RawMessage) error {
	var p IntercompanyExpensePayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	return validatePair(p.PayingCompanyID, p.OwingCompanyID, p.Amount)
}

func (intercompanyExpenseHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p IntercompanyExpensePayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	desc := p.ExpenseDesc
	if desc == "" {
		desc = "Expense"
	}
	return []domain.JournalSpec{
		{
			CompanyID:   p.PayingCompanyID,
			Description: desc + " paid on behalf of " + p.OwingCompanyID,
			Lines: []domain.SpecLine{
				{Role: domain.RoleIntercompanyReceivable, EntryType: domain.Debit, Amount: p.Amount, Description: "Due from " + p.OwingCompanyID},
				{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Credit, Amount: p.Amount, Description: desc + " paid"},
			},
		},
		{
			CompanyID:   p.OwingCompanyID,
			Description: desc + " paid by " + p.PayingCompanyID,
			Lines: []domain.SpecLine{
				{Role: domain.RoleExpense, EntryType: domain.Debit, Amount: p.Amount, Description: desc},
				{Role: domain.RoleIntercompanyPayable, EntryType: domain.Credit, Amount: p.Amount, Description: "Due to " + p.PayingCompanyID},
			},
		},
	}, nil
}
