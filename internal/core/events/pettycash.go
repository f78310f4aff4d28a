package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PettyCashAdvancePayload funds a custodian's petty cash float from the bank.
type PettyCashAdvancePayload struct {
	Custodian       string          `json:"custodian"`
	Amount          decimal.Decimal `json:"amount"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
}

type pettyCashAdvanceHandler struct{}

func (pettyCashAdvanceHandler) Validate(raw json.RawMessage) error {
	var p PettyCashAdvancePayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.Custodian == "" {
		return fmt.Errorf("%w: custodian is required", apperrors.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (pettyCashAdvanceHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p PettyCashAdvancePayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: "Petty cash advance to " + p.Custodian,
		Lines: []domain.SpecLine{
			{Role: domain.RoleCash, EntryType: domain.Debit, Amount: p.Amount, Description: "Petty cash float"},
			{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Credit, Amount: p.Amount, Description: "Advance to " + p.Custodian},
		},
	}}, nil
}

// PettyCashSettlementPayload records receipts handed in against the float.
type PettyCashSettlementPayload struct {
	Custodian string            `json:"custodian"`
	Lines     []ExpenseLineItem `json:"lines"`
	VATAmount decimal.Decimal   `json:"vatAmount"`
}

type pettyCashSettlementHandler struct{}

func (pettyCashSettlementHandler) Validate(raw json.RawMessage) error {
	var p PettyCashSettlementPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.Custodian == "" {
		return fmt.Errorf("%w: custodian is required", apperrors.ErrValidation)
	}
	if len(p.Lines) == 0 {
		return fmt.Errorf("%w: settlement must have at least one line item", apperrors.ErrValidation)
	}
	total := p.VATAmount
	for i, line := range p.Lines {
		if line.Amount.IsNegative() {
			return fmt.Errorf("%w: line item %d amount must not be negative", apperrors.ErrValidation, i+1)
		}
		total = total.Add(line.Amount)
	}
	if p.VATAmount.IsNegative() {
		return fmt.Errorf("%w: vatAmount must not be negative", apperrors.ErrValidation)
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: settlement total must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (pettyCashSettlementHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p PettyCashSettlementPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	spec := domain.JournalSpec{
		CompanyID:   companyID,
		Description: "Petty cash settlement by " + p.Custodian,
	}
	total := decimal.Zero
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
		total = total.Add(line.Amount)
	}
	if p.VATAmount.IsPositive() {
		spec.Lines = append(spec.Lines, domain.SpecLine{
			Role:        domain.RoleVATReceivable,
			EntryType:   domain.Debit,
			Amount:      p.VATAmount,
			Description: "Input VAT on petty cash settlement",
		})
		total = total.Add(p.VATAmount)
	}
	spec.Lines = append(spec.Lines, domain.SpecLine{
		Role:        domain.RoleCash,
		EntryType:   domain.Credit,
		Amount:      total,
		Description: "Petty cash spent by " + p.Custodian,
	})
	return []domain.JournalSpec{spec}, nil
}

// PettyCashReturnPayload returns an unused float balance to the bank.
type PettyCashReturnPayload struct {
	Custodian       string          `json:"custodian"`
	Amount          decimal.Decimal `json:"amount"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
}

type pettyCashReturnHandler struct{}

func (pettyCashReturnHandler) Validate(raw json.RawMessage) error {
	var p PettyCashReturnPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.Custodian == "" {
		return fmt.Errorf("%w: custodian is required", apperrors.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (pettyCashReturnHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p PettyCashReturnPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: "Petty cash returned by " + p.Custodian,
		Lines: []domain.SpecLine{
			{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Debit, Amount: p.Amount, Description: "Float returned to bank"},
			{Role: domain.RoleCash, EntryType: domain.Credit, Amount: p.Amount, Description: "Petty cash float closed"},
		},
	}}, nil
}
