package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VATRemittedPayload pays accumulated output VAT to the tax authority.
type VATRemittedPayload struct {
	PeriodLabel     string          `json:"periodLabel"`
	Amount          decimal.Decimal `json:"amount"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
}

type vatRemittedHandler struct{}

func (vatRemittedHandler) Validate(raw json.RawMessage) error {
	var p VATRemittedPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (vatRemittedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p VATRemittedPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	desc := "VAT remitted"
	if p.PeriodLabel != "" {
		desc += " for " + p.PeriodLabel
	}
	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: desc,
		Lines: []domain.SpecLine{
			{Role: domain.RoleVATPayable, EntryType: domain.Debit, Amount: p.Amount, Description: desc},
			{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Credit, Amount: p.Amount, Description: "Payment to tax authority"},
		},
	}}, nil
}

// WHTRemittedPayload pays withheld tax over to the tax authority.
type WHTRemittedPayload struct {
	PeriodLabel     string          `json:"periodLabel"`
	Amount          decimal.Decimal `json:"amount"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
}

type whtRemittedHandler struct{}

func (whtRemittedHandler) Validate(raw json.RawMessage) error {
	var p WHTRemittedPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (whtRemittedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p WHTRemittedPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	desc := "Withholding tax remitted"
	if p.PeriodLabel != "" {
		desc += " for " + p.PeriodLabel
	}
	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: desc,
		Lines: []domain.SpecLine{
			{Role: domain.RoleWHTPayable, EntryType: domain.Debit, Amount: p.Amount, Description: desc},
			{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Credit, Amount: p.Amount, Description: "Payment to tax authority"},
		},
	}}, nil
}
