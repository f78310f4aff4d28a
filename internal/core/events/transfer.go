package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ProfitAllocation assigns a share of a distribution to one partner.
type ProfitAllocation struct {
	PartnerID string          `json:"partnerID"`
	Amount    decimal.Decimal `json:"amount"`
}

// OwnerDistributionPayload distributes profit out of equity to the partners'
// payable accounts. Allocations must sum to totalProfit within tolerance.
type OwnerDistributionPayload struct {
	TotalProfit decimal.Decimal    `json:"totalProfit"`
	Allocations []ProfitAllocation `json:"allocations"`
}

type ownerDistributionHandler struct{}

func (ownerDistributionHandler) Validate(raw json.RawMessage) error {
	var p OwnerDistributionPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if !p.TotalProfit.IsPositive() {
		return fmt.Errorf("%w: totalProfit must be positive", apperrors.ErrValidation)
	}
	if len(p.Allocations) == 0 {
		return fmt.Errorf("%w: at least one allocation is required", apperrors.ErrValidation)
	}
	sum := decimal.Zero
	for i, alloc := range p.Allocations {
		if alloc.PartnerID == "" {
			return fmt.Errorf("%w: allocation %d is missing partnerID", apperrors.ErrValidation, i+1)
		}
		if !alloc.Amount.IsPositive() {
			return fmt.Errorf("%w: allocation %d amount must be positive", apperrors.ErrValidation, i+1)
		}
		sum = sum.Add(alloc.Amount)
	}
	if !accounting.WithinTolerance(sum, p.TotalProfit) {
		return fmt.Errorf("%w: allocations must sum to totalProfit (got %s, want %s)", apperrors.ErrValidation, sum.String(), p.TotalProfit.String())
	}
	return nil
}

func (ownerDistributionHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p OwnerDistributionPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	spec := domain.JournalSpec{
		CompanyID:   companyID,
		Description: "Owner profit distribution",
		Lines: []domain.SpecLine{
			{Role: domain.RoleOwnerEquity, EntryType: domain.Debit, Amount: p.TotalProfit, Description: "Profit distributed"},
		},
	}
	for _, alloc := range p.Allocations {
		spec.Lines = append(spec.Lines, domain.SpecLine{
			Role:        domain.RolePartnerPayable,
			EntryType:   domain.Credit,
			Amount:      alloc.Amount,
			Description: "Share for partner " + alloc.PartnerID,
		})
	}
	return []domain.JournalSpec{spec}, nil
}

// BankTransferPayload moves cash between two of the company's own bank accounts.
type BankTransferPayload struct {
	Amount          decimal.Decimal `json:"amount"`
	FromAccountCode string          `json:"fromAccountCode"`
	ToAccountCode   string          `json:"toAccountCode"`
	Reference       string          `json:"reference,omitempty"`
}

type bankTransferHandler struct{}

func (bankTransferHandler) Validate(raw json.RawMessage) error {
	var p BankTransferPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.FromAccountCode == "" || p.ToAccountCode == "" {
		return fmt.Errorf("%w: fromAccountCode and toAccountCode are required", apperrors.ErrValidation)
	}
	if p.FromAccountCode == p.ToAccountCode {
		return fmt.Errorf("%w: transfer accounts must differ", apperrors.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (bankTransferHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p BankTransferPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	desc := "Bank transfer"
	if p.Reference != "" {
		desc += " " + p.Reference
	}
	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: desc,
		Lines: []domain.SpecLine{
			{AccountCode: p.ToAccountCode, Role: domain.RoleBank, EntryType: domain.Debit, Amount: p.Amount, Description: "Transfer in"},
			{AccountCode: p.FromAccountCode, Role: domain.RoleBank, EntryType: domain.Credit, Amount: p.Amount, Description: "Transfer out"},
		},
	}}, nil
}

// BankChargePayload books bank fees charged directly to an account.
type BankChargePayload struct {
	Amount          decimal.Decimal `json:"amount"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
	Description     string          `json:"description,omitempty"`
}

type bankChargeHandler struct{}

func (bankChargeHandler) Validate(raw json.RawMessage) error {
	var p BankChargePayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (bankChargeHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p BankChargePayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	desc := p.Description
	if desc == "" {
		desc = "Bank charges"
	}
	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: desc,
		Lines: []domain.SpecLine{
			{Role: domain.RoleExpense, EntryType: domain.Debit, Amount: p.Amount, Description: desc},
			{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Credit, Amount: p.Amount, Description: desc},
		},
	}}, nil
}
