package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// PayrollPostedPayload posts one payroll run: gross salary expense split into
// withholding tax retained and net pay owed to staff.
type PayrollPostedPayload struct {
	PeriodLabel string          `json:"periodLabel"`
	GrossAmount decimal.Decimal `json:"grossAmount"`
	WHTAmount   decimal.Decimal `json:"whtAmount"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

type payrollPostedHandler struct{}

func (payrollPostedHandler) Validate(raw json.RawMessage) error {
	var p PayrollPostedPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.PeriodLabel == "" {
		return fmt.Errorf("%w: periodLabel is required", apperrors.ErrValidation)
	}
	if !p.GrossAmount.IsPositive() {
		return fmt.Errorf("%w: grossAmount must be positive", apperrors.ErrValidation)
	}
	if p.WHTAmount.IsNegative() || !p.NetAmount.IsPositive() {
		return fmt.Errorf("%w: whtAmount must not be negative and netAmount must be positive", apperrors.ErrValidation)
	}
	if !accounting.WithinTolerance(p.GrossAmount, p.WHTAmount.Add(p.NetAmount)) {
		return fmt.Errorf("%w: grossAmount must equal whtAmount plus netAmount", apperrors.ErrValidation)
	}
	return nil
}

func (payrollPostedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p PayrollPostedPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	spec := domain.JournalSpec{
		CompanyID:   companyID,
		Description: "Payroll " + p.PeriodLabel,
		Lines: []domain.SpecLine{
			{Role: domain.RoleExpense, EntryType: domain.Debit, Amount: p.GrossAmount, Description: "Gross salaries " + p.PeriodLabel},
		},
	}
	if p.WHTAmount.IsPositive() {
		spec.Lines = append(spec.Lines, domain.SpecLine{
			Role:        domain.RoleWHTPayable,
			EntryType:   domain.Credit,
			Amount:      p.WHTAmount,
			Description: "Withholding tax retained",
		})
	}
	spec.Lines = append(spec.Lines, domain.SpecLine{
		Role:        domain.RolePayrollPayable,
		EntryType:   domain.Credit,
		Amount:      p.NetAmount,
		Description: "Net pay owed " + p.PeriodLabel,
	})
	return []domain.JournalSpec{spec}, nil
}
