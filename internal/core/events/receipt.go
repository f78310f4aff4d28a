package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceIssuedPayload raises a receivable against a customer.
type InvoiceIssuedPayload struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
}

type invoiceIssuedHandler struct{}

func (invoiceIssuedHandler) Validate(raw json.RawMessage) error {
	var p InvoiceIssuedPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.InvoiceNumber == "" {
		return fmt.Errorf("%w: invoiceNumber is required", apperrors.ErrValidation)
	}
	if !p.NetAmount.IsPositive() {
		return fmt.Errorf("%w: netAmount must be positive", apperrors.ErrValidation)
	}
	if p.VATAmount.IsNegative() {
		return fmt.Errorf("%w: vatAmount must not be negative", apperrors.ErrValidation)
	}
	return nil
}

func (invoiceIssuedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p InvoiceIssuedPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	spec := domain.JournalSpec{
		CompanyID:   companyID,
		Description: fmt.Sprintf("Invoice %s issued to %s", p.InvoiceNumber, p.CustomerName),
		Lines: []domain.SpecLine{
			{Role: domain.RoleAccountsReceivable, EntryType: domain.Debit, Amount: p.NetAmount.Add(p.VATAmount), Description: "Receivable from " + p.CustomerName},
			{Role: domain.RoleRevenue, EntryType: domain.Credit, Amount: p.NetAmount, Description: "Invoice " + p.InvoiceNumber},
		},
	}
	if p.VATAmount.IsPositive() {
		spec.Lines = append(spec.Lines, domain.SpecLine{
			Role:        domain.RoleVATPayable,
			EntryType:   domain.Credit,
			Amount:      p.VATAmount,
			Description: "Output VAT on invoice " + p.InvoiceNumber,
		})
	}
	return []domain.JournalSpec{spec}, nil
}

// ReceiptLine is one revenue-bearing line of a recorded receipt. Deferred is
// resolved before the pipeline call by the revenue recognition service: a line
// whose service window has not yet passed credits the deferred revenue
// liability instead of realized revenue.
type ReceiptLine struct {
	LineID             string          `json:"lineID"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Deferred           bool            `json:"deferred"`
	RevenueAccountCode string          `json:"revenueAccountCode,omitempty"`
}

// ReceiptRecordedPayload is the document behind a RECEIPT_RECORDED event.
// VAT is always recognized immediately; tax liability is not deferred.
type ReceiptRecordedPayload struct {
	ReceiptNumber   string          `json:"receiptNumber"`
	ProjectID       string          `json:"projectID,omitempty"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
	VATAmount       decimal.Decimal `json:"vatAmount"`
	Lines           []ReceiptLine   `json:"lines"`
}

type receiptRecordedHandler struct{}

func (receiptRecordedHandler) Validate(raw json.RawMessage) error {
	var p ReceiptRecordedPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.ReceiptNumber == "" {
		return fmt.Errorf("%w: receiptNumber is required", apperrors.ErrValidation)
	}
	if len(p.Lines) == 0 {
		return fmt.Errorf("%w: receipt must have at least one line", apperrors.ErrValidation)
	}
	for i, line := range p.Lines {
		if !line.Amount.IsPositive() {
			return fmt.Errorf("%w: receipt line %d amount must be positive", apperrors.ErrValidation, i+1)
		}
	}
	if p.VATAmount.IsNegative() {
		return fmt.Errorf("%w: vatAmount must not be negative", apperrors.ErrValidation)
	}
	return nil
}

func (receiptRecordedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p ReceiptRecordedPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	spec := domain.JournalSpec{
		CompanyID:   companyID,
		Description: "Receipt " + p.ReceiptNumber,
	}
	total := p.VATAmount
	for _, line := range p.Lines {
		total = total.Add(line.Amount)
	}
	spec.Lines = append(spec.Lines, domain.SpecLine{
		AccountCode: p.BankAccountCode,
		Role:        domain.RoleBank,
		EntryType:   domain.Debit,
		Amount:      total,
		Description: "Cash received on receipt " + p.ReceiptNumber,
	})
	for _, line := range p.Lines {
		specLine := domain.SpecLine{
			EntryType:   domain.Credit,
			Amount:      line.Amount,
			Description: line.Description,
		}
		if line.Deferred {
			specLine.Role = domain.RoleDeferredRevenue
		} else {
			specLine.AccountCode = line.RevenueAccountCode
			specLine.Role = domain.RoleRevenue
		}
		spec.Lines = append(spec.Lines, specLine)
	}
	if p.VATAmount.IsPositive() {
		spec.Lines = append(spec.Lines, domain.SpecLine{
			Role:        domain.RoleVATPayable,
			EntryType:   domain.Credit,
			Amount:      p.VATAmount,
			Description: "Output VAT on receipt " + p.ReceiptNumber,
		})
	}
	return []domain.JournalSpec{spec}, nil
}

// DepositReceivedPayload records a customer deposit held as a liability until
// the related service is delivered.
type DepositReceivedPayload struct {
	Reference       string          `json:"reference"`
	Amount          decimal.Decimal `json:"amount"`
	BankAccountCode string          `json:"bankAccountCode,omitempty"`
}

type depositReceivedHandler struct{}

func (depositReceivedHandler) Validate(raw json.RawMessage) error {
	var p DepositReceivedPayload
	if err := decodePayload(raw, &p); err != nil {
		return err
	}
	if p.Reference == "" {
		return fmt.Errorf("%w: reference is required", apperrors.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

func (depositReceivedHandler) GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error) {
	var p DepositReceivedPayload
	if err := decodePayload(event.Payload, &p); err != nil {
		return nil, err
	}
	companyID, err := singleCompany(event)
	if err != nil {
		return nil, err
	}
	return []domain.JournalSpec{{
		CompanyID:   companyID,
		Description: "Deposit received " + p.Reference,
		Lines: []domain.SpecLine{
			{AccountCode: p.BankAccountCode, Role: domain.RoleBank, EntryType: domain.Debit, Amount: p.Amount, Description: "Deposit " + p.Reference},
			{Role: domain.RoleDeferredRevenue, EntryType: domain.Credit, Amount: p.Amount, Description: "Deposit held for " + p.Reference},
		},
	}}, nil
}
