package events

import (
	"encoding/json"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// Handler is the uniform shape of an event-type handler: a pure validation of
// the payload document plus a deterministic mapping from the event to one
// prospective journal per affected company. Handlers never touch the store.
type Handler interface {
	// Validate checks the payload's structure and cross-field business rules.
	// A failure here is a normal, expected outcome for the pipeline.
	Validate(payload json.RawMessage) error

	// GenerateJournals maps the event to one JournalSpec per affected company.
	// Paired event types always emit exactly two specs with mirrored amounts.
	GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error)
}

// Registry holds the fixed table of handlers, one per event type. It is built
// once at startup and read-only afterwards, so concurrent pipeline calls can
// share it without coordination.
type Registry struct {
	handlers map[domain.EventType]Handler
}

// NewRegistry builds the handler table covering the full closed event type set.
func NewRegistry() *Registry {
	return &Registry{
		handlers: map[domain.EventType]Handler{
			domain.EventExpenseApproved:        expenseApprovedHandler{},
			domain.EventExpensePaid:            expensePaidHandler{},
			domain.EventPettyCashAdvance:       pettyCashAdvanceHandler{},
			domain.EventPettyCashSettlement:    pettyCashSettlementHandler{},
			domain.EventPettyCashReturn:        pettyCashReturnHandler{},
			domain.EventInvoiceIssued:          invoiceIssuedHandler{},
			domain.EventReceiptRecorded:        receiptRecordedHandler{},
			domain.EventDepositReceived:        depositReceivedHandler{},
			domain.EventManagementFeeCharged:   managementFeeHandler{},
			domain.EventIntercompanySettlement: intercompanySettlementHandler{},
			domain.EventIntercompanyReceipt:    intercompanyReceiptHandler{},
			domain.EventIntercompanyExpense:    intercompanyExpenseHandler{},
			domain.EventPayrollPosted:          payrollPostedHandler{},
			domain.EventVATRemitted:            vatRemittedHandler{},
			domain.EventWithholdingTaxRemitted: whtRemittedHandler{},
			domain.EventOwnerDistribution:      ownerDistributionHandler{},
			domain.EventBankTransfer:           bankTransferHandler{},
			domain.EventBankCharge:             bankChargeHandler{},
		},
	}
}

// Resolve returns the handler for the given event type.
func (r *Registry) Resolve(eventType domain.EventType) (Handler, error) {
	h, ok := r.handlers[eventType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown event type %s", apperrors.ErrValidation, eventType)
	}
	return h, nil
}

// decodePayload unmarshals a handler payload, mapping malformed JSON to a
// validation error so the pipeline treats it as a failed event, not a fault.
func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: payload is required", apperrors.ErrValidation)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: malformed payload: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// singleCompany returns the company a single-company handler posts to: the
// first entry of the event's affected company list.
func singleCompany(event domain.AccountingEvent) (string, error) {
	if len(event.AffectedCompanies) == 0 {
		return "", fmt.Errorf("%w: event has no affected companies", apperrors.ErrValidation)
	}
	return event.AffectedCompanies[0], nil
}
