package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
)

// EventType identifies one of the closed set of business occurrences the
// pipeline knows how to turn into journal entries.
type EventType string

const (
	EventExpenseApproved        EventType = "EXPENSE_APPROVED"
	EventExpensePaid            EventType = "EXPENSE_PAID"
	EventPettyCashAdvance       EventType = "PETTY_CASH_ADVANCE"
	EventPettyCashSettlement    EventType = "PETTY_CASH_SETTLEMENT"
	EventPettyCashReturn        EventType = "PETTY_CASH_RETURN"
	EventInvoiceIssued          EventType = "INVOICE_ISSUED"
	EventReceiptRecorded        EventType = "RECEIPT_RECORDED"
	EventDepositReceived        EventType = "DEPOSIT_RECEIVED"
	EventManagementFeeCharged   EventType = "MANAGEMENT_FEE_CHARGED"
	EventIntercompanySettlement EventType = "INTERCOMPANY_SETTLEMENT"
	EventIntercompanyReceipt    EventType = "INTERCOMPANY_RECEIPT"
	EventIntercompanyExpense    EventType = "INTERCOMPANY_EXPENSE_PAID"
	EventPayrollPosted          EventType = "PAYROLL_POSTED"
	EventVATRemitted            EventType = "VAT_REMITTED"
	EventWithholdingTaxRemitted EventType = "WITHHOLDING_TAX_REMITTED"
	EventOwnerDistribution      EventType = "OWNER_DISTRIBUTION"
	EventBankTransfer           EventType = "BANK_TRANSFER"
	EventBankCharge             EventType = "BANK_CHARGE"
)

// EventStatus is the lifecycle state of an accounting event.
type EventStatus string

const (
	EventPending   EventStatus = "PENDING"
	EventProcessed EventStatus = "PROCESSED"
	EventFailed    EventStatus = "FAILED"
	EventCancelled EventStatus = "CANCELLED"
)

// AccountingEvent is an immutable record of something that happened in the
// business. Once persisted, EventType and Payload are write-once; only the
// status (and its error message) may change.
type AccountingEvent struct {
	EventID            string          `json:"eventID"`
	EventType          EventType       `json:"eventType"`
	EventDate          time.Time       `json:"eventDate"`
	AffectedCompanies  []string        `json:"affectedCompanies"` // ordered; multi-company handlers assign roles positionally
	Payload            json.RawMessage `json:"payload"`
	Status             EventStatus     `json:"status"`
	Error              *string         `json:"error,omitempty"`
	SourceDocumentType *string         `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   *string         `json:"sourceDocumentID,omitempty"`
	AuditFields
}

// eventStatusTransitions enumerates the permitted lifecycle moves.
var eventStatusTransitions = map[EventStatus][]EventStatus{
	EventPending:   {EventProcessed, EventFailed},
	EventProcessed: {EventCancelled},
	EventFailed:    {},
	EventCancelled: {},
}

// CanTransitionEventStatus reports whether an event may move from one status to another.
func CanTransitionEventStatus(from, to EventStatus) bool {
	for _, allowed := range eventStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateEventStatusTransition returns ErrInvalidTransition when the move is not permitted.
func ValidateEventStatusTransition(from, to EventStatus) error {
	if !CanTransitionEventStatus(from, to) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, from, to)
	}
	return nil
}

// ValidateEventMutation guards the storage write path: any update that changes
// the payload, type, date or company list of a persisted event is rejected.
// Status and error are the only mutable fields.
func ValidateEventMutation(stored, updated AccountingEvent) error {
	if stored.EventType != updated.EventType {
		return fmt.Errorf("%w: event type changed from %s to %s", apperrors.ErrImmutableEvent, stored.EventType, updated.EventType)
	}
	if !bytes.Equal(stored.Payload, updated.Payload) {
		return fmt.Errorf("%w: payload of event %s differs from stored payload", apperrors.ErrImmutableEvent, stored.EventID)
	}
	if !stored.EventDate.Equal(updated.EventDate) {
		return fmt.Errorf("%w: event date changed", apperrors.ErrImmutableEvent)
	}
	if len(stored.AffectedCompanies) != len(updated.AffectedCompanies) {
		return fmt.Errorf("%w: affected companies changed", apperrors.ErrImmutableEvent)
	}
	for i := range stored.AffectedCompanies {
		if stored.AffectedCompanies[i] != updated.AffectedCompanies[i] {
			return fmt.Errorf("%w: affected companies changed", apperrors.ErrImmutableEvent)
		}
	}
	return nil
}

// KnownEventTypes lists every member of the closed event type set.
func KnownEventTypes() []EventType {
	return []EventType{
		EventExpenseApproved,
		EventExpensePaid,
		EventPettyCashAdvance,
		EventPettyCashSettlement,
		EventPettyCashReturn,
		EventInvoiceIssued,
		EventReceiptRecorded,
		EventDepositReceived,
		EventManagementFeeCharged,
		EventIntercompanySettlement,
		EventIntercompanyReceipt,
		EventIntercompanyExpense,
		EventPayrollPosted,
		EventVATRemitted,
		EventWithholdingTaxRemitted,
		EventOwnerDistribution,
		EventBankTransfer,
		EventBankCharge,
	}
}

// IsKnownEventType reports whether t is a member of the closed event type set.
func IsKnownEventType(t EventType) bool {
	for _, known := range KnownEventTypes() {
		if known == t {
			return true
		}
	}
	return false
}

// IsPairedEventType reports whether t is one of the event types that always
// touches exactly two companies with fixed, mirrored roles.
func IsPairedEventType(t EventType) bool {
	switch t {
	case EventManagementFeeCharged, EventIntercompanySettlement, EventIntercompanyReceipt, EventIntercompanyExpense:
		return true
	}
	return false
}
