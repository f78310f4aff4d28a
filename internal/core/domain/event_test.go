package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

func TestEventStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.EventStatus
		to      domain.EventStatus
		allowed bool
	}{
		{"pending to processed", domain.EventPending, domain.EventProcessed, true},
		{"pending to failed", domain.EventPending, domain.EventFailed, true},
		{"pending to cancelled", domain.EventPending, domain.EventCancelled, false},
		{"processed to cancelled", domain.EventProcessed, domain.EventCancelled, true},
		{"processed to pending", domain.EventProcessed, domain.EventPending, false},
		{"processed to failed", domain.EventProcessed, domain.EventFailed, false},
		{"failed is terminal", domain.EventFailed, domain.EventCancelled, false},
		{"cancelled is terminal", domain.EventCancelled, domain.EventProcessed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, domain.CanTransitionEventStatus(tt.from, tt.to))
			err := domain.ValidateEventStatusTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
			}
		})
	}
}

func TestValidateEventMutation(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	stored := domain.AccountingEvent{
		EventID:           "evt-1",
		EventType:         domain.EventExpenseApproved,
		EventDate:         date,
		AffectedCompanies: []string{"CO-A"},
		Payload:           json.RawMessage(`{"expenseNumber":"EXP-1"}`),
		Status:            domain.EventPending,
	}

	t.Run("status change is allowed", func(t *testing.T) {
		updated := stored
		updated.Status = domain.EventProcessed
		assert.NoError(t, domain.ValidateEventMutation(stored, updated))
	})

	t.Run("error message change is allowed", func(t *testing.T) {
		msg := "something went wrong"
		updated := stored
		updated.Status = domain.EventFailed
		updated.Error = &msg
		assert.NoError(t, domain.ValidateEventMutation(stored, updated))
	})

	t.Run("payload change is rejected", func(t *testing.T) {
		updated := stored
		updated.Payload = json.RawMessage(`{"expenseNumber":"EXP-2"}`)
		assert.ErrorIs(t, domain.ValidateEventMutation(stored, updated), apperrors.ErrImmutableEvent)
	})

	t.Run("event type change is rejected", func(t *testing.T) {
		updated := stored
		updated.EventType = domain.EventExpensePaid
		assert.ErrorIs(t, domain.ValidateEventMutation(stored, updated), apperrors.ErrImmutableEvent)
	})

	t.Run("event date change is rejected", func(t *testing.T) {
		updated := stored
		updated.EventDate = date.AddDate(0, 0, 1)
		assert.ErrorIs(t, domain.ValidateEventMutation(stored, updated), apperrors.ErrImmutableEvent)
	})

	t.Run("company list change is rejected", func(t *testing.T) {
		updated := stored
		updated.AffectedCompanies = []string{"CO-A", "CO-B"}
		assert.ErrorIs(t, domain.ValidateEventMutation(stored, updated), apperrors.ErrImmutableEvent)
	})

	t.Run("company reorder is rejected", func(t *testing.T) {
		multi := stored
		multi.AffectedCompanies = []string{"CO-A", "CO-B"}
		updated := multi
		updated.AffectedCompanies = []string{"CO-B", "CO-A"}
		assert.ErrorIs(t, domain.ValidateEventMutation(multi, updated), apperrors.ErrImmutableEvent)
	})
}

func TestIsKnownEventType(t *testing.T) {
	for _, eventType := range domain.KnownEventTypes() {
		assert.True(t, domain.IsKnownEventType(eventType), "expected %s to be known", eventType)
	}
	assert.False(t, domain.IsKnownEventType("EXPENSE_REJECTED"))
	assert.False(t, domain.IsKnownEventType(""))
}

func TestIsPairedEventType(t *testing.T) {
	paired := []domain.EventType{
		domain.EventManagementFeeCharged,
		domain.EventIntercompanySettlement,
		domain.EventIntercompanyReceipt,
		domain.EventIntercompanyExpense,
	}
	for _, eventType := range paired {
		assert.True(t, domain.IsPairedEventType(eventType), "expected %s to be paired", eventType)
	}
	assert.False(t, domain.IsPairedEventType(domain.EventExpenseApproved))
	assert.False(t, domain.IsPairedEventType(domain.EventBankTransfer))
}
