package services

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

// EventPipelineSvcFacade is the exposed surface of the accounting event
// pipeline: record an occurrence and turn it into balanced journal entries.
type EventPipelineSvcFacade interface {
	// CreateAndProcess persists the event and runs the full pipeline as one
	// logical unit. Expected business failures come back in the result with
	// Success=false; only unexpected faults return an error.
	CreateAndProcess(ctx context.Context, req dto.CreateEventRequest, actorUserID string) (*dto.ProcessEventResult, error)

	// CancelEvent moves a processed event to CANCELLED. It does not reverse
	// the journals the event produced.
	CancelEvent(ctx context.Context, eventID string, actorUserID string) error

	// GetEvent retrieves one event.
	GetEvent(ctx context.Context, eventID string) (*domain.AccountingEvent, error)
}
