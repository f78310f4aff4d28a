package repositories

import (
	"context"
	"time"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// EventReader defines read operations for accounting events.
type EventReader interface {
	// FindEventByID retrieves a specific event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.AccountingEvent, error)

	// ListEventsByCompany retrieves events affecting a company, newest first.
	ListEventsByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.AccountingEvent, error)
}

// EventWriter defines write operations for accounting events. There is no
// general update: events are append-only, and only status transitions are
// exposed. Payload mutation is rejected at this boundary with ErrImmutableEvent.
type EventWriter interface {
	// SaveEvent persists a new event. Saving over an existing event ID fails.
	SaveEvent(ctx context.Context, event domain.AccountingEvent) error

	// UpdateEventStatus applies a lifecycle transition. The error message is
	// stored iff the new status is FAILED.
	UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus, errMsg *string, updatedBy string, updatedAt time.Time) error
}

// EventRepositoryFacade combines all event repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
