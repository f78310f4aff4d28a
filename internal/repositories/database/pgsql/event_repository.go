package pgsql

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	"github.com/harborops/charter_accounting_app/internal/models"
	"github.com/harborops/charter_accounting_app/internal/utils/mapping"
)

// PgxEventRepository persists accounting events. Events are append-only: the
// only update this repository exposes is the status transition, and inserting
// over an existing ID with a different payload is an immutability violation.
type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for accounting events.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, event_type, event_date, affected_companies, payload, status, error, source_document_type, source_document_id, created_at, created_by, last_updated_at, last_updated_by`

// SaveEvent persists a new event. A second save with the same ID and payload
// is reported as a duplicate; a differing payload is an immutability
// violation.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.AccountingEvent) error {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO accounting_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (event_id) DO NOTHING;
	`
	tag, err := r.q(ctx).Exec(ctx, query,
		m.EventID,
		m.EventType,
		m.EventDate,
		m.AffectedCompanies,
		m.Payload,
		m.Status,
		m.Error,
		m.SourceDocumentType,
		m.SourceDocumentID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert event "+m.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		existing, findErr := r.FindEventByID(ctx, event.EventID)
		if findErr != nil {
			return apperrors.NewAppError(500, "failed to inspect conflicting event "+m.EventID, findErr)
		}
		if !bytes.Equal(existing.Payload, event.Payload) || existing.EventType != event.EventType {
			return fmt.Errorf("%w: event %s already recorded with different content", apperrors.ErrImmutableEvent, event.EventID)
		}
		return fmt.Errorf("%w: event %s", apperrors.ErrDuplicate, event.EventID)
	}
	return nil
}

// UpdateEventStatus applies a lifecycle transition after validating it against
// the current status. The error column is written only for FAILED.
func (r *PgxEventRepository) UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus, errMsg *string, updatedBy string, updatedAt time.Time) error {
	current, err := r.FindEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := domain.ValidateEventStatusTransition(current.Status, status); err != nil {
		return err
	}
	if status != domain.EventFailed {
		errMsg = nil
	}

	query := `
		UPDATE accounting_events
		SET status = $2, error = $3, last_updated_at = $4, last_updated_by = $5
		WHERE event_id = $1;
	`
	tag, err := r.q(ctx).Exec(ctx, query, eventID, string(status), errMsg, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of event "+eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("event " + eventID + " not found")
	}
	return nil
}

// FindEventByID retrieves a specific event by its unique identifier.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.AccountingEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM accounting_events WHERE event_id = $1;`
	m, err := scanEvent(r.q(ctx).QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("event " + eventID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find event "+eventID, err)
	}
	event := mapping.ToDomainEvent(m)
	return &event, nil
}

// ListEventsByCompany retrieves events affecting a company, newest first.
func (r *PgxEventRepository) ListEventsByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.AccountingEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM accounting_events
		WHERE $1 = ANY(affected_companies)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.q(ctx).Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list events for company "+companyID, err)
	}
	defer rows.Close()

	var events []domain.AccountingEvent
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan event row", err)
		}
		events = append(events, mapping.ToDomainEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate event rows", err)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (models.AccountingEvent, error) {
	var m models.AccountingEvent
	err := row.Scan(
		&m.EventID,
		&m.EventType,
		&m.EventDate,
		&m.AffectedCompanies,
		&m.Payload,
		&m.Status,
		&m.Error,
		&m.SourceDocumentType,
		&m.SourceDocumentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
