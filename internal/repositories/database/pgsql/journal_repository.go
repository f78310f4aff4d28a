package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	"github.com/harborops/charter_accounting_app/internal/models"
	"github.com/harborops/charter_accounting_app/internal/utils/mapping"
)

// PgxJournalRepository persists journal entries, their lines and the
// event-journal links.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, reference_number, entry_date, company_id, description, status, total_debit, total_credit, is_auto_generated, source_doc_type, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_code, entry_type, amount, description, line_order`

// SaveEntryWithLines persists an entry header and all of its lines. The lines
// go through one batch; atomicity comes from the surrounding unit of work.
func (r *PgxJournalRepository) SaveEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	q := r.q(ctx)
	m := mapping.ToModelJournalEntry(entry)

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := q.Exec(ctx, entryQuery,
		m.EntryID,
		m.ReferenceNumber,
		m.EntryDate,
		m.CompanyID,
		m.Description,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.IsAutoGenerated,
		m.SourceDocType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		lm := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			lm.LineID,
			lm.EntryID,
			lm.AccountCode,
			lm.EntryType,
			lm.Amount,
			lm.Description,
			lm.LineOrder,
		)
	}
	results := q.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert lines of journal entry "+m.EntryID, err)
		}
	}
	return nil
}

// SaveEventLink records that an event produced an entry.
func (r *PgxJournalRepository) SaveEventLink(ctx context.Context, link domain.EventJournalEntry) error {
	query := `
		INSERT INTO event_journal_entries (event_id, entry_id, company_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.q(ctx).Exec(ctx, query, link.EventID, link.EntryID, link.CompanyID, link.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link event "+link.EventID+" to entry "+link.EntryID, err)
	}
	return nil
}

// NextReferenceNumber returns the next value of the per-company reference
// sequence. The upsert row-locks the sequence row, so allocation is
// serialized per company.
func (r *PgxJournalRepository) NextReferenceNumber(ctx context.Context, companyID string) (int64, error) {
	query := `
		INSERT INTO reference_sequences (company_id, last_value)
		VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_value = reference_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.q(ctx).QueryRow(ctx, query, companyID).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate reference number for company "+companyID, err)
	}
	return next, nil
}

// FindEntryByID retrieves a journal entry without its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.q(ctx).QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + entryID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves the lines of one entry in line order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY line_order;`
	rows, err := r.q(ctx).Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load lines of entry "+entryID, err)
	}
	defer rows.Close()
	return collectLines(rows)
}

// ListEntriesByCompany retrieves entries for a company, newest first.
func (r *PgxJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.q(ctx).Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries for company "+companyID, err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListPostedEntriesByYear retrieves all posted entries dated in the given
// calendar year, lines included. Feeds the year-end close.
func (r *PgxJournalRepository) ListPostedEntriesByYear(ctx context.Context, companyID string, year int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE company_id = $1
		  AND status = $2
		  AND date_part('year', entry_date) = $3
		ORDER BY entry_date, reference_number;
	`
	rows, err := r.q(ctx).Query(ctx, query, companyID, string(domain.EntryPosted), year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list posted entries for company "+companyID, err)
	}
	entries, err := func() ([]domain.JournalEntry, error) {
		defer rows.Close()
		return collectEntries(rows)
	}()
	if err != nil {
		return nil, err
	}

	for i := range entries {
		lines, err := r.FindLinesByEntryID(ctx, entries[i].EntryID)
		if err != nil {
			return nil, err
		}
		entries[i].Lines = lines
	}
	return entries, nil
}

// FindEntriesByEventID retrieves the entries an event produced, via the link
// table, lines included.
func (r *PgxJournalRepository) FindEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + prefixedEntryColumns("je") + `
		FROM journal_entries je
		JOIN event_journal_entries eje ON eje.entry_id = je.entry_id
		WHERE eje.event_id = $1
		ORDER BY je.reference_number;
	`
	rows, err := r.q(ctx).Query(ctx, query, eventID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries for event "+eventID, err)
	}
	entries, err := func() ([]domain.JournalEntry, error) {
		defer rows.Close()
		return collectEntries(rows)
	}()
	if err != nil {
		return nil, err
	}

	for i := range entries {
		lines, err := r.FindLinesByEntryID(ctx, entries[i].EntryID)
		if err != nil {
			return nil, err
		}
		entries[i].Lines = lines
	}
	return entries, nil
}

func prefixedEntryColumns(alias string) string {
	return alias + ".entry_id, " + alias + ".reference_number, " + alias + ".entry_date, " +
		alias + ".company_id, " + alias + ".description, " + alias + ".status, " +
		alias + ".total_debit, " + alias + ".total_credit, " + alias + ".is_auto_generated, " +
		alias + ".source_doc_type, " + alias + ".created_at, " + alias + ".created_by, " +
		alias + ".last_updated_at, " + alias + ".last_updated_by"
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.ReferenceNumber,
		&m.EntryDate,
		&m.CompanyID,
		&m.Description,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.IsAutoGenerated,
		&m.SourceDocType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal entry rows", err)
	}
	return entries, nil
}

func collectLines(rows pgx.Rows) ([]domain.JournalEntryLine, error) {
	var lines []domain.JournalEntryLine
	for rows.Next() {
		var m models.JournalEntryLine
		if err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountCode,
			&m.EntryType,
			&m.Amount,
			&m.Description,
			&m.LineOrder,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal line rows", err)
	}
	return lines, nil
}
