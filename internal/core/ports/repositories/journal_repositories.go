package repositories

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries and lines.
type JournalEntryReader interface {
	// FindEntryByID retrieves a journal entry without its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of one entry in line order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// ListEntriesByCompany retrieves entries for a company, newest first.
	ListEntriesByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error)

	// ListPostedEntriesByYear retrieves all posted entries (with lines) dated
	// in the given calendar year for a company. Used by the year-end close.
	ListPostedEntriesByYear(ctx context.Context, companyID string, year int) ([]domain.JournalEntry, error)

	// FindEntriesByEventID retrieves the entries an event produced, via the
	// event-journal link table.
	FindEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for journal entries.
type JournalEntryWriter interface {
	// SaveEntryWithLines persists an entry and all of its lines.
	SaveEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error

	// SaveEventLink records that an event produced an entry.
	SaveEventLink(ctx context.Context, link domain.EventJournalEntry) error

	// NextReferenceNumber returns the next value of the per-company reference
	// sequence. Allocation is serialized per company by the store, so two
	// concurrent events never share a number.
	NextReferenceNumber(ctx context.Context, companyID string) (int64, error)
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
