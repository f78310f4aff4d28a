package services

import (
	"context"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

// JournalSvcFacade exposes the read path over recorded journal entries.
type JournalSvcFacade interface {
	// GetEntryByID retrieves a journal entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByCompany retrieves a company's entries, newest first.
	ListEntriesByCompany(ctx context.Context, companyID string, params dto.ListEntriesParams) ([]domain.JournalEntry, error)

	// ListEntriesByEvent retrieves the entries an event produced.
	ListEntriesByEvent(ctx context.Context, eventID string) ([]domain.JournalEntry, error)
}
