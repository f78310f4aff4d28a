package services

import (
	"context"
	"fmt"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

// journalService is the read path over journal entries the pipeline produced.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates the journal read service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// GetEntryByID retrieves a journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for journal entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntriesByCompany retrieves a company's entries, newest first.
func (s *journalService) ListEntriesByCompany(ctx context.Context, companyID string, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	entries, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries for company %s: %w", companyID, err)
	}
	return entries, nil
}

// ListEntriesByEvent retrieves the entries an event produced.
func (s *journalService) ListEntriesByEvent(ctx context.Context, eventID string) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.FindEntriesByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries for event %s: %w", eventID, err)
	}
	return entries, nil
}
