package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/core/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

func TestGetEntryByIDLoadsLines(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	service := services.NewJournalService(mockRepo)

	entry := &domain.JournalEntry{EntryID: "je-1", CompanyID: "CO-A", TotalDebit: decimal.NewFromInt(100), TotalCredit: decimal.NewFromInt(100)}
	lines := []domain.JournalEntryLine{
		{LineID: "l-1", EntryID: "je-1", AccountCode: "5010", EntryType: domain.Debit, Amount: decimal.NewFromInt(100), LineOrder: 1},
		{LineID: "l-2", EntryID: "je-1", AccountCode: "2010", EntryType: domain.Credit, Amount: decimal.NewFromInt(100), LineOrder: 2},
	}
	mockRepo.On("FindEntryByID", mock.Anything, "je-1").Return(entry, nil).Once()
	mockRepo.On("FindLinesByEntryID", mock.Anything, "je-1").Return(lines, nil).Once()

	got, err := service.GetEntryByID(context.Background(), "je-1")
	require.NoError(t, err)
	assert.Len(t, got.Lines, 2)
	assert.Equal(t, "5010", got.Lines[0].AccountCode)
}

func TestGetEntryByIDNotFound(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	service := services.NewJournalService(mockRepo)

	mockRepo.On("FindEntryByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("journal entry not found")).Once()

	_, err := service.GetEntryByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "FindLinesByEntryID", mock.Anything, mock.Anything)
}

func TestListEntriesByCompanyClampsPaging(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	service := services.NewJournalService(mockRepo)

	mockRepo.On("ListEntriesByCompany", mock.Anything, "CO-A", 50, 0).
		Return([]domain.JournalEntry{}, nil).Once()

	_, err := service.ListEntriesByCompany(context.Background(), "CO-A", dto.ListEntriesParams{Limit: 10000, Offset: -5})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestListEntriesByEvent(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	service := services.NewJournalService(mockRepo)

	entries := []domain.JournalEntry{
		{EntryID: "je-1", CompanyID: "CO-A"},
		{EntryID: "je-2", CompanyID: "CO-B"},
	}
	mockRepo.On("FindEntriesByEventID", mock.Anything, "evt-1").Return(entries, nil).Once()

	got, err := service.ListEntriesByEvent(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
