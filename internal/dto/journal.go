package dto

import (
	"time"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryLineResponse is the outbound form of one posting line.
type JournalEntryLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountCode string          `json:"accountCode"`
	EntryType   string          `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LineOrder   int             `json:"lineOrder"`
}

// JournalEntryResponse is the outbound form of a journal entry.
type JournalEntryResponse struct {
	EntryID         string                     `json:"entryID"`
	ReferenceNumber string                     `json:"referenceNumber"`
	EntryDate       time.Time                  `json:"entryDate"`
	CompanyID       string                     `json:"companyID"`
	Description     string                     `json:"description"`
	Status          string                     `json:"status"`
	TotalDebit      decimal.Decimal            `json:"totalDebit"`
	TotalCredit     decimal.Decimal            `json:"totalCredit"`
	IsAutoGenerated bool                       `json:"isAutoGenerated"`
	SourceDocType   *string                    `json:"sourceDocumentType,omitempty"`
	Lines           []JournalEntryLineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
}

// ListEntriesParams carries pagination for journal entry listings.
type ListEntriesParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ToJournalEntryResponse converts a domain entry (and its lines, if loaded).
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:         e.EntryID,
		ReferenceNumber: e.ReferenceNumber,
		EntryDate:       e.EntryDate,
		CompanyID:       e.CompanyID,
		Description:     e.Description,
		Status:          string(e.Status),
		TotalDebit:      e.TotalDebit,
		TotalCredit:     e.TotalCredit,
		IsAutoGenerated: e.IsAutoGenerated,
		SourceDocType:   e.SourceDocType,
		CreatedAt:       e.CreatedAt,
	}
	for _, line := range e.Lines {
		resp.Lines = append(resp.Lines, JournalEntryLineResponse{
			LineID:      line.LineID,
			AccountCode: line.AccountCode,
			EntryType:   string(line.EntryType),
			Amount:      line.Amount,
			Description: line.Description,
			LineOrder:   line.LineOrder,
		})
	}
	return resp
}
