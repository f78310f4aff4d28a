package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the persisted header of one balanced double-entry record.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	ReferenceNumber string          `json:"referenceNumber"`
	EntryDate       time.Time       `json:"entryDate"`
	CompanyID       string          `json:"companyID"`
	Description     string          `json:"description"`
	Status          string          `json:"status"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	IsAutoGenerated bool            `json:"isAutoGenerated"`
	SourceDocType   *string         `json:"sourceDocType,omitempty"`
	AuditFields
}

// JournalEntryLine is one debit or credit row of a journal entry.
type JournalEntryLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	EntryType   string          `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LineOrder   int             `json:"lineOrder"`
}

// EventJournalEntry links a pipeline event to one entry it produced.
type EventJournalEntry struct {
	EventID   string    `json:"eventID"`
	EntryID   string    `json:"entryID"`
	CompanyID string    `json:"companyID"`
	CreatedAt time.Time `json:"createdAt"`
}
