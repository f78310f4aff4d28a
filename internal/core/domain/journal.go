package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the state of a journal entry.
type JournalEntryStatus string

const (
	EntryDraft  JournalEntryStatus = "DRAFT"
	EntryPosted JournalEntryStatus = "POSTED"
)

// EntryType marks a journal line as a debit or a credit posting.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// JournalEntry is a balanced double-entry record for exactly one company.
// TotalDebit must equal TotalCredit within the balance tolerance.
type JournalEntry struct {
	EntryID         string             `json:"entryID"`
	ReferenceNumber string             `json:"referenceNumber"` // sequential per company
	EntryDate       time.Time          `json:"entryDate"`
	CompanyID       string             `json:"companyID"`
	Description     string             `json:"description"`
	Status          JournalEntryStatus `json:"status"`
	TotalDebit      decimal.Decimal    `json:"totalDebit"`
	TotalCredit     decimal.Decimal    `json:"totalCredit"`
	IsAutoGenerated bool               `json:"isAutoGenerated"`
	SourceDocType   *string            `json:"sourceDocumentType,omitempty"`
	Lines           []JournalEntryLine `json:"lines,omitempty"`
	AuditFields
}

// JournalEntryLine is a single debit or credit posting within an entry.
// Amount is always positive; direction comes from EntryType.
type JournalEntryLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	EntryType   EntryType       `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LineOrder   int             `json:"lineOrder"`
}

// EventJournalEntry links an accounting event to one journal entry it produced.
// One event may produce zero or many entries (one per affected, enabled company).
type EventJournalEntry struct {
	EventID   string    `json:"eventID"`
	EntryID   string    `json:"entryID"`
	CompanyID string    `json:"companyID"`
	CreatedAt time.Time `json:"createdAt"`
}
