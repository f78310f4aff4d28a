package mapping

import (
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/models"
)

// ToModelJournalEntry converts a domain journal entry header.
func ToModelJournalEntry(e domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
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
		AuditFields:     toModelAudit(e.AuditFields),
	}
}

// ToDomainJournalEntry converts a persisted entry header (without lines).
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		ReferenceNumber: m.ReferenceNumber,
		EntryDate:       m.EntryDate,
		CompanyID:       m.CompanyID,
		Description:     m.Description,
		Status:          domain.JournalEntryStatus(m.Status),
		TotalDebit:      m.TotalDebit,
		TotalCredit:     m.TotalCredit,
		IsAutoGenerated: m.IsAutoGenerated,
		SourceDocType:   m.SourceDocType,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain line.
func ToModelJournalLine(l domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:      l.LineID,
		EntryID:     l.EntryID,
		AccountCode: l.AccountCode,
		EntryType:   string(l.EntryType),
		Amount:      l.Amount,
		Description: l.Description,
		LineOrder:   l.LineOrder,
	}
}

// ToDomainJournalLine converts a persisted line.
func ToDomainJournalLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		EntryType:   domain.EntryType(m.EntryType),
		Amount:      m.Amount,
		Description: m.Description,
		LineOrder:   m.LineOrder,
	}
}
