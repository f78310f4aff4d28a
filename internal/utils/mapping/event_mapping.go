package mapping

import (
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/models"
)

// ToModelEvent converts a domain event to its persistence model.
func ToModelEvent(e domain.AccountingEvent) models.AccountingEvent {
	return models.AccountingEvent{
		EventID:            e.EventID,
		EventType:          string(e.EventType),
		EventDate:          e.EventDate,
		AffectedCompanies:  e.AffectedCompanies,
		Payload:            e.Payload,
		Status:             string(e.Status),
		Error:              e.Error,
		SourceDocumentType: e.SourceDocumentType,
		SourceDocumentID:   e.SourceDocumentID,
		AuditFields:        toModelAudit(e.AuditFields),
	}
}

// ToDomainEvent converts a persisted event back to the domain type.
func ToDomainEvent(m models.AccountingEvent) domain.AccountingEvent {
	return domain.AccountingEvent{
		EventID:            m.EventID,
		EventType:          domain.EventType(m.EventType),
		EventDate:          m.EventDate,
		AffectedCompanies:  m.AffectedCompanies,
		Payload:            m.Payload,
		Status:             domain.EventStatus(m.Status),
		Error:              m.Error,
		SourceDocumentType: m.SourceDocumentType,
		SourceDocumentID:   m.SourceDocumentID,
		AuditFields:        toDomainAudit(m.AuditFields),
	}
}

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}
