package mapping

import (
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/models"
)

// ToModelSetting converts a domain setting row.
func ToModelSetting(s domain.JournalEventSetting) models.JournalEventSetting {
	return models.JournalEventSetting{
		CompanyID:            s.CompanyID,
		EventType:            string(s.EventType),
		IsEnabled:            s.IsEnabled,
		AutoPost:             s.AutoPost,
		DefaultDebitAccount:  s.DefaultDebitAccount,
		DefaultCreditAccount: s.DefaultCreditAccount,
		AuditFields:          toModelAudit(s.AuditFields),
	}
}

// ToDomainSetting converts a persisted setting row.
func ToDomainSetting(m models.JournalEventSetting) domain.JournalEventSetting {
	return domain.JournalEventSetting{
		CompanyID:            m.CompanyID,
		EventType:            domain.EventType(m.EventType),
		IsEnabled:            m.IsEnabled,
		AutoPost:             m.AutoPost,
		DefaultDebitAccount:  m.DefaultDebitAccount,
		DefaultCreditAccount: m.DefaultCreditAccount,
		AuditFields:          toDomainAudit(m.AuditFields),
	}
}
