package mapping

import (
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/models"
)

// ToDomainAccount converts a persisted chart-of-accounts row.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountCode: m.AccountCode,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		IsActive:    m.IsActive,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainPeriod converts a persisted accounting period row.
func ToDomainPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		CompanyID:   m.CompanyID,
		FiscalYear:  m.FiscalYear,
		Month:       m.Month,
		IsClosed:    m.IsClosed,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}
