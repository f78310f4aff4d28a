package mapping

import (
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/models"
)

// ToModelRecognition converts a domain recognition row.
func ToModelRecognition(r domain.RevenueRecognition) models.RevenueRecognition {
	m := models.RevenueRecognition{
		RecognitionID:          r.RecognitionID,
		CompanyID:              r.CompanyID,
		ProjectID:              r.ProjectID,
		ReceiptID:              r.ReceiptID,
		ReceiptLineID:          r.ReceiptLineID,
		CharterDateFrom:        r.CharterDateFrom,
		CharterDateTo:          r.CharterDateTo,
		Status:                 string(r.Status),
		Amount:                 r.Amount,
		CurrencyCode:           r.CurrencyCode,
		DeferredRevenueAccount: r.DeferredRevenueAccount,
		RevenueAccount:         r.RevenueAccount,
		RecognitionDate:        r.RecognitionDate,
		AuditFields:            toModelAudit(r.AuditFields),
	}
	if r.RecognitionTrigger != nil {
		trigger := string(*r.RecognitionTrigger)
		m.RecognitionTrigger = &trigger
	}
	return m
}

// ToDomainRecognition converts a persisted recognition row.
func ToDomainRecognition(m models.RevenueRecognition) domain.RevenueRecognition {
	r := domain.RevenueRecognition{
		RecognitionID:          m.RecognitionID,
		CompanyID:              m.CompanyID,
		ProjectID:              m.ProjectID,
		ReceiptID:              m.ReceiptID,
		ReceiptLineID:          m.ReceiptLineID,
		CharterDateFrom:        m.CharterDateFrom,
		CharterDateTo:          m.CharterDateTo,
		Status:                 domain.RecognitionStatus(m.Status),
		Amount:                 m.Amount,
		CurrencyCode:           m.CurrencyCode,
		DeferredRevenueAccount: m.DeferredRevenueAccount,
		RevenueAccount:         m.RevenueAccount,
		RecognitionDate:        m.RecognitionDate,
		AuditFields:            toDomainAudit(m.AuditFields),
	}
	if m.RecognitionTrigger != nil {
		trigger := domain.RecognitionTrigger(*m.RecognitionTrigger)
		r.RecognitionTrigger = &trigger
	}
	return r
}
