package dto

import (
	"time"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecognitionRequest registers one revenue-bearing receipt line for
// deferred-revenue tracking.
type CreateRecognitionRequest struct {
	CompanyID              string          `json:"companyID" binding:"required"`
	ProjectID              string          `json:"projectID"`
	ReceiptID              string          `json:"receiptID" binding:"required"`
	ReceiptLineID          string          `json:"receiptLineID" binding:"required"`
	CharterDateFrom        *time.Time      `json:"charterDateFrom,omitempty"`
	CharterDateTo          *time.Time      `json:"charterDateTo,omitempty"`
	Amount                 decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode           string          `json:"currencyCode" binding:"required"`
	DeferredRevenueAccount string          `json:"deferredRevenueAccount,omitempty"`
	RevenueAccount         string          `json:"revenueAccount,omitempty"`
}

// UpdateServiceDatesRequest supplies the missing service window for a row in
// NEEDS_REVIEW (or adjusts a pending one).
type UpdateServiceDatesRequest struct {
	CharterDateFrom *time.Time `json:"charterDateFrom,omitempty"`
	CharterDateTo   *time.Time `json:"charterDateTo" binding:"required"`
}

// RecognizeManuallyRequest triggers early recognition of a pending row.
type RecognizeManuallyRequest struct {
	RecognitionDate *time.Time `json:"recognitionDate,omitempty"`
}

// SweepResult reports one automatic recognition sweep run.
type SweepResult struct {
	RecognizedCount int      `json:"recognizedCount"`
	RecognizedIDs   []string `json:"recognizedIDs"`
}

// RecognitionResponse is the outbound form of a revenue recognition row.
type RecognitionResponse struct {
	RecognitionID          string          `json:"recognitionID"`
	CompanyID              string          `json:"companyID"`
	ProjectID              string          `json:"projectID,omitempty"`
	ReceiptID              string          `json:"receiptID"`
	ReceiptLineID          string          `json:"receiptLineID"`
	CharterDateFrom        *time.Time      `json:"charterDateFrom,omitempty"`
	CharterDateTo          *time.Time      `json:"charterDateTo,omitempty"`
	Status                 string          `json:"status"`
	Amount                 decimal.Decimal `json:"amount"`
	CurrencyCode           string          `json:"currencyCode"`
	DeferredRevenueAccount string          `json:"deferredRevenueAccount"`
	RevenueAccount         string          `json:"revenueAccount"`
	RecognitionDate        *time.Time      `json:"recognitionDate,omitempty"`
	RecognitionTrigger     *string         `json:"recognitionTrigger,omitempty"`
}

// ToRecognitionResponse converts a domain recognition row.
func ToRecognitionResponse(r *domain.RevenueRecognition) RecognitionResponse {
	resp := RecognitionResponse{
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
	}
	if r.RecognitionTrigger != nil {
		trigger := string(*r.RecognitionTrigger)
		resp.RecognitionTrigger = &trigger
	}
	return resp
}
