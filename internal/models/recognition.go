package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRecognition is the persisted state of one receipt line awaiting
// recognition.
type RevenueRecognition struct {
	RecognitionID          string          `json:"recognitionID"`
	CompanyID              string          `json:"companyID"`
	ProjectID              string          `json:"projectID"`
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
	AuditFields
}
