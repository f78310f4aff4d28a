package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecognitionStatus is the state of one revenue-bearing receipt line awaiting
// recognition.
type RecognitionStatus string

const (
	RecognitionPending     RecognitionStatus = "PENDING"
	RecognitionNeedsReview RecognitionStatus = "NEEDS_REVIEW"
	Recognized             RecognitionStatus = "RECOGNIZED"
	ManualRecognized       RecognitionStatus = "MANUAL_RECOGNIZED"
)

// RecognitionTrigger records how a row reached a recognized state.
type RecognitionTrigger string

const (
	TriggerAutomatic RecognitionTrigger = "AUTOMATIC"
	TriggerManual    RecognitionTrigger = "MANUAL"
	TriggerImmediate RecognitionTrigger = "IMMEDIATE"
)

// RevenueRecognition tracks whether cash received for a receipt line is income
// or a deferred liability until the service window has passed.
type RevenueRecognition struct {
	RecognitionID          string             `json:"recognitionID"`
	CompanyID              string             `json:"companyID"`
	ProjectID              string             `json:"projectID"`
	ReceiptID              string             `json:"receiptID"`
	ReceiptLineID          string             `json:"receiptLineID"`
	CharterDateFrom        *time.Time         `json:"charterDateFrom,omitempty"`
	CharterDateTo          *time.Time         `json:"charterDateTo,omitempty"`
	Status                 RecognitionStatus  `json:"status"`
	Amount                 decimal.Decimal    `json:"amount"`
	CurrencyCode           string             `json:"currencyCode"`
	DeferredRevenueAccount string             `json:"deferredRevenueAccount"`
	RevenueAccount         string             `json:"revenueAccount"`
	RecognitionDate        *time.Time         `json:"recognitionDate,omitempty"`
	RecognitionTrigger     *RecognitionTrigger `json:"recognitionTrigger,omitempty"`
	AuditFields
}

// IsTerminal reports whether the status admits no further transitions.
func (s RecognitionStatus) IsTerminal() bool {
	return s == Recognized || s == ManualRecognized
}

// ComputeInitialRecognitionStatus derives the creation-time status from the
// service-window end date: already past means recognized immediately, a future
// date means pending, a missing date means a human has to review.
func ComputeInitialRecognitionStatus(charterDateTo *time.Time, today time.Time) RecognitionStatus {
	if charterDateTo == nil {
		return RecognitionNeedsReview
	}
	if !charterDateTo.After(today) {
		return Recognized
	}
	return RecognitionPending
}
