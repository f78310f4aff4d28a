package dto

import (
	"encoding/json"
	"time"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// CreateEventRequest is the inbound document for the event pipeline.
type CreateEventRequest struct {
	EventType          string          `json:"eventType" binding:"required"`
	EventDate          time.Time       `json:"eventDate" binding:"required"`
	Companies          []string        `json:"companies" binding:"required,min=1,dive,required"`
	Payload            json.RawMessage `json:"payload" binding:"required"`
	SourceDocumentType *string         `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   *string         `json:"sourceDocumentID,omitempty"`
}

// ProcessEventResult is the typed outcome of one pipeline call. Expected
// business conditions (validation failure, imbalance, all companies disabled)
// come back here with Success=false rather than as an error.
type ProcessEventResult struct {
	Success         bool     `json:"success"`
	EventID         string   `json:"eventID"`
	JournalEntryIDs []string `json:"journalEntryIDs"`
	Error           string   `json:"error,omitempty"`
}

// EventResponse is the outbound representation of an accounting event.
type EventResponse struct {
	EventID            string          `json:"eventID"`
	EventType          string          `json:"eventType"`
	EventDate          time.Time       `json:"eventDate"`
	AffectedCompanies  []string        `json:"affectedCompanies"`
	Payload            json.RawMessage `json:"payload"`
	Status             string          `json:"status"`
	Error              *string         `json:"error,omitempty"`
	SourceDocumentType *string         `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   *string         `json:"sourceDocumentID,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ToEventResponse converts a domain event to its response form.
func ToEventResponse(e *domain.AccountingEvent) EventResponse {
	return EventResponse{
		EventID:            e.EventID,
		EventType:          string(e.EventType),
		EventDate:          e.EventDate,
		AffectedCompanies:  e.AffectedCompanies,
		Payload:            e.Payload,
		Status:             string(e.Status),
		Error:              e.Error,
		SourceDocumentType: e.SourceDocumentType,
		SourceDocumentID:   e.SourceDocumentID,
		CreatedAt:          e.CreatedAt,
	}
}
