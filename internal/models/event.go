package models

import (
	"encoding/json"
	"time"
)

// AccountingEvent is the persisted form of a business occurrence fed to the
// pipeline. The payload column is write-once.
type AccountingEvent struct {
	EventID            string          `json:"eventID"`
	EventType          string          `json:"eventType"`
	EventDate          time.Time       `json:"eventDate"`
	AffectedCompanies  []string        `json:"affectedCompanies"`
	Payload            json.RawMessage `json:"payload"`
	Status             string          `json:"status"`
	Error              *string         `json:"error,omitempty"`
	SourceDocumentType *string         `json:"sourceDocumentType,omitempty"`
	SourceDocumentID   *string         `json:"sourceDocumentID,omitempty"`
	AuditFields
}
