package domain

// JournalEventSetting is the per (company, event type) configuration overlay.
// Absence of a row means fully enabled, not auto-posted, no account overrides —
// the lookup layer distinguishes "not configured" from "configured but disabled".
type JournalEventSetting struct {
	CompanyID            string    `json:"companyID"`
	EventType            EventType `json:"eventType"`
	IsEnabled            bool      `json:"isEnabled"`
	AutoPost             bool      `json:"autoPost"`
	DefaultDebitAccount  *string   `json:"defaultDebitAccount,omitempty"`
	DefaultCreditAccount *string   `json:"defaultCreditAccount,omitempty"`
	AuditFields
}

// DefaultJournalEventSetting returns the behaviour used when no setting row
// exists for the pair: enabled, draft entries, no overrides.
func DefaultJournalEventSetting(companyID string, eventType EventType) JournalEventSetting {
	return JournalEventSetting{
		CompanyID: companyID,
		EventType: eventType,
		IsEnabled: true,
		AutoPost:  false,
	}
}
