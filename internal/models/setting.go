package models

// JournalEventSetting is the persisted per (company, event type) configuration
// row. Absence of a row means the pipeline defaults apply.
type JournalEventSetting struct {
	CompanyID            string  `json:"companyID"`
	EventType            string  `json:"eventType"`
	IsEnabled            bool    `json:"isEnabled"`
	AutoPost             bool    `json:"autoPost"`
	DefaultDebitAccount  *string `json:"defaultDebitAccount,omitempty"`
	DefaultCreditAccount *string `json:"defaultCreditAccount,omitempty"`
	AuditFields
}
