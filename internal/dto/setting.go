package dto

import (
	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

// UpsertSettingRequest creates or replaces the configuration for one
// (company, event type) pair.
type UpsertSettingRequest struct {
	EventType            string  `json:"eventType" binding:"required"`
	IsEnabled            *bool   `json:"isEnabled"` // nil means enabled
	AutoPost             bool    `json:"autoPost"`
	DefaultDebitAccount  *string `json:"defaultDebitAccount,omitempty"`
	DefaultCreditAccount *string `json:"defaultCreditAccount,omitempty"`
}

// SettingResponse is the outbound form of a journal event setting.
type SettingResponse struct {
	CompanyID            string  `json:"companyID"`
	EventType            string  `json:"eventType"`
	IsEnabled            bool    `json:"isEnabled"`
	AutoPost             bool    `json:"autoPost"`
	DefaultDebitAccount  *string `json:"defaultDebitAccount,omitempty"`
	DefaultCreditAccount *string `json:"defaultCreditAccount,omitempty"`
	Configured           bool    `json:"configured"`
}

// ToSettingResponse converts a domain setting; configured tells the caller
// whether an explicit row exists or defaults are in effect.
func ToSettingResponse(s domain.JournalEventSetting, configured bool) SettingResponse {
	return SettingResponse{
		CompanyID:            s.CompanyID,
		EventType:            string(s.EventType),
		IsEnabled:            s.IsEnabled,
		AutoPost:             s.AutoPost,
		DefaultDebitAccount:  s.DefaultDebitAccount,
		DefaultCreditAccount: s.DefaultCreditAccount,
		Configured:           configured,
	}
}
