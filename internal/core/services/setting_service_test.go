package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/core/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

func TestSettingResolveFallsBackToDefaults(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	mockRepo.On("FindSetting", mock.Anything, "CO-A", domain.EventExpenseApproved).
		Return(nil, apperrors.ErrNotFound).Once()

	setting, configured, err := service.Resolve(context.Background(), "CO-A", domain.EventExpenseApproved)
	require.NoError(t, err)
	assert.False(t, configured)
	assert.True(t, setting.IsEnabled)
	assert.False(t, setting.AutoPost)
	assert.Nil(t, setting.DefaultDebitAccount)
	assert.Nil(t, setting.DefaultCreditAccount)
}

func TestSettingResolveReturnsConfiguredRow(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	creditOverride := "4999"
	mockRepo.On("FindSetting", mock.Anything, "CO-A", domain.EventReceiptRecorded).
		Return(&domain.JournalEventSetting{
			CompanyID:            "CO-A",
			EventType:            domain.EventReceiptRecorded,
			IsEnabled:            false,
			AutoPost:             true,
			DefaultCreditAccount: &creditOverride,
		}, nil).Once()

	setting, configured, err := service.Resolve(context.Background(), "CO-A", domain.EventReceiptRecorded)
	require.NoError(t, err)
	assert.True(t, configured)
	assert.False(t, setting.IsEnabled)
	assert.True(t, setting.AutoPost)
	require.NotNil(t, setting.DefaultCreditAccount)
	assert.Equal(t, creditOverride, *setting.DefaultCreditAccount)
}

func TestSettingResolvePropagatesRepositoryFailure(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	mockRepo.On("FindSetting", mock.Anything, "CO-A", domain.EventExpenseApproved).
		Return(nil, assert.AnError).Once()

	_, _, err := service.Resolve(context.Background(), "CO-A", domain.EventExpenseApproved)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSettingUpsertRejectsUnknownEventType(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	_, err := service.Upsert(context.Background(), "CO-A", dto.UpsertSettingRequest{
		EventType: "NOT_A_THING",
	}, "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "UpsertSetting", mock.Anything, mock.Anything)
}

func TestSettingUpsertDefaultsEnabledWhenUnset(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	var saved domain.JournalEventSetting
	mockRepo.On("UpsertSetting", mock.Anything, mock.AnythingOfType("domain.JournalEventSetting")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.JournalEventSetting) }).
		Return(nil).Once()

	setting, err := service.Upsert(context.Background(), "CO-A", dto.UpsertSettingRequest{
		EventType: string(domain.EventPayrollPosted),
		AutoPost:  true,
	}, "user-1")
	require.NoError(t, err)
	assert.True(t, setting.IsEnabled)
	assert.True(t, saved.IsEnabled)
	assert.True(t, saved.AutoPost)
	assert.Equal(t, "user-1", saved.CreatedBy)
}

func TestSettingUpsertDisables(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	disabled := false
	mockRepo.On("UpsertSetting", mock.Anything, mock.Anything).Return(nil).Once()

	setting, err := service.Upsert(context.Background(), "CO-A", dto.UpsertSettingRequest{
		EventType: string(domain.EventBankCharge),
		IsEnabled: &disabled,
	}, "user-1")
	require.NoError(t, err)
	assert.False(t, setting.IsEnabled)
}

func TestSettingListByCompany(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	rows := []domain.JournalEventSetting{
		{CompanyID: "CO-A", EventType: domain.EventExpenseApproved, IsEnabled: true},
		{CompanyID: "CO-A", EventType: domain.EventBankCharge, IsEnabled: false},
	}
	mockRepo.On("ListSettingsByCompany", mock.Anything, "CO-A").Return(rows, nil).Once()

	got, err := service.ListByCompany(context.Background(), "CO-A")
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
