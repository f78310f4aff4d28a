package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/core/events"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/core/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

var _ portsrepo.EventRepositoryFacade = (*MockEventRepository)(nil)

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.AccountingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus, errMsg *string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, eventID, status, errMsg, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.AccountingEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingEvent), args.Error(1)
}

func (m *MockEventRepository) ListEventsByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.AccountingEvent, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingEvent), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveEventLink(ctx context.Context, link domain.EventJournalEntry) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockJournalRepository) NextReferenceNumber(ctx context.Context, companyID string) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListPostedEntriesByYear(ctx context.Context, companyID string, year int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock SettingRepository ---
type MockSettingRepository struct {
	mock.Mock
}

var _ portsrepo.SettingRepositoryFacade = (*MockSettingRepository)(nil)

func (m *MockSettingRepository) FindSetting(ctx context.Context, companyID string, eventType domain.EventType) (*domain.JournalEventSetting, error) {
	args := m.Called(ctx, companyID, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEventSetting), args.Error(1)
}

func (m *MockSettingRepository) ListSettingsByCompany(ctx context.Context, companyID string) ([]domain.JournalEventSetting, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEventSetting), args.Error(1)
}

func (m *MockSettingRepository) UpsertSetting(ctx context.Context, setting domain.JournalEventSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// fakeUnitOfWork runs the function directly; the mocks record the calls that
// would have gone through the transaction.
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Test Suite ---
type EventPipelineServiceTestSuite struct {
	suite.Suite
	mockEventRepo   *MockEventRepository
	mockJournalRepo *MockJournalRepository
	mockSettingRepo *MockSettingRepository
	service         portssvc.EventPipelineSvcFacade
	userID          string
	eventDate       time.Time
}

func (s *EventPipelineServiceTestSuite) SetupTest() {
	s.mockEventRepo = new(MockEventRepository)
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockSettingRepo = new(MockSettingRepository)
	settingSvc := services.NewSettingService(s.mockSettingRepo)
	s.service = services.NewEventPipelineService(
		events.NewRegistry(),
		s.mockEventRepo,
		s.mockJournalRepo,
		settingSvc,
		fakeUnitOfWork{},
	)
	s.userID = uuid.NewString()
	s.eventDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func (s *EventPipelineServiceTestSuite) expectNoSetting(companyID string, eventType domain.EventType) {
	s.mockSettingRepo.On("FindSetting", mock.Anything, companyID, eventType).
		Return(nil, apperrors.ErrNotFound).Once()
}

func (s *EventPipelineServiceTestSuite) expectSetting(setting domain.JournalEventSetting) {
	s.mockSettingRepo.On("FindSetting", mock.Anything, setting.CompanyID, setting.EventType).
		Return(&setting, nil).Once()
}

func expenseApprovedPayload() json.RawMessage {
	return json.RawMessage(`{
		"expenseNumber": "EXP-001",
		"vendorName": "Dockside Services Ltd",
		"lines": [
			{"category": "FUEL", "description": "Fuel", "amount": "1000"},
			{"category": "PROVISIONS", "description": "Provisions", "amount": "2000"}
		],
		"vatAmount": "210"
	}`)
}

func (s *EventPipelineServiceTestSuite) TestExpenseApprovedProducesBalancedEntry() {
	ctx := context.Background()

	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.AnythingOfType("domain.AccountingEvent")).Return(nil).Once()
	s.expectNoSetting("CO-A", domain.EventExpenseApproved)
	s.mockJournalRepo.On("NextReferenceNumber", mock.Anything, "CO-A").Return(int64(1), nil).Once()

	var savedEntry domain.JournalEntry
	var savedLines []domain.JournalEntryLine
	s.mockJournalRepo.On("SaveEntryWithLines", mock.Anything, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(1).(domain.JournalEntry)
			savedLines = args.Get(2).([]domain.JournalEntryLine)
		}).Return(nil).Once()
	s.mockJournalRepo.On("SaveEventLink", mock.Anything, mock.AnythingOfType("domain.EventJournalEntry")).Return(nil).Once()
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.AnythingOfType("string"), domain.EventProcessed, (*string)(nil), s.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: string(domain.EventExpenseApproved),
		EventDate: s.eventDate,
		Companies: []string{"CO-A"},
		Payload:   expenseApprovedPayload(),
	}, s.userID)

	s.Require().NoError(err)
	s.Require().True(result.Success)
	s.Require().Len(result.JournalEntryIDs, 1)

	// Two expense lines, one VAT line, one payable line.
	s.Require().Len(savedLines, 4)
	s.Equal("JE-CO-A-000001", savedEntry.ReferenceNumber)
	s.Equal(domain.EntryDraft, savedEntry.Status)
	s.True(savedEntry.IsAutoGenerated)

	var debits, credits decimal.Decimal
	for _, line := range savedLines {
		s.True(line.Amount.IsPositive())
		switch line.EntryType {
		case domain.Debit:
			debits = debits.Add(line.Amount)
		case domain.Credit:
			credits = credits.Add(line.Amount)
		}
	}
	s.True(debits.Equal(decimal.NewFromInt(3210)), "debits were %s", debits)
	s.True(credits.Equal(decimal.NewFromInt(3210)), "credits were %s", credits)

	s.mockEventRepo.AssertExpectations(s.T())
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *EventPipelineServiceTestSuite) TestAutoPostSettingPostsEntry() {
	ctx := context.Background()

	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(nil).Once()
	s.expectSetting(domain.JournalEventSetting{
		CompanyID: "CO-A",
		EventType: domain.EventExpenseApproved,
		IsEnabled: true,
		AutoPost:  true,
	})
	s.mockJournalRepo.On("NextReferenceNumber", mock.Anything, "CO-A").Return(int64(7), nil).Once()

	var savedEntry domain.JournalEntry
	s.mockJournalRepo.On("SaveEntryWithLines", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { savedEntry = args.Get(1).(domain.JournalEntry) }).
		Return(nil).Once()
	s.mockJournalRepo.On("SaveEventLink", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.Anything, domain.EventProcessed, (*string)(nil), s.userID, mock.Anything).Return(nil).Once()

	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: string(domain.EventExpenseApproved),
		EventDate: s.eventDate,
		Companies: []string{"CO-A"},
		Payload:   expenseApprovedPayload(),
	}, s.userID)

	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal(domain.EntryPosted, savedEntry.Status)
	s.Equal("JE-CO-A-000007", savedEntry.ReferenceNumber)
}

func (s *EventPipelineServiceTestSuite) TestManagementFeeMirrorsAcrossCompanies() {
	ctx := context.Background()

	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(nil).Once()
	s.expectNoSetting("CO-PROJ", domain.EventManagementFeeCharged)
	s.expectNoSetting("CO-MGMT", domain.EventManagementFeeCharged)
	s.mockJournalRepo.On("NextReferenceNumber", mock.Anything, "CO-PROJ").Return(int64(3), nil).Once()
	s.mockJournalRepo.On("NextReferenceNumber", mock.Anything, "CO-MGMT").Return(int64(9), nil).Once()

	saved := map[string][]domain.JournalEntryLine{}
	s.mockJournalRepo.On("SaveEntryWithLines", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(domain.JournalEntry)
			saved[entry.CompanyID] = args.Get(2).([]domain.JournalEntryLine)
		}).Return(nil).Twice()
	s.mockJournalRepo.On("SaveEventLink", mock.Anything, mock.Anything).Return(nil).Twice()
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.Anything, domain.EventProcessed, (*string)(nil), s.userID, mock.Anything).Return(nil).Once()

	amount := decimal.NewFromInt(10000)
	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: string(domain.EventManagementFeeCharged),
		EventDate: s.eventDate,
		Companies: []string{"CO-PROJ", "CO-MGMT"},
		Payload:   json.RawMessage(`{"payingCompanyID": "CO-PROJ", "managingCompanyID": "CO-MGMT", "amount": "10000"}`),
	}, s.userID)

	s.Require().NoError(err)
	s.Require().True(result.Success)
	s.Require().Len(result.JournalEntryIDs, 2)
	s.Require().Len(saved, 2)

	// Paying side: expense debit, intercompany payable credit.
	payer := saved["CO-PROJ"]
	s.Require().Len(payer, 2)
	s.Equal(domain.Debit, payer[0].EntryType)
	s.Equal("5010", payer[0].AccountCode)
	s.True(payer[0].Amount.Equal(amount))
	s.Equal(domain.Credit, payer[1].EntryType)
	s.Equal("2410", payer[1].AccountCode)

	// Managing side mirrors it: intercompany receivable debit, revenue credit.
	manager := saved["CO-MGMT"]
	s.Require().Len(manager, 2)
	s.Equal(domain.Debit, manager[0].EntryType)
	s.Equal("1410", manager[0].AccountCode)
	s.True(manager[0].Amount.Equal(amount))
	s.Equal(domain.Credit, manager[1].EntryType)
	s.Equal("4010", manager[1].AccountCode)
}

func (s *EventPipelineServiceTestSuite) TestDisabledCompanySkippedSilently() {
	ctx := context.Background()

	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(nil).Once()
	s.expectSetting(domain.JournalEventSetting{
		CompanyID: "CO-PROJ",
		EventType: domain.EventManagementFeeCharged,
		IsEnabled: false,
	})
	s.expectNoSetting("CO-MGMT", domain.EventManagementFeeCharged)
	s.mockJournalRepo.On("NextReferenceNumber", mock.Anything, "CO-MGMT").Return(int64(1), nil).Once()

	var savedCompanies []string
	s.mockJournalRepo.On("SaveEntryWithLines", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedCompanies = append(savedCompanies, args.Get(1).(domain.JournalEntry).CompanyID)
		}).Return(nil).Once()
	s.mockJournalRepo.On("SaveEventLink", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.Anything, domain.EventProcessed, (*string)(nil), s.userID, mock.Anything).Return(nil).Once()

	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: string(domain.EventManagementFeeCharged),
		EventDate: s.eventDate,
		Companies: []string{"CO-PROJ", "CO-MGMT"},
		Payload:   json.RawMessage(`{"payingCompanyID": "CO-PROJ", "managingCompanyID": "CO-MGMT", "amount": "10000"}`),
	}, s.userID)

	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal([]string{"CO-MGMT"}, savedCompanies)
	s.Len(result.JournalEntryIDs, 1)
}

func (s *EventPipelineServiceTestSuite) TestAllCompaniesDisabledIsProcessedWithZeroEntries() {
	ctx := context.Background()

	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(nil).Once()
	s.expectSetting(domain.JournalEventSetting{
		CompanyID: "CO-A",
		EventType: domain.EventExpenseApproved,
		IsEnabled: false,
	})
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.Anything, domain.EventProcessed, (*string)(nil), s.userID, mock.Anything).Return(nil).Once()

	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: string(domain.EventExpenseApproved),
		EventDate: s.eventDate,
		Companies: []string{"CO-A"},
		Payload:   expenseApprovedPayload(),
	}, s.userID)

	s.Require().NoError(err)
	s.True(result.Success)
	s.Empty(result.JournalEntryIDs)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntryWithLines", mock.Anything, mock.Anything, mock.Anything)
}

func (s *EventPipelineServiceTestSuite) TestValidationFailureMarksEventFailed() {
	ctx := context.Background()

	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(nil).Once()

	var failMsg *string
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.Anything, domain.EventFailed, mock.Anything, s.userID, mock.Anything).
		Run(func(args mock.Arguments) { failMsg = args.Get(3).(*string) }).
		Return(nil).Once()

	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: string(domain.EventExpenseApproved),
		EventDate: s.eventDate,
		Companies: []string{"CO-A"},
		Payload:   json.RawMessage(`{"vendorName": "Dockside", "lines": [{"amount": "100"}]}`),
	}, s.userID)

	s.Require().NoError(err, "expected business failures to come back in the result, not as an error")
	s.False(result.Success)
	s.Require().NotNil(failMsg)
	s.Contains(*failMsg, "expenseNumber")
	s.Contains(result.Error, "expenseNumber")
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntryWithLines", mock.Anything, mock.Anything, mock.Anything)
}

func (s *EventPipelineServiceTestSuite) TestUnknownEventTypeRejectedBeforePersisting() {
	ctx := context.Background()

	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: "SOMETHING_ELSE",
		EventDate: s.eventDate,
		Companies: []string{"CO-A"},
		Payload:   json.RawMessage(`{}`),
	}, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(result)
	s.mockEventRepo.AssertNotCalled(s.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (s *EventPipelineServiceTestSuite) TestTransferBetweenSameAccountFailsEvent() {
	ctx := context.Background()

	s.mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(nil).Once()

	var failMsg *string
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.Anything, domain.EventFailed, mock.Anything, s.userID, mock.Anything).
		Run(func(args mock.Arguments) { failMsg = args.Get(3).(*string) }).
		Return(nil).Once()

	result, err := s.service.CreateAndProcess(ctx, dto.CreateEventRequest{
		EventType: string(domain.EventBankTransfer),
		EventDate: s.eventDate,
		Companies: []string{"CO-A"},
		Payload:   json.RawMessage(`{"fromAccountCode": "1020", "toAccountCode": "1020", "amount": "500"}`),
	}, s.userID)

	s.Require().NoError(err)
	s.False(result.Success)
	s.Require().NotNil(failMsg)
	s.Contains(*failMsg, "must differ")
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntryWithLines", mock.Anything, mock.Anything, mock.Anything)
}

func (s *EventPipelineServiceTestSuite) TestCancelProcessedEvent() {
	ctx := context.Background()
	eventID := uuid.NewString()

	s.mockEventRepo.On("FindEventByID", mock.Anything, eventID).
		Return(&domain.AccountingEvent{EventID: eventID, Status: domain.EventProcessed}, nil).Once()
	s.mockEventRepo.On("UpdateEventStatus", mock.Anything, eventID, domain.EventCancelled, (*string)(nil), s.userID, mock.Anything).Return(nil).Once()

	err := s.service.CancelEvent(ctx, eventID, s.userID)
	s.NoError(err)
	s.mockEventRepo.AssertExpectations(s.T())
}

func (s *EventPipelineServiceTestSuite) TestCancelPendingEventRejected() {
	ctx := context.Background()
	eventID := uuid.NewString()

	s.mockEventRepo.On("FindEventByID", mock.Anything, eventID).
		Return(&domain.AccountingEvent{EventID: eventID, Status: domain.EventPending}, nil).Once()

	err := s.service.CancelEvent(ctx, eventID, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	s.mockEventRepo.AssertNotCalled(s.T(), "UpdateEventStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *EventPipelineServiceTestSuite) TestCancelFailedEventRejected() {
	ctx := context.Background()
	eventID := uuid.NewString()

	s.mockEventRepo.On("FindEventByID", mock.Anything, eventID).
		Return(&domain.AccountingEvent{EventID: eventID, Status: domain.EventFailed}, nil).Once()

	err := s.service.CancelEvent(ctx, eventID, s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func TestEventPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventPipelineServiceTestSuite))
}

func TestDefaultDebitOverrideFromSetting(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	mockJournalRepo := new(MockJournalRepository)
	mockSettingRepo := new(MockSettingRepository)
	settingSvc := services.NewSettingService(mockSettingRepo)
	service := services.NewEventPipelineService(events.NewRegistry(), mockEventRepo, mockJournalRepo, settingSvc, fakeUnitOfWork{})

	debitOverride := "5999"
	mockEventRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(nil).Once()
	mockSettingRepo.On("FindSetting", mock.Anything, "CO-A", domain.EventBankCharge).
		Return(&domain.JournalEventSetting{
			CompanyID:           "CO-A",
			EventType:           domain.EventBankCharge,
			IsEnabled:           true,
			DefaultDebitAccount: &debitOverride,
		}, nil).Once()
	mockJournalRepo.On("NextReferenceNumber", mock.Anything, "CO-A").Return(int64(1), nil).Once()

	var savedLines []domain.JournalEntryLine
	mockJournalRepo.On("SaveEntryWithLines", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { savedLines = args.Get(2).([]domain.JournalEntryLine) }).
		Return(nil).Once()
	mockJournalRepo.On("SaveEventLink", mock.Anything, mock.Anything).Return(nil).Once()
	mockEventRepo.On("UpdateEventStatus", mock.Anything, mock.Anything, domain.EventProcessed, (*string)(nil), "user-1", mock.Anything).Return(nil).Once()

	result, err := service.CreateAndProcess(context.Background(), dto.CreateEventRequest{
		EventType: string(domain.EventBankCharge),
		EventDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Companies: []string{"CO-A"},
		Payload:   json.RawMessage(`{"amount": "25", "description": "Wire fee"}`),
	}, "user-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	for _, line := range savedLines {
		if line.EntryType == domain.Debit {
			assert.Equal(t, debitOverride, line.AccountCode)
		}
	}
}
