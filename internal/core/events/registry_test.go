package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/core/events"
	"github.com/harborops/charter_accounting_app/internal/utils/accounting"
)

// validPayloads carries one well-formed payload per event type, used both for
// registry coverage and for the balance property below.
var validPayloads = map[domain.EventType]string{
	domain.EventExpenseApproved: `{
		"expenseNumber": "EXP-001", "vendorName": "Dockside Services",
		"lines": [{"category": "FUEL", "description": "Fuel", "amount": "1000"},
		          {"category": "PROVISIONS", "description": "Provisions", "amount": "2000"}],
		"vatAmount": "210"
	}`,
	domain.EventExpensePaid:         `{"expenseNumber": "EXP-001", "amount": "3210", "paymentMethod": "BANK", "bankAccountCode": "1020"}`,
	domain.EventPettyCashAdvance:    `{"custodian": "Deck Crew", "amount": "500"}`,
	domain.EventPettyCashSettlement: `{"custodian": "Deck Crew", "lines": [{"category": "SUPPLIES", "amount": "120"}], "vatAmount": "12"}`,
	domain.EventPettyCashReturn:     `{"custodian": "Deck Crew", "amount": "368"}`,
	domain.EventInvoiceIssued:       `{"invoiceNumber": "INV-042", "customerName": "Blue Horizon", "netAmount": "10000", "vatAmount": "2100"}`,
	domain.EventReceiptRecorded: `{
		"receiptNumber": "RCPT-100",
		"vatAmount": "210",
		"lines": [{"lineID": "L1", "description": "Charter fee", "amount": "1000", "deferred": true},
		          {"lineID": "L2", "description": "Delivered service", "amount": "500", "deferred": false}]
	}`,
	domain.EventDepositReceived:        `{"reference": "DEP-7", "amount": "2500"}`,
	domain.EventManagementFeeCharged:   `{"payingCompanyID": "CO-PROJ", "managingCompanyID": "CO-MGMT", "amount": "10000"}`,
	domain.EventIntercompanySettlement: `{"payingCompanyID": "CO-PROJ", "receivingCompanyID": "CO-MGMT", "amount": "10000"}`,
	domain.EventIntercompanyReceipt:    `{"collectingCompanyID": "CO-MGMT", "beneficiaryCompanyID": "CO-PROJ", "amount": "4500"}`,
	domain.EventIntercompanyExpense:    `{"payingCompanyID": "CO-MGMT", "owingCompanyID": "CO-PROJ", "amount": "800"}`,
	domain.EventPayrollPosted:          `{"periodLabel": "2025-06", "grossAmount": "20000", "whtAmount": "3000", "netAmount": "17000"}`,
	domain.EventVATRemitted:            `{"periodLabel": "2025-Q2", "amount": "4200"}`,
	domain.EventWithholdingTaxRemitted: `{"periodLabel": "2025-Q2", "amount": "3000"}`,
	domain.EventOwnerDistribution: `{
		"totalProfit": "9000",
		"allocations": [{"partnerID": "P1", "amount": "6000"}, {"partnerID": "P2", "amount": "3000"}]
	}`,
	domain.EventBankTransfer: `{"fromAccountCode": "1020", "toAccountCode": "1021", "amount": "500"}`,
	domain.EventBankCharge:   `{"amount": "25", "description": "Wire fee"}`,
}

func eventFor(t *testing.T, eventType domain.EventType, companies ...string) domain.AccountingEvent {
	t.Helper()
	payload, ok := validPayloads[eventType]
	require.True(t, ok, "no payload fixture for %s", eventType)
	return domain.AccountingEvent{
		EventID:           "evt-1",
		EventType:         eventType,
		EventDate:         time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		AffectedCompanies: companies,
		Payload:           json.RawMessage(payload),
		Status:            domain.EventPending,
	}
}

func TestRegistryCoversEveryEventType(t *testing.T) {
	registry := events.NewRegistry()
	for _, eventType := range domain.KnownEventTypes() {
		handler, err := registry.Resolve(eventType)
		require.NoError(t, err, "no handler for %s", eventType)
		assert.NotNil(t, handler)
	}

	_, err := registry.Resolve("NOT_AN_EVENT")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// Every handler must emit balanced specs for a valid payload, regardless of
// event type. This is the property the pipeline's balance check enforces at
// runtime; the handlers should never trip it.
func TestEveryHandlerGeneratesBalancedSpecs(t *testing.T) {
	registry := events.NewRegistry()
	for _, eventType := range domain.KnownEventTypes() {
		t.Run(string(eventType), func(t *testing.T) {
			handler, err := registry.Resolve(eventType)
			require.NoError(t, err)

			companies := []string{"CO-PROJ"}
			if domain.IsPairedEventType(eventType) {
				companies = []string{"CO-PROJ", "CO-MGMT"}
			}
			event := eventFor(t, eventType, companies...)

			require.NoError(t, handler.Validate(event.Payload))

			specs, err := handler.GenerateJournals(event)
			require.NoError(t, err)
			require.NotEmpty(t, specs)
			for _, spec := range specs {
				assert.NoError(t, accounting.ValidateSpecBalance(spec), "unbalanced spec for %s company %s", eventType, spec.CompanyID)
			}
		})
	}
}

func TestPairedHandlersMirrorAmounts(t *testing.T) {
	registry := events.NewRegistry()
	for _, eventType := range domain.KnownEventTypes() {
		if !domain.IsPairedEventType(eventType) {
			continue
		}
		t.Run(string(eventType), func(t *testing.T) {
			handler, err := registry.Resolve(eventType)
			require.NoError(t, err)

			event := eventFor(t, eventType, "CO-PROJ", "CO-MGMT")
			specs, err := handler.GenerateJournals(event)
			require.NoError(t, err)
			require.Len(t, specs, 2)
			assert.NotEqual(t, specs[0].CompanyID, specs[1].CompanyID)
			assert.True(t, specs[0].TotalDebits().Equal(specs[1].TotalDebits()),
				"sides differ: %s vs %s", specs[0].TotalDebits(), specs[1].TotalDebits())
		})
	}
}

func TestPairedValidationRejectsSameCompany(t *testing.T) {
	registry := events.NewRegistry()
	handler, err := registry.Resolve(domain.EventManagementFeeCharged)
	require.NoError(t, err)

	err = handler.Validate(json.RawMessage(`{"payingCompanyID": "CO-A", "managingCompanyID": "CO-A", "amount": "100"}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReceiptDeferredLinesCreditDeferredRevenue(t *testing.T) {
	registry := events.NewRegistry()
	handler, err := registry.Resolve(domain.EventReceiptRecorded)
	require.NoError(t, err)

	event := eventFor(t, domain.EventReceiptRecorded, "CO-PROJ")
	specs, err := handler.GenerateJournals(event)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	rolesBySide := map[domain.EntryType][]domain.AccountRole{}
	for _, line := range specs[0].Lines {
		rolesBySide[line.EntryType] = append(rolesBySide[line.EntryType], line.Role)
	}
	assert.Contains(t, rolesBySide[domain.Credit], domain.RoleDeferredRevenue)
	assert.Contains(t, rolesBySide[domain.Credit], domain.RoleRevenue)
	assert.Contains(t, rolesBySide[domain.Credit], domain.RoleVATPayable)
	assert.Equal(t, []domain.AccountRole{domain.RoleBank}, rolesBySide[domain.Debit])
}

func TestPayrollValidationRequiresGrossSplit(t *testing.T) {
	registry := events.NewRegistry()
	handler, err := registry.Resolve(domain.EventPayrollPosted)
	require.NoError(t, err)

	err = handler.Validate(json.RawMessage(`{"periodLabel": "2025-06", "grossAmount": "20000", "whtAmount": "1000", "netAmount": "17000"}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOwnerDistributionAllocationsMustSum(t *testing.T) {
	registry := events.NewRegistry()
	handler, err := registry.Resolve(domain.EventOwnerDistribution)
	require.NoError(t, err)

	err = handler.Validate(json.RawMessage(`{"totalProfit": "9000", "allocations": [{"partnerID": "P1", "amount": "6000"}]}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMalformedPayloadIsValidationError(t *testing.T) {
	registry := events.NewRegistry()
	for _, eventType := range domain.KnownEventTypes() {
		handler, err := registry.Resolve(eventType)
		require.NoError(t, err)
		assert.ErrorIs(t, handler.Validate(json.RawMessage(`{not json`)), apperrors.ErrValidation, "event type %s", eventType)
		assert.ErrorIs(t, handler.Validate(nil), apperrors.ErrValidation, "event type %s", eventType)
	}
}
