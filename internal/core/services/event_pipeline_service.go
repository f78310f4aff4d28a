package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	"github.com/harborops/charter_accounting_app/internal/core/events"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
	"github.com/harborops/charter_accounting_app/internal/middleware"
	"github.com/harborops/charter_accounting_app/internal/utils/accounting"
)

// eventPipelineService turns accounting events into balanced journal entries.
// It is stateless between calls; the handler registry is read-only after
// startup, so concurrent calls need no coordination beyond the store.
type eventPipelineService struct {
	registry    *events.Registry
	eventRepo   portsrepo.EventRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
	settingSvc  portssvc.SettingSvcFacade
	uow         portsrepo.UnitOfWork
}

// NewEventPipelineService creates the pipeline service.
func NewEventPipelineService(
	registry *events.Registry,
	eventRepo portsrepo.EventRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	settingSvc portssvc.SettingSvcFacade,
	uow portsrepo.UnitOfWork,
) portssvc.EventPipelineSvcFacade {
	return &eventPipelineService{
		registry:    registry,
		eventRepo:   eventRepo,
		journalRepo: journalRepo,
		settingSvc:  settingSvc,
		uow:         uow,
	}
}

var _ portssvc.EventPipelineSvcFacade = (*eventPipelineService)(nil)

// companySpec pairs a balanced, account-resolved spec with the setting that
// governed its company.
type companySpec struct {
	spec    domain.JournalSpec
	setting domain.JournalEventSetting
}

// CreateAndProcess persists the event and runs validation, settings checks,
// journal generation, default-account substitution, the balance check and
// persistence as one all-or-nothing unit. Expected business failures mark the
// event FAILED and come back in the result; only unexpected faults error out.
func (s *eventPipelineService) CreateAndProcess(ctx context.Context, req dto.CreateEventRequest, actorUserID string) (*dto.ProcessEventResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	eventType := domain.EventType(req.EventType)
	if !domain.IsKnownEventType(eventType) {
		return nil, fmt.Errorf("%w: unknown event type %s", apperrors.ErrValidation, req.EventType)
	}
	if len(req.Companies) == 0 {
		return nil, fmt.Errorf("%w: at least one affected company is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	event := domain.AccountingEvent{
		EventID:            uuid.NewString(),
		EventType:          eventType,
		EventDate:          req.EventDate,
		AffectedCompanies:  req.Companies,
		Payload:            req.Payload,
		Status:             domain.EventPending,
		SourceDocumentType: req.SourceDocumentType,
		SourceDocumentID:   req.SourceDocumentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	logger = logger.With(slog.String("event_id", event.EventID), slog.String("event_type", string(eventType)))

	result := &dto.ProcessEventResult{EventID: event.EventID}
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		return s.process(txCtx, logger, event, actorUserID, result)
	})
	if err != nil {
		// Unexpected fault: the transaction rolled back, so no journals (and
		// no event row) were committed. Record the event as failed so the
		// occurrence itself is not lost, then propagate.
		logger.Error("Event pipeline failed unexpectedly", slog.String("error", err.Error()))
		s.recordFailedEvent(ctx, logger, event, actorUserID, err)
		return nil, err
	}
	return result, nil
}

// process runs steps 1-9 inside the unit of work. Expected business failures
// fill the result and return nil so the event row and its FAILED/PROCESSED
// status still commit; returning an error aborts the whole unit.
func (s *eventPipelineService) process(ctx context.Context, logger *slog.Logger, event domain.AccountingEvent, actorUserID string, result *dto.ProcessEventResult) error {
	now := event.CreatedAt

	// Step 1: persist the event immutably with status PENDING.
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Step 2: resolve the handler and validate the payload. A validation
	// failure is a normal, expected outcome.
	handler, err := s.registry.Resolve(event.EventType)
	if err != nil {
		return s.failEvent(ctx, logger, event.EventID, actorUserID, now, result, err)
	}
	if err := handler.Validate(event.Payload); err != nil {
		logger.Warn("Event payload failed validation", slog.String("error", err.Error()))
		return s.failEvent(ctx, logger, event.EventID, actorUserID, now, result, err)
	}

	// Steps 3-4: settings check per company, in list order. Disabled
	// companies are skipped silently; all skipped means nothing to record,
	// which is a success.
	settingsByCompany := make(map[string]domain.JournalEventSetting, len(event.AffectedCompanies))
	enabled := make(map[string]bool, len(event.AffectedCompanies))
	anyEnabled := false
	for _, companyID := range event.AffectedCompanies {
		setting, _, err := s.settingSvc.Resolve(ctx, companyID, event.EventType)
		if err != nil {
			return fmt.Errorf("failed to resolve settings for company %s: %w", companyID, err)
		}
		settingsByCompany[companyID] = setting
		if setting.IsEnabled {
			enabled[companyID] = true
			anyEnabled = true
		} else {
			logger.Debug("Company disabled for event type, skipping", slog.String("company_id", companyID))
		}
	}
	if !anyEnabled {
		if err := s.eventRepo.UpdateEventStatus(ctx, event.EventID, domain.EventProcessed, nil, actorUserID, now); err != nil {
			return fmt.Errorf("failed to mark event processed: %w", err)
		}
		result.Success = true
		logger.Info("Event processed with no journal entries: all companies disabled")
		return nil
	}

	// Step 5: generate one spec per affected company, then keep only the
	// enabled ones. Paired types must emit exactly two mirrored specs.
	specs, err := handler.GenerateJournals(event)
	if err != nil {
		return s.failEvent(ctx, logger, event.EventID, actorUserID, now, result, err)
	}
	if domain.IsPairedEventType(event.EventType) && len(specs) != 2 {
		err := fmt.Errorf("%w: paired event type %s generated %d journal specs, want 2", apperrors.ErrImbalance, event.EventType, len(specs))
		logger.Error("Paired event handler violated its contract", slog.String("error", err.Error()))
		return s.failEvent(ctx, logger, event.EventID, actorUserID, now, result, err)
	}

	toPersist := make([]companySpec, 0, len(specs))
	for _, spec := range specs {
		if !enabled[spec.CompanyID] {
			continue
		}
		toPersist = append(toPersist, companySpec{spec: spec, setting: settingsByCompany[spec.CompanyID]})
	}
	if len(toPersist) == 0 {
		if err := s.eventRepo.UpdateEventStatus(ctx, event.EventID, domain.EventProcessed, nil, actorUserID, now); err != nil {
			return fmt.Errorf("failed to mark event processed: %w", err)
		}
		result.Success = true
		return nil
	}

	// Step 6: default-account substitution. An unresolvable line fails the
	// event the same way validation does.
	for i := range toPersist {
		for j := range toPersist[i].spec.Lines {
			code, err := events.ResolveAccountCode(toPersist[i].spec.Lines[j], toPersist[i].setting)
			if err != nil {
				logger.Warn("Account resolution failed", slog.String("error", err.Error()), slog.String("company_id", toPersist[i].spec.CompanyID))
				return s.failEvent(ctx, logger, event.EventID, actorUserID, now, result, err)
			}
			toPersist[i].spec.Lines[j].AccountCode = code
		}
	}

	// Step 7: whole-event balance check. Any imbalance aborts every
	// company's journal, preserving the intercompany pairing. An imbalance
	// is a handler bug and is logged loudly.
	for _, cs := range toPersist {
		if err := accounting.ValidateSpecBalance(cs.spec); err != nil {
			wrapped := fmt.Errorf("%w: %v", apperrors.ErrImbalance, err)
			logger.Error("Generated journal does not balance", slog.String("error", wrapped.Error()), slog.String("company_id", cs.spec.CompanyID))
			return s.failEvent(ctx, logger, event.EventID, actorUserID, now, result, wrapped)
		}
	}

	// Steps 8-9: persist every entry, its lines and the event links, then
	// mark the event processed. All inside the same unit of work.
	entryIDs := make([]string, 0, len(toPersist))
	for _, cs := range toPersist {
		entry, lines, err := s.buildEntry(ctx, event, cs, actorUserID, now)
		if err != nil {
			return err
		}
		if err := s.journalRepo.SaveEntryWithLines(ctx, entry, lines); err != nil {
			return fmt.Errorf("failed to save journal entry for company %s: %w", cs.spec.CompanyID, err)
		}
		if err := s.journalRepo.SaveEventLink(ctx, domain.EventJournalEntry{
			EventID:   event.EventID,
			EntryID:   entry.EntryID,
			CompanyID: entry.CompanyID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to link journal entry %s to event: %w", entry.EntryID, err)
		}
		entryIDs = append(entryIDs, entry.EntryID)
	}

	if err := s.eventRepo.UpdateEventStatus(ctx, event.EventID, domain.EventProcessed, nil, actorUserID, now); err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}

	result.Success = true
	result.JournalEntryIDs = entryIDs
	logger.Info("Event processed", slog.Int("journal_entries", len(entryIDs)))
	return nil
}

// buildEntry turns a resolved, balanced spec into a persistable entry with
// its reference number drawn from the per-company sequence.
func (s *eventPipelineService) buildEntry(ctx context.Context, event domain.AccountingEvent, cs companySpec, actorUserID string, now time.Time) (domain.JournalEntry, []domain.JournalEntryLine, error) {
	seq, err := s.journalRepo.NextReferenceNumber(ctx, cs.spec.CompanyID)
	if err != nil {
		return domain.JournalEntry{}, nil, fmt.Errorf("failed to allocate reference number for company %s: %w", cs.spec.CompanyID, err)
	}

	status := domain.EntryDraft
	if cs.setting.AutoPost {
		status = domain.EntryPosted
	}

	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		ReferenceNumber: fmt.Sprintf("JE-%s-%06d", cs.spec.CompanyID, seq),
		EntryDate:       event.EventDate,
		CompanyID:       cs.spec.CompanyID,
		Description:     cs.spec.Description,
		Status:          status,
		TotalDebit:      cs.spec.TotalDebits(),
		TotalCredit:     cs.spec.TotalCredits(),
		IsAutoGenerated: true,
		SourceDocType:   event.SourceDocumentType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	lines := make([]domain.JournalEntryLine, len(cs.spec.Lines))
	for i, specLine := range cs.spec.Lines {
		lines[i] = domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entry.EntryID,
			AccountCode: specLine.AccountCode,
			EntryType:   specLine.EntryType,
			Amount:      specLine.Amount,
			Description: specLine.Description,
			LineOrder:   i + 1,
		}
	}
	return entry, lines, nil
}

// failEvent marks the event FAILED with the business error message and fills
// the result. It returns nil so the unit of work commits the failed status.
func (s *eventPipelineService) failEvent(ctx context.Context, logger *slog.Logger, eventID, actorUserID string, now time.Time, result *dto.ProcessEventResult, cause error) error {
	msg := cause.Error()
	if err := s.eventRepo.UpdateEventStatus(ctx, eventID, domain.EventFailed, &msg, actorUserID, now); err != nil {
		return fmt.Errorf("failed to mark event failed: %w", err)
	}
	result.Success = false
	result.Error = msg
	return nil
}

// recordFailedEvent best-effort persists the event with FAILED status after
// the transactional unit rolled back, so the occurrence is still traceable.
func (s *eventPipelineService) recordFailedEvent(ctx context.Context, logger *slog.Logger, event domain.AccountingEvent, actorUserID string, cause error) {
	msg := cause.Error()
	event.Status = domain.EventFailed
	event.Error = &msg
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("Failed to record failed event after rollback", slog.String("error", err.Error()))
	}
}

// CancelEvent moves a processed event to CANCELLED. Cancellation is a later
// state transition on an already-processed event, not an abort of an
// in-flight call, and it does not reverse the journals the event produced.
func (s *eventPipelineService) CancelEvent(ctx context.Context, eventID string, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find event for cancellation", slog.String("error", err.Error()), slog.String("event_id", eventID))
		}
		return err
	}

	if err := domain.ValidateEventStatusTransition(event.Status, domain.EventCancelled); err != nil {
		return fmt.Errorf("cannot cancel event %s in status %s: %w", eventID, event.Status, err)
	}

	now := time.Now().UTC()
	if err := s.eventRepo.UpdateEventStatus(ctx, eventID, domain.EventCancelled, nil, actorUserID, now); err != nil {
		logger.Error("Failed to cancel event", slog.String("error", err.Error()), slog.String("event_id", eventID))
		return fmt.Errorf("failed to cancel event %s: %w", eventID, err)
	}

	logger.Info("Event cancelled", slog.String("event_id", eventID))
	return nil
}

// GetEvent retrieves one event.
func (s *eventPipelineService) GetEvent(ctx context.Context, eventID string) (*domain.AccountingEvent, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	return event, nil
}
