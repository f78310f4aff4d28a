package services

import (
	"github.com/harborops/charter_accounting_app/internal/core/events"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
)

// ServicesContainer holds every service the handlers depend on.
type ServicesContainer struct {
	PipelineSvc    portssvc.EventPipelineSvcFacade
	JournalSvc     portssvc.JournalSvcFacade
	SettingSvc     portssvc.SettingSvcFacade
	RecognitionSvc portssvc.RecognitionSvcFacade
	ClosingSvc     portssvc.ClosingSvcFacade
}

// NewServicesContainer wires all services against the repository provider.
func NewServicesContainer(repos *portsrepo.RepositoryProvider) *ServicesContainer {
	registry := events.NewRegistry()
	settingSvc := NewSettingService(repos.SettingRepo)
	return &ServicesContainer{
		PipelineSvc:    NewEventPipelineService(registry, repos.EventRepo, repos.JournalRepo, settingSvc, repos.UnitOfWork),
		JournalSvc:     NewJournalService(repos.JournalRepo),
		SettingSvc:     settingSvc,
		RecognitionSvc: NewRecognitionService(repos.RecognitionRepo),
		ClosingSvc:     NewClosingService(repos.JournalRepo, repos.AccountRepo, repos.PeriodRepo, repos.UnitOfWork),
	}
}
