package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EventRepo       EventRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	SettingRepo     SettingRepositoryFacade
	RecognitionRepo RecognitionRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	PeriodRepo      PeriodRepositoryFacade
	UnitOfWork      UnitOfWork
}
