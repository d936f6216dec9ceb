package repositories

// RepositoryProvider bundles the concrete repositories built over one shared
// store handle. Constructed once in the composition root and handed to the
// service container.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ReportingRepo   ReportingRepository
}
