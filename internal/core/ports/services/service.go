package services

// ServiceContainer holds instances of all the application services. This is
// the entire surface the presentation layer may call.
type ServiceContainer struct {
	Account     AccountSvc
	Transaction TransactionSvc
	Reporting   ReportingSvc
}
