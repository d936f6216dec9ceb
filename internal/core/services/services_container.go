package services

import (
	portsrepo "github.com/pennyledger/backend/internal/core/ports/repositories"
	portssvc "github.com/pennyledger/backend/internal/core/ports/services"
)

// NewServiceContainer wires all services over the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo),
		Reporting:   NewReportingService(repos.ReportingRepo, repos.AccountRepo),
	}
}
