package services

import (
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
)

// ServiceProvider bundles the constructed services for wiring.
type ServiceProvider struct {
	AccountSvc   portssvc.AccountSvcFacade
	JournalSvc   portssvc.JournalSvcFacade
	LedgerSvc    portssvc.LedgerSvcFacade
	ReportingSvc portssvc.ReportingSvcFacade
	SeedSvc      portssvc.SeedSvcFacade
}

// NewServiceProvider wires the services onto the repository provider.
func NewServiceProvider(repos portsrepo.RepositoryProvider) ServiceProvider {
	accountSvc := NewAccountService(repos.AccountRepo)
	return ServiceProvider{
		AccountSvc:   accountSvc,
		JournalSvc:   NewJournalService(repos.JournalRepo, accountSvc),
		LedgerSvc:    NewLedgerService(repos.LedgerRepo, repos.AccountRepo),
		ReportingSvc: NewReportingService(repos.ReportingRepo),
		SeedSvc:      NewSeedService(repos.AccountRepo),
	}
}
