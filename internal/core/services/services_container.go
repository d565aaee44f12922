package services

import (
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the service graph. The church service doubles as
// the authorizer for every ledger service.
func NewServiceContainer(repos portsrepo.RepositoryContainer, periodCache portsrepo.PeriodStatusCache) portssvc.ServiceContainer {
	churchSvc := NewChurchService(repos.Church)
	auditSvc := NewAuditService(repos.Audit)
	periodSvc := NewFiscalPeriodService(repos.FiscalPeriod, periodCache, churchSvc, auditSvc)
	accountSvc := NewAccountService(repos.Account, churchSvc, auditSvc)
	journalSvc := NewJournalService(repos.Journal, accountSvc, periodSvc, churchSvc, auditSvc)

	return portssvc.ServiceContainer{
		Account:          accountSvc,
		Journal:          journalSvc,
		FiscalPeriod:     periodSvc,
		BeginningBalance: NewBeginningBalanceService(repos.BeginningBalance, repos.Journal, journalSvc, churchSvc, auditSvc),
		Church:           churchSvc,
		Audit:            auditSvc,
	}
}
