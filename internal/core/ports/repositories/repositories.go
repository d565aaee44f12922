package repositories

// RepositoryContainer bundles all repository facades for injection into the
// service layer.
type RepositoryContainer struct {
	Account          AccountRepositoryFacade
	Journal          JournalRepositoryFacade
	JournalCounter   JournalCounterRepositoryFacade
	FiscalPeriod     FiscalPeriodRepositoryFacade
	BeginningBalance BeginningBalanceRepositoryFacade
	Church           ChurchRepositoryFacade
	Audit            AuditRepositoryFacade
}
