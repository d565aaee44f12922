package pgsql

import (
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryContainer(dbPool *pgxpool.Pool) portsrepo.RepositoryContainer {
	counterRepo := NewJournalCounterRepository(dbPool)

	return portsrepo.RepositoryContainer{
		Account:          NewAccountRepository(dbPool),
		Journal:          NewJournalRepository(dbPool, counterRepo),
		JournalCounter:   counterRepo,
		FiscalPeriod:     NewFiscalPeriodRepository(dbPool),
		BeginningBalance: NewBeginningBalanceRepository(dbPool),
		Church:           NewChurchRepository(dbPool),
		Audit:            NewAuditRepository(dbPool),
	}
}
