package repositories

import (
	"context"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
)

// ListAccountsQuery filters ListAccounts at the repository level.
type ListAccountsQuery struct {
	AccountType *domain.AccountType
	NameSearch  string
	Limit       int
	Offset      int
}

// AccountRepositoryFacade is the persistence port for the chart of accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	FindAccountByName(ctx context.Context, churchID string, name string) (*domain.Account, error)
	ListAccounts(ctx context.Context, churchID string, query ListAccountsQuery) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, at time.Time) error
	// DeleteAccount hard-deletes the row. Callers must check
	// CountJournalLineReferences first; the repository does not re-check.
	DeleteAccount(ctx context.Context, accountID string) error
	// CountJournalLineReferences reports how many journal lines post against
	// the account. Used for referential protection on delete.
	CountJournalLineReferences(ctx context.Context, accountID string) (int64, error)
}
