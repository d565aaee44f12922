package services

import (
	"context"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	"github.com/gerejaku/church_ledger_app/internal/dto"
)

// AccountService is the chart-of-accounts registry.
type AccountService interface {
	CreateAccount(ctx context.Context, churchID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, churchID string, accountID string, userID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, churchID string, accountIDs []string, userID string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, churchID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error)
	GetAccountTree(ctx context.Context, churchID string, userID string) ([]*domain.AccountNode, error)
	UpdateAccount(ctx context.Context, churchID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, churchID string, accountID string, userID string) error
	DeleteAccount(ctx context.Context, churchID string, accountID string, userID string) error
}

// JournalService is the journal entry engine.
type JournalService interface {
	CreateJournal(ctx context.Context, churchID string, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error)
	GetJournalByID(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error)
	ListJournals(ctx context.Context, churchID string, params dto.ListJournalsParams, userID string) (*dto.ListJournalsResponse, error)
	UpdateJournal(ctx context.Context, churchID string, journalID string, req dto.UpdateJournalRequest, userID string) (*domain.JournalEntry, error)
	ApproveJournal(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error)
	DeleteJournal(ctx context.Context, churchID string, journalID string, userID string) error
}

// FiscalPeriodService owns the open/closed/locked calendar per church-month.
type FiscalPeriodService interface {
	GetCurrentPeriod(ctx context.Context, churchID string, userID string) (*domain.FiscalPeriod, error)
	ClosePeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error)
	LockPeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error)
	UnlockPeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error)
	// IsDateLocked is the single query the journal engine runs before any
	// mutating operation.
	IsDateLocked(ctx context.Context, churchID string, date time.Time) (bool, error)
}

// BeginningBalanceService posts opening-balance snapshots through the
// journal engine.
type BeginningBalanceService interface {
	CreateBeginningBalance(ctx context.Context, churchID string, req dto.CreateBeginningBalanceRequest, userID string) (*domain.BeginningBalance, error)
	GetBeginningBalanceByID(ctx context.Context, churchID string, balanceID string, userID string) (*domain.BeginningBalance, error)
	PostBeginningBalance(ctx context.Context, churchID string, balanceID string, userID string) (*domain.BeginningBalance, error)
}

// ChurchService manages tenants and is the single authorization policy point
// for the ledger core.
type ChurchService interface {
	CreateChurch(ctx context.Context, req dto.CreateChurchRequest, creatorUserID string) (*domain.Church, error)
	ListUserChurches(ctx context.Context, userID string) ([]domain.Church, error)
	AddMember(ctx context.Context, churchID string, targetUserID string, role domain.ChurchRole, actingUserID string) error
	// AuthorizeUserAction is the hoisted authorize(actor, action, resource)
	// check: every core entrypoint calls it exactly once.
	AuthorizeUserAction(ctx context.Context, userID string, churchID string, requiredRole domain.ChurchRole) error
}

// AuditService records before/after snapshots of successful mutations.
// Record is fire-and-forget: it never blocks or fails the ledger operation.
type AuditService interface {
	Record(ctx context.Context, record domain.AuditRecord)
}

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	Account          AccountService
	Journal          JournalService
	FiscalPeriod     FiscalPeriodService
	BeginningBalance BeginningBalanceService
	Church           ChurchService
	Audit            AuditService
}
