package services_test

import (
	"context"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, churchID string, name string) (*domain.Account, error) {
	args := m.Called(ctx, churchID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, churchID string, query portsrepo.ListAccountsQuery) ([]domain.Account, error) {
	args := m.Called(ctx, churchID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, at time.Time) error {
	args := m.Called(ctx, accountID, userID, at)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) CountJournalLineReferences(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.JournalEntry, lines []domain.JournalLine) (string, error) {
	args := m.Called(ctx, journal, lines)
	return args.String(0), args.Error(1)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsByChurch(ctx context.Context, churchID string, query portsrepo.ListJournalsQuery) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, churchID, query)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var nextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		nextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), nextToken, args.Error(2)
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, journal domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error {
	args := m.Called(ctx, journal, lines, replaceLines)
	return args.Error(0)
}

func (m *MockJournalRepository) MarkJournalApproved(ctx context.Context, journalID string, approverID string, approvedAt time.Time) error {
	args := m.Called(ctx, journalID, approverID, approvedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

// --- Mock JournalCounterRepository ---

type MockJournalCounterRepository struct {
	mock.Mock
}

var _ portsrepo.JournalCounterRepositoryFacade = (*MockJournalCounterRepository)(nil)

func (m *MockJournalCounterRepository) NextSequence(ctx context.Context, tx pgx.Tx, churchID string, year int, month int) (int64, error) {
	args := m.Called(ctx, tx, churchID, year, month)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock FiscalPeriodRepository ---

type MockFiscalPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*MockFiscalPeriodRepository)(nil)

func (m *MockFiscalPeriodRepository) FindPeriod(ctx context.Context, churchID string, year int, month int) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, churchID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodRepository) GetOrCreatePeriod(ctx context.Context, churchID string, year int, month int, userID string, at time.Time) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, churchID, year, month, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, at time.Time) error {
	args := m.Called(ctx, periodID, status, userID, at)
	return args.Error(0)
}

// --- Mock PeriodStatusCache ---

type MockPeriodStatusCache struct {
	mock.Mock
}

var _ portsrepo.PeriodStatusCache = (*MockPeriodStatusCache)(nil)

func (m *MockPeriodStatusCache) GetPeriodStatus(ctx context.Context, churchID string, year int, month int) (domain.PeriodStatus, bool, error) {
	args := m.Called(ctx, churchID, year, month)
	return args.Get(0).(domain.PeriodStatus), args.Bool(1), args.Error(2)
}

func (m *MockPeriodStatusCache) SetPeriodStatus(ctx context.Context, churchID string, year int, month int, status domain.PeriodStatus) error {
	args := m.Called(ctx, churchID, year, month, status)
	return args.Error(0)
}

func (m *MockPeriodStatusCache) InvalidatePeriodStatus(ctx context.Context, churchID string, year int, month int) error {
	args := m.Called(ctx, churchID, year, month)
	return args.Error(0)
}

// --- Mock BeginningBalanceRepository ---

type MockBeginningBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BeginningBalanceRepositoryFacade = (*MockBeginningBalanceRepository)(nil)

func (m *MockBeginningBalanceRepository) SaveBeginningBalance(ctx context.Context, balance domain.BeginningBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockBeginningBalanceRepository) FindBeginningBalanceByID(ctx context.Context, balanceID string) (*domain.BeginningBalance, error) {
	args := m.Called(ctx, balanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BeginningBalance), args.Error(1)
}

func (m *MockBeginningBalanceRepository) MarkPosted(ctx context.Context, balanceID string, journalNumber string, userID string, at time.Time) error {
	args := m.Called(ctx, balanceID, journalNumber, userID, at)
	return args.Error(0)
}

// --- Mock ChurchRepository ---

type MockChurchRepository struct {
	mock.Mock
}

var _ portsrepo.ChurchRepositoryFacade = (*MockChurchRepository)(nil)

func (m *MockChurchRepository) SaveChurch(ctx context.Context, church domain.Church, creator domain.ChurchMember) error {
	args := m.Called(ctx, church, creator)
	return args.Error(0)
}

func (m *MockChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Church), args.Error(1)
}

func (m *MockChurchRepository) ListChurchesByUser(ctx context.Context, userID string) ([]domain.Church, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Church), args.Error(1)
}

func (m *MockChurchRepository) FindMemberRole(ctx context.Context, userID string, churchID string) (*domain.ChurchMember, error) {
	args := m.Called(ctx, userID, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChurchMember), args.Error(1)
}

func (m *MockChurchRepository) AddMember(ctx context.Context, member domain.ChurchMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Mock ChurchService (authorizer) ---

type MockChurchService struct {
	mock.Mock
}

var _ portssvc.ChurchService = (*MockChurchService)(nil)

func (m *MockChurchService) CreateChurch(ctx context.Context, req dto.CreateChurchRequest, creatorUserID string) (*domain.Church, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Church), args.Error(1)
}

func (m *MockChurchService) ListUserChurches(ctx context.Context, userID string) ([]domain.Church, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Church), args.Error(1)
}

func (m *MockChurchService) AddMember(ctx context.Context, churchID string, targetUserID string, role domain.ChurchRole, actingUserID string) error {
	args := m.Called(ctx, churchID, targetUserID, role, actingUserID)
	return args.Error(0)
}

func (m *MockChurchService) AuthorizeUserAction(ctx context.Context, userID string, churchID string, requiredRole domain.ChurchRole) error {
	args := m.Called(ctx, userID, churchID, requiredRole)
	return args.Error(0)
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, churchID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, churchID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, churchID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, churchID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, churchID string, accountIDs []string, userID string) (map[string]domain.Account, error) {
	args := m.Called(ctx, churchID, accountIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, churchID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, churchID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountTree(ctx context.Context, churchID string, userID string) ([]*domain.AccountNode, error) {
	args := m.Called(ctx, churchID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AccountNode), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, churchID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, churchID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, churchID string, accountID string, userID string) error {
	args := m.Called(ctx, churchID, accountID, userID)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, churchID string, accountID string, userID string) error {
	args := m.Called(ctx, churchID, accountID, userID)
	return args.Error(0)
}

// --- Mock FiscalPeriodService ---

type MockFiscalPeriodService struct {
	mock.Mock
}

var _ portssvc.FiscalPeriodService = (*MockFiscalPeriodService)(nil)

func (m *MockFiscalPeriodService) GetCurrentPeriod(ctx context.Context, churchID string, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, churchID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodService) ClosePeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, churchID, year, month, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodService) LockPeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, churchID, year, month, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodService) UnlockPeriod(ctx context.Context, churchID string, year int, month int, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, churchID, year, month, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodService) IsDateLocked(ctx context.Context, churchID string, date time.Time) (bool, error) {
	args := m.Called(ctx, churchID, date)
	return args.Bool(0), args.Error(1)
}

// --- Mock JournalService ---

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalService = (*MockJournalService)(nil)

func (m *MockJournalService) CreateJournal(ctx context.Context, churchID string, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, churchID string, params dto.ListJournalsParams, userID string) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, churchID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}

func (m *MockJournalService) UpdateJournal(ctx context.Context, churchID string, journalID string, req dto.UpdateJournalRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, journalID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ApproveJournal(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteJournal(ctx context.Context, churchID string, journalID string, userID string) error {
	args := m.Called(ctx, churchID, journalID, userID)
	return args.Error(0)
}

// --- Mock AuditService ---

type MockAuditService struct {
	mock.Mock
}

var _ portssvc.AuditService = (*MockAuditService)(nil)

func (m *MockAuditService) Record(ctx context.Context, record domain.AuditRecord) {
	m.Called(ctx, record)
}
