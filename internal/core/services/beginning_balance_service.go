package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portsrepo "github.com/gerejaku/church_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type beginningBalanceService struct {
	BaseService
	balanceRepo portsrepo.BeginningBalanceRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
	journalSvc  portssvc.JournalService
	audit       portssvc.AuditService
}

// NewBeginningBalanceService creates the opening-balance poster. Posting goes
// through the journal service so the generated journal passes every journal
// invariant, including the period lock. The journal repository is only used to
// remove the generated journal when the status flip fails; going through the
// service there would re-run the approver-level authorization.
func NewBeginningBalanceService(
	balanceRepo portsrepo.BeginningBalanceRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	journalSvc portssvc.JournalService,
	authorizer portssvc.ChurchService,
	audit portssvc.AuditService,
) portssvc.BeginningBalanceService {
	return &beginningBalanceService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		balanceRepo: balanceRepo,
		journalRepo: journalRepo,
		journalSvc:  journalSvc,
		audit:       audit,
	}
}

var _ portssvc.BeginningBalanceService = (*beginningBalanceService)(nil)

// sumBalanceEntries independently totals both sides; the balance check here is
// deliberately separate from the journal engine's own check.
func sumBalanceEntries(entries []domain.BeginningBalanceEntry) (debit, credit decimal.Decimal, err error) {
	for _, e := range entries {
		if !e.Amount.IsPositive() {
			return decimal.Zero, decimal.Zero, fmt.Errorf("entry for account %s must have a positive amount", e.AccountID)
		}
		if !e.BalanceType.IsValid() {
			return decimal.Zero, decimal.Zero, fmt.Errorf("entry for account %s has unknown balance type %s", e.AccountID, e.BalanceType)
		}
	}
	debit, credit = domain.SumEntries(entries)
	return debit, credit, nil
}

func (s *beginningBalanceService) CreateBeginningBalance(ctx context.Context, churchID string, req dto.CreateBeginningBalanceRequest, userID string) (*domain.BeginningBalance, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleTreasurer); err != nil {
		return nil, err
	}

	balanceID := uuid.New().String()
	entries := make([]domain.BeginningBalanceEntry, len(req.Entries))
	seen := make(map[string]bool, len(req.Entries))
	for i, e := range req.Entries {
		if seen[e.AccountID] {
			return nil, apperrors.NewAppError(400, "account "+e.AccountID+" appears more than once", apperrors.ErrValidation)
		}
		seen[e.AccountID] = true
		entries[i] = domain.BeginningBalanceEntry{
			EntryID:     uuid.New().String(),
			BalanceID:   balanceID,
			AccountID:   e.AccountID,
			Amount:      e.Amount,
			BalanceType: domain.BalanceType(e.BalanceType),
		}
	}
	if _, _, err := sumBalanceEntries(entries); err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}

	now := time.Now()
	balance := domain.BeginningBalance{
		BalanceID:     balanceID,
		ChurchID:      churchID,
		EffectiveDate: req.EffectiveDate,
		Entries:       entries,
		Status:        domain.BeginningBalanceDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.balanceRepo.SaveBeginningBalance(ctx, balance); err != nil {
		s.LogError(ctx, err, "failed to save beginning balance", slog.String("church_id", churchID))
		return nil, err
	}

	after, _ := json.Marshal(balance)
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "beginning_balance.create",
		EntityType: "beginning_balance",
		EntityID:   balanceID,
		After:      after,
	})
	return &balance, nil
}

func (s *beginningBalanceService) GetBeginningBalanceByID(ctx context.Context, churchID string, balanceID string, userID string) (*domain.BeginningBalance, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}
	balance, err := s.balanceRepo.FindBeginningBalanceByID(ctx, balanceID)
	if err != nil {
		return nil, err
	}
	if balance.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}
	return balance, nil
}

// PostBeginningBalance converts the snapshot into exactly one generated
// journal. Posting is idempotent: a snapshot that is already POSTED is
// rejected with ErrConflict before any journal is created, and the guarded
// status flip catches the concurrent case.
func (s *beginningBalanceService) PostBeginningBalance(ctx context.Context, churchID string, balanceID string, userID string) (*domain.BeginningBalance, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleTreasurer); err != nil {
		return nil, err
	}
	balance, err := s.GetBeginningBalanceByID(ctx, churchID, balanceID, userID)
	if err != nil {
		return nil, err
	}
	if balance.Status != domain.BeginningBalanceDraft {
		return nil, apperrors.NewAppError(409, "beginning balance has already been posted", apperrors.ErrConflict)
	}

	debit, credit, err := sumBalanceEntries(balance.Entries)
	if err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}
	if !debit.Equal(credit) {
		return nil, apperrors.NewAppError(400,
			fmt.Sprintf("beginning balance entries are not balanced: debits %s, credits %s", debit, credit),
			apperrors.ErrValidation)
	}

	lines := make([]dto.CreateJournalLineRequest, len(balance.Entries))
	for i, e := range balance.Entries {
		line := dto.CreateJournalLineRequest{
			AccountID:   e.AccountID,
			Description: "Beginning balance",
		}
		if e.BalanceType == domain.BalanceDebit {
			line.Debit = e.Amount
		} else {
			line.Credit = e.Amount
		}
		lines[i] = line
	}

	journal, err := s.journalSvc.CreateJournal(ctx, churchID, dto.CreateJournalRequest{
		Date:        balance.EffectiveDate,
		Description: fmt.Sprintf("Beginning balance as of %s", balance.EffectiveDate.Format("2006-01-02")),
		JournalType: string(domain.JournalTypeBeginningBalance),
		Lines:       lines,
	}, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.balanceRepo.MarkPosted(ctx, balanceID, journal.JournalNumber, userID, now); err != nil {
		// The balance is still DRAFT, so a retry would generate a second
		// journal. Remove ours no matter why the status flip failed; on the
		// conflict path a concurrent post won the race and its journal stays.
		if delErr := s.journalRepo.DeleteJournal(ctx, journal.JournalID); delErr != nil {
			s.LogError(ctx, delErr, "failed to remove orphaned beginning balance journal",
				slog.String("journal_id", journal.JournalID))
		}
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewAppError(409, "beginning balance has already been posted", apperrors.ErrConflict)
		}
		s.LogError(ctx, err, "failed to mark beginning balance posted", slog.String("balance_id", balanceID))
		return nil, err
	}

	before, _ := json.Marshal(map[string]string{"status": string(domain.BeginningBalanceDraft)})
	after, _ := json.Marshal(map[string]string{
		"status":                 string(domain.BeginningBalancePosted),
		"generatedJournalNumber": journal.JournalNumber,
	})
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "beginning_balance.post",
		EntityType: "beginning_balance",
		EntityID:   balanceID,
		Before:     before,
		After:      after,
	})

	balance.Status = domain.BeginningBalancePosted
	balance.GeneratedJournalNumber = &journal.JournalNumber
	balance.LastUpdatedAt = now
	balance.LastUpdatedBy = userID
	s.LogInfo(ctx, "beginning balance posted",
		slog.String("church_id", churchID),
		slog.String("balance_id", balanceID),
		slog.String("journal_number", journal.JournalNumber))
	return balance, nil
}
