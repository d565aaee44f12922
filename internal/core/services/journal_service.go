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
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountService
	periodSvc   portssvc.FiscalPeriodService
	audit       portssvc.AuditService
}

// NewJournalService creates the journal entry engine. Line accounts are
// resolved through the account service so its church scoping applies here too.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountSvc portssvc.AccountService,
	periodSvc portssvc.FiscalPeriodService,
	authorizer portssvc.ChurchService,
	audit portssvc.AuditService,
) portssvc.JournalService {
	return &journalService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
		audit:       audit,
	}
}

var _ portssvc.JournalService = (*journalService)(nil)

// buildLines validates the requested lines against the chart of accounts and
// the single-side rule, returning domain lines with fresh IDs.
func (s *journalService) buildLines(ctx context.Context, churchID string, journalID string, reqLines []dto.CreateJournalLineRequest, userID string) ([]domain.JournalLine, error) {
	if len(reqLines) < 2 {
		return nil, apperrors.NewAppError(400, "a journal requires at least two lines", apperrors.ErrValidation)
	}

	accountIDs := make([]string, len(reqLines))
	for i, l := range reqLines {
		accountIDs[i] = l.AccountID
	}
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, churchID, accountIDs, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.JournalLine, len(reqLines))
	for i, l := range reqLines {
		// Accounts of other churches are already filtered out of the map.
		account, ok := accounts[l.AccountID]
		if !ok {
			return nil, apperrors.NewAppError(404, "account "+l.AccountID+" not found in this church", apperrors.ErrNotFound)
		}
		if !account.IsActive {
			return nil, apperrors.NewAppError(400, "account "+account.Name+" is inactive", apperrors.ErrValidation)
		}
		line := domain.JournalLine{
			LineID:      uuid.New().String(),
			JournalID:   journalID,
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
		if err := line.Validate(); err != nil {
			return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		}
		lines[i] = line
	}
	return lines, nil
}

// checkPeriodUnlocked rejects mutations dated inside a LOCKED fiscal period.
func (s *journalService) checkPeriodUnlocked(ctx context.Context, churchID string, date time.Time) error {
	locked, err := s.periodSvc.IsDateLocked(ctx, churchID, date)
	if err != nil {
		return err
	}
	if locked {
		return apperrors.NewAppError(423,
			fmt.Sprintf("fiscal period %d-%02d is locked", date.Year(), int(date.Month())),
			apperrors.ErrPeriodLocked)
	}
	return nil
}

func (s *journalService) CreateJournal(ctx context.Context, churchID string, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleTreasurer); err != nil {
		return nil, err
	}

	journalType := domain.JournalTypeGeneral
	if req.JournalType != "" {
		journalType = domain.JournalType(req.JournalType)
	}

	journalID := uuid.New().String()
	lines, err := s.buildLines(ctx, churchID, journalID, req.Lines, userID)
	if err != nil {
		return nil, err
	}

	totalDebit, totalCredit := domain.SumLines(lines)
	if !totalDebit.Equal(totalCredit) {
		return nil, apperrors.NewAppError(400,
			fmt.Sprintf("journal is not balanced: debits %s, credits %s", totalDebit, totalCredit),
			apperrors.ErrValidation)
	}

	if err := s.checkPeriodUnlocked(ctx, churchID, req.Date); err != nil {
		return nil, err
	}

	now := time.Now()
	journal := domain.JournalEntry{
		JournalID:   journalID,
		ChurchID:    churchID,
		JournalDate: req.Date,
		Description: req.Description,
		JournalType: journalType,
		Status:      domain.JournalDraft,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	journalNumber, err := s.journalRepo.SaveJournal(ctx, journal, lines)
	if err != nil {
		s.LogError(ctx, err, "failed to save journal", slog.String("church_id", churchID))
		return nil, err
	}
	journal.JournalNumber = journalNumber
	journal.Lines = lines

	after, _ := json.Marshal(journal)
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "journal.create",
		EntityType: "journal",
		EntityID:   journalID,
		After:      after,
	})

	s.LogInfo(ctx, "journal created",
		slog.String("church_id", churchID),
		slog.String("journal_id", journalID),
		slog.String("journal_number", journalNumber))
	return &journal, nil
}

// getOwnedJournal loads the journal and verifies church ownership.
func (s *journalService) getOwnedJournal(ctx context.Context, churchID string, journalID string) (*domain.JournalEntry, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}
	return journal, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}
	journal, err := s.getOwnedJournal(ctx, churchID, journalID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Lines = lines
	return journal, nil
}

func (s *journalService) ListJournals(ctx context.Context, churchID string, params dto.ListJournalsParams, userID string) (*dto.ListJournalsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}

	query := portsrepo.ListJournalsQuery{
		DateFrom:  params.DateFrom,
		DateTo:    params.DateTo,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if params.Status != nil {
		status := domain.JournalStatus(*params.Status)
		query.Status = &status
	}

	journals, nextToken, err := s.journalRepo.ListJournalsByChurch(ctx, churchID, query)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListJournalsResponse{
		Journals:  make([]dto.JournalResponse, len(journals)),
		NextToken: nextToken,
	}
	for i := range journals {
		resp.Journals[i] = dto.ToJournalResponse(&journals[i])
	}
	return resp, nil
}

func (s *journalService) UpdateJournal(ctx context.Context, churchID string, journalID string, req dto.UpdateJournalRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleTreasurer); err != nil {
		return nil, err
	}
	journal, err := s.getOwnedJournal(ctx, churchID, journalID)
	if err != nil {
		return nil, err
	}
	if journal.Status != domain.JournalDraft {
		return nil, apperrors.NewAppError(409, "approved journals cannot be updated", apperrors.ErrProtected)
	}

	// The original date must be unlocked too, otherwise an entry could be
	// moved out of a locked month.
	if err := s.checkPeriodUnlocked(ctx, churchID, journal.JournalDate); err != nil {
		return nil, err
	}

	before, _ := json.Marshal(journal)
	if req.Date != nil {
		if err := s.checkPeriodUnlocked(ctx, churchID, *req.Date); err != nil {
			return nil, err
		}
		journal.JournalDate = *req.Date
	}
	if req.Description != nil {
		journal.Description = *req.Description
	}

	var lines []domain.JournalLine
	replaceLines := false
	if req.Lines != nil {
		lines, err = s.buildLines(ctx, churchID, journalID, *req.Lines, userID)
		if err != nil {
			return nil, err
		}
		totalDebit, totalCredit := domain.SumLines(lines)
		if !totalDebit.Equal(totalCredit) {
			return nil, apperrors.NewAppError(400,
				fmt.Sprintf("journal is not balanced: debits %s, credits %s", totalDebit, totalCredit),
				apperrors.ErrValidation)
		}
		journal.TotalDebit = totalDebit
		journal.TotalCredit = totalCredit
		replaceLines = true
	}

	journal.LastUpdatedAt = time.Now()
	journal.LastUpdatedBy = userID
	if err := s.journalRepo.UpdateJournal(ctx, *journal, lines, replaceLines); err != nil {
		s.LogError(ctx, err, "failed to update journal", slog.String("journal_id", journalID))
		return nil, err
	}
	if replaceLines {
		journal.Lines = lines
	} else {
		journal.Lines, err = s.journalRepo.FindLinesByJournalID(ctx, journalID)
		if err != nil {
			return nil, err
		}
	}

	after, _ := json.Marshal(journal)
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "journal.update",
		EntityType: "journal",
		EntityID:   journalID,
		Before:     before,
		After:      after,
	})
	return journal, nil
}

// ApproveJournal flips a draft to APPROVED. Approval is terminal and is itself
// gated by the period lock; approving into locked books is tampering.
func (s *journalService) ApproveJournal(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	journal, err := s.getOwnedJournal(ctx, churchID, journalID)
	if err != nil {
		return nil, err
	}
	if journal.Status != domain.JournalDraft {
		return nil, apperrors.NewAppError(409, "journal is already approved", apperrors.ErrConflict)
	}
	if !journal.IsBalanced() {
		return nil, apperrors.NewAppError(400, "journal is not balanced", apperrors.ErrValidation)
	}
	if err := s.checkPeriodUnlocked(ctx, churchID, journal.JournalDate); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.journalRepo.MarkJournalApproved(ctx, journalID, userID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewAppError(409, "journal is already approved", apperrors.ErrConflict)
		}
		s.LogError(ctx, err, "failed to approve journal", slog.String("journal_id", journalID))
		return nil, err
	}

	before, _ := json.Marshal(map[string]string{"status": string(domain.JournalDraft)})
	after, _ := json.Marshal(map[string]string{"status": string(domain.JournalApproved)})
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "journal.approve",
		EntityType: "journal",
		EntityID:   journalID,
		Before:     before,
		After:      after,
	})

	journal.Status = domain.JournalApproved
	journal.ApprovedBy = &userID
	journal.ApprovedAt = &now
	journal.LastUpdatedAt = now
	journal.LastUpdatedBy = userID
	s.LogInfo(ctx, "journal approved",
		slog.String("church_id", churchID),
		slog.String("journal_id", journalID))
	return journal, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, churchID string, journalID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleAdmin); err != nil {
		return err
	}
	journal, err := s.getOwnedJournal(ctx, churchID, journalID)
	if err != nil {
		return err
	}
	if journal.Status != domain.JournalDraft {
		return apperrors.NewAppError(409, "approved journals cannot be deleted", apperrors.ErrProtected)
	}
	if err := s.checkPeriodUnlocked(ctx, churchID, journal.JournalDate); err != nil {
		return err
	}

	if err := s.journalRepo.DeleteJournal(ctx, journalID); err != nil {
		s.LogError(ctx, err, "failed to delete journal", slog.String("journal_id", journalID))
		return err
	}

	before, _ := json.Marshal(journal)
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "journal.delete",
		EntityType: "journal",
		EntityID:   journalID,
		Before:     before,
	})
	return nil
}
