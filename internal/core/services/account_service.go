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

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	audit       portssvc.AuditService
}

// NewAccountService creates the chart-of-accounts registry service.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	authorizer portssvc.ChurchService,
	audit portssvc.AuditService,
) portssvc.AccountService {
	return &accountService{
		BaseService: BaseService{ChurchAuthorizer: authorizer},
		accountRepo: accountRepo,
		audit:       audit,
	}
}

var _ portssvc.AccountService = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, churchID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleTreasurer); err != nil {
		return nil, err
	}

	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		return nil, apperrors.NewAppError(400, "invalid account type "+req.AccountType, apperrors.ErrValidation)
	}

	// Pre-check the name so the common duplicate gets a clean rejection; the
	// unique index on save still catches the race.
	if _, err := s.accountRepo.FindAccountByName(ctx, churchID, req.Name); err == nil {
		return nil, apperrors.NewAppError(409, "an account named "+req.Name+" already exists in this church", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewAppError(400, "parent account "+*req.ParentAccountID+" not found", apperrors.ErrValidation)
			}
			return nil, err
		}
		if parent.ChurchID != churchID {
			return nil, apperrors.NewAppError(400, "parent account belongs to a different church", apperrors.ErrValidation)
		}
		parentID = parent.AccountID
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.New().String(),
		ChurchID:        churchID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     accountType,
		ParentAccountID: parentID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "an account named "+req.Name+" already exists in this church", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "failed to create account",
			slog.String("church_id", churchID),
			slog.String("name", req.Name))
		return nil, err
	}

	after, _ := json.Marshal(account)
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "account.create",
		EntityType: "account",
		EntityID:   account.AccountID,
		After:      after,
	})

	s.LogInfo(ctx, "account created",
		slog.String("church_id", churchID),
		slog.String("account_id", account.AccountID))
	return &account, nil
}

// getOwnedAccount loads the account and verifies church ownership. Accounts of
// other churches surface as not found so tenants cannot probe each other.
func (s *accountService) getOwnedAccount(ctx context.Context, churchID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, churchID string, accountID string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.getOwnedAccount(ctx, churchID, accountID)
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, churchID string, accountIDs []string, userID string) (map[string]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	for id, account := range accounts {
		if account.ChurchID != churchID {
			delete(accounts, id)
		}
	}
	return accounts, nil
}

func (s *accountService) ListAccounts(ctx context.Context, churchID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}

	query := portsrepo.ListAccountsQuery{
		NameSearch: params.Search,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.AccountType != nil {
		accountType := domain.AccountType(*params.AccountType)
		if !accountType.IsValid() {
			return nil, apperrors.NewAppError(400, "invalid account type "+*params.AccountType, apperrors.ErrValidation)
		}
		query.AccountType = &accountType
	}
	return s.accountRepo.ListAccounts(ctx, churchID, query)
}

func (s *accountService) GetAccountTree(ctx context.Context, churchID string, userID string) ([]*domain.AccountNode, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleViewer); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, churchID, portsrepo.ListAccountsQuery{})
	if err != nil {
		return nil, err
	}
	return domain.BuildAccountTree(accounts), nil
}

func (s *accountService) UpdateAccount(ctx context.Context, churchID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleTreasurer); err != nil {
		return nil, err
	}
	account, err := s.getOwnedAccount(ctx, churchID, accountID)
	if err != nil {
		return nil, err
	}

	before, _ := json.Marshal(account)
	if req.Code != nil {
		account.Code = *req.Code
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "an account named "+account.Name+" already exists in this church", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	after, _ := json.Marshal(account)
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "account.update",
		EntityType: "account",
		EntityID:   accountID,
		Before:     before,
		After:      after,
	})
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, churchID string, accountID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleTreasurer); err != nil {
		return err
	}
	account, err := s.getOwnedAccount(ctx, churchID, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return nil
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to deactivate account", slog.String("account_id", accountID))
		return err
	}

	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "account.deactivate",
		EntityType: "account",
		EntityID:   accountID,
	})
	return nil
}

// DeleteAccount hard-deletes an account, refusing while any journal line still
// references it. Deactivation is the path for accounts with history.
func (s *accountService) DeleteAccount(ctx context.Context, churchID string, accountID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, churchID, domain.RoleAdmin); err != nil {
		return err
	}
	account, err := s.getOwnedAccount(ctx, churchID, accountID)
	if err != nil {
		return err
	}

	refs, err := s.accountRepo.CountJournalLineReferences(ctx, accountID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperrors.NewAppError(409,
			fmt.Sprintf("account %s is referenced by %d journal lines", accountID, refs),
			apperrors.ErrProtected)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "failed to delete account", slog.String("account_id", accountID))
		return err
	}

	before, _ := json.Marshal(account)
	s.audit.Record(ctx, domain.AuditRecord{
		ChurchID:   churchID,
		ActorID:    userID,
		Action:     "account.delete",
		EntityType: "account",
		EntityID:   accountID,
		Before:     before,
	})
	return nil
}
