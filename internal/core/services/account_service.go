package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/core/domain"
	portsrepo "github.com/finbook-app/finbook_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook-app/finbook_backend/internal/core/ports/services"
	"github.com/finbook-app/finbook_backend/internal/dto"
)

// accountService implements the chart-of-accounts operations.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates an account after checking code uniqueness within the
// tenant. The normal balance is derived from the type, never stored input.
func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, tenantID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code uniqueness", slog.String("tenant_id", tenantID), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists in tenant", apperrors.ErrDuplicate, req.Code)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		TenantID:    tenantID,
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// The unique index backstops the pre-check against a concurrent create.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists in tenant", apperrors.ErrDuplicate, req.Code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("tenant_id", tenantID), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("tenant_id", tenantID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a single account within the tenant.
func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves a batch of accounts keyed by id.
func (s *accountService) GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, tenantID, accountIDs)
}

// ListAccounts lists the tenant's accounts, optionally only active ones.
func (s *accountService) ListAccounts(ctx context.Context, tenantID string, activeOnly bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies a partial update (rename, description, reclassify).
func (s *accountService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.AccountType != nil {
		if !req.AccountType.IsValid() {
			return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *req.AccountType)
		}
		account.AccountType = *req.AccountType
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID), slog.String("tenant_id", tenantID))
	return account, nil
}

// DeactivateAccount flips the account inactive. Inactive accounts keep their
// history and balances but reject new entry lines.
func (s *accountService) DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, tenantID, accountID, userID, time.Now().UTC()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID), slog.String("tenant_id", tenantID))
	return nil
}

// DeleteAccount hard-deletes an account that nothing in the ledger references.
// The count check gives a clean error; the repository re-checks inside its
// transaction so a concurrent post cannot slip a reference in between.
func (s *accountService) DeleteAccount(ctx context.Context, tenantID, accountID string) error {
	refs, err := s.accountRepo.CountLedgerReferences(ctx, tenantID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count ledger references", slog.String("account_id", accountID))
		return fmt.Errorf("failed to count ledger references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: account %s has %d referencing ledger rows", apperrors.ErrReferencedByLedger, accountID, refs)
	}

	if err := s.accountRepo.DeleteAccount(ctx, tenantID, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrReferencedByLedger) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("tenant_id", tenantID))
	return nil
}
