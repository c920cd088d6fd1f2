package services

import (
	"context"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
	"github.com/finbook-app/finbook_backend/internal/dto"
)

// AccountSvcFacade defines the chart-of-accounts operations exposed to callers.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, tenantID string, activeOnly bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	// DeactivateAccount flips isActive off; the account and its history remain.
	DeactivateAccount(ctx context.Context, tenantID, accountID, userID string) error
	// DeleteAccount hard-deletes an account, failing with
	// apperrors.ErrReferencedByLedger when any entry line or legacy
	// transaction references it.
	DeleteAccount(ctx context.Context, tenantID, accountID string) error
}
