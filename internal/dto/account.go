package dto

import (
	"time"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating an account.
type CreateAccountRequest struct {
	Code        string             `json:"code" binding:"required,max=16"`
	Name        string             `json:"name" binding:"required,max=100"`
	AccountType domain.AccountType `json:"accountType" binding:"required,accounttype"`
	Description string             `json:"description" binding:"max=500"`
}

// UpdateAccountRequest defines the payload for renaming or reclassifying an
// account. Nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string             `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string             `json:"description,omitempty" binding:"omitempty,max=500"`
	AccountType *domain.AccountType `json:"accountType,omitempty" binding:"omitempty,accounttype"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string               `json:"accountID"`
	Code          string               `json:"code"`
	Name          string               `json:"name"`
	AccountType   domain.AccountType   `json:"accountType"`
	NormalBalance domain.NormalBalance `json:"normalBalance"`
	Description   string               `json:"description,omitempty"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Code:          a.Code,
		Name:          a.Name,
		AccountType:   a.AccountType,
		NormalBalance: a.NormalBalance(),
		Description:   a.Description,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// SeedResponse reports how many template accounts were actually created.
type SeedResponse struct {
	Created int `json:"created"`
}
