package dto

import (
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	AccountID int64  `json:"accountID"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
}

// ListAccountsParams holds the query parameters for listing accounts.
type ListAccountsParams struct {
	Kind   string `form:"kind" binding:"omitempty,accountkind"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

// ToAccountResponse converts a domain account to its DTO representation.
func ToAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.AccountID,
		Kind:      string(account.Kind),
		Name:      account.Name,
		IsActive:  account.IsActive,
	}
}

// ToAccountListResponse converts a slice of domain accounts.
func ToAccountListResponse(accounts []domain.Account) []AccountResponse {
	response := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = ToAccountResponse(account)
	}
	return response
}
