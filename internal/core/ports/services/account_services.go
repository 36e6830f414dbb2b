package services

import (
	"context"

	"github.com/corralonapp/cuentas_backend/internal/core/domain"
)

// AccountSvcFacade defines the account operations exposed to handlers.
type AccountSvcFacade interface {
	// GetAccountByID retrieves a single account.
	// Returns apperrors.ErrNotFound when the id does not resolve.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves active accounts, optionally filtered by kind.
	ListAccounts(ctx context.Context, kind *domain.AccountKind, limit int, offset int) ([]domain.Account, error)
}
