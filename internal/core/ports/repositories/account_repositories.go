package repositories

import (
	"context"

	"github.com/corralonapp/cuentas_backend/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// FindAccountByID retrieves an account by its ID.
	// Returns apperrors.ErrNotFound if the id does not resolve to an account.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves active accounts, optionally filtered by kind,
	// with limit/offset pagination.
	ListAccounts(ctx context.Context, kind *domain.AccountKind, limit int, offset int) ([]domain.Account, error)
}
