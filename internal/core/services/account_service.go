package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/corralonapp/cuentas_backend/internal/apperrors"
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	portsrepo "github.com/corralonapp/cuentas_backend/internal/core/ports/repositories"
	portssvc "github.com/corralonapp/cuentas_backend/internal/core/ports/services"
)

const (
	defaultAccountListLimit = 50
	maxAccountListLimit     = 200
)

// accountService provides read access to the account catalogue.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetAccountByID retrieves a single account by ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Account not found", slog.Int64("account_id", accountID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to retrieve account", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve account %d: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts retrieves active accounts, optionally filtered by kind.
func (s *accountService) ListAccounts(ctx context.Context, kind *domain.AccountKind, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = defaultAccountListLimit
	}
	if limit > maxAccountListLimit {
		limit = maxAccountListLimit
	}
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, kind, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
