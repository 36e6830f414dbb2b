package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/corralonapp/cuentas_backend/internal/apperrors"
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	portsrepo "github.com/corralonapp/cuentas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// accountRepository implements the AccountRepository interface
type accountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepository {
	return &accountRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, kind, name, active, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var account domain.Account
	var kind string
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&account.AccountID,
		&kind,
		&account.Name,
		&account.IsActive,
		&account.CreatedAt,
		&account.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %d: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: finding account %d: %v", apperrors.ErrSourceUnavailable, accountID, err)
	}

	account.Kind = domain.AccountKind(kind)
	return &account, nil
}

// ListAccounts retrieves active accounts, optionally filtered by kind.
func (r *accountRepository) ListAccounts(ctx context.Context, kind *domain.AccountKind, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT account_id, kind, name, active, created_at, updated_at
		FROM accounts
		WHERE active AND ($1::text IS NULL OR kind = $1)
		ORDER BY name ASC, account_id ASC
		LIMIT $2 OFFSET $3
	`

	var kindArg *string
	if kind != nil {
		k := string(*kind)
		kindArg = &k
	}

	rows, err := r.Pool.Query(ctx, query, kindArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: listing accounts: %v", apperrors.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		var accountKind string
		if err := rows.Scan(
			&account.AccountID,
			&accountKind,
			&account.Name,
			&account.IsActive,
			&account.CreatedAt,
			&account.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning account row: %v", apperrors.ErrSourceUnavailable, err)
		}
		account.Kind = domain.AccountKind(accountKind)
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating account rows: %v", apperrors.ErrSourceUnavailable, err)
	}

	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}
