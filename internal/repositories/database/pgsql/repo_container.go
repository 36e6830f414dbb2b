package pgsql

import (
	portsrepo "github.com/corralonapp/cuentas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgsql-backed repositories over one pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Account:     NewAccountRepository(db),
		LedgerEvent: NewLedgerEventRepository(db),
	}
}
