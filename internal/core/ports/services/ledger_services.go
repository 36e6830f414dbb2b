package services

import (
	"context"

	"github.com/corralonapp/cuentas_backend/internal/core/domain"
)

// LedgerSvcFacade builds account statements: the chronologically ordered
// transaction list with a running balance for one account over a bounded
// recent window, seeded with an aggregate opening balance for everything
// before the window.
type LedgerSvcFacade interface {
	// BuildLedger assembles the ledger for an account. windowDays bounds the
	// itemized window; values <= 0 fall back to the configured default.
	// There is no partial result: if the account is unknown it returns
	// apperrors.ErrNotFound, and if any store read fails it returns
	// apperrors.ErrSourceUnavailable.
	BuildLedger(ctx context.Context, accountID int64, windowDays int) (*domain.Ledger, error)
}
