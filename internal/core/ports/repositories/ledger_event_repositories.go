package repositories

import (
	"context"
	"time"

	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEventRepository is the event source the ledger engine reads from.
// The engine only needs two shapes of query per event type: the itemized
// window ("all events for account Y with date >= D, ascending") and the
// opening-balance aggregate ("sum for account Y with date < D"). The
// aggregates run store-side because history is unbounded while the window
// is not.
//
// Implementations wrap any query failure with apperrors.ErrSourceUnavailable.
type LedgerEventRepository interface {
	// ListCharges returns charge events dated at or after since, ascending by date.
	ListCharges(ctx context.Context, accountID int64, since time.Time) ([]domain.ChargeEvent, error)

	// ListPayments returns payment events dated at or after since, ascending by date.
	ListPayments(ctx context.Context, accountID int64, since time.Time) ([]domain.PaymentEvent, error)

	// AggregateChargeSum returns the sum of charge amounts dated strictly
	// before the given date. Charges with a null amount contribute zero.
	AggregateChargeSum(ctx context.Context, accountID int64, before time.Time) (decimal.Decimal, error)

	// AggregatePaymentSum returns the sum of payment amounts dated strictly
	// before the given date.
	AggregatePaymentSum(ctx context.Context, accountID int64, before time.Time) (decimal.Decimal, error)
}
