package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/corralonapp/cuentas_backend/internal/apperrors"
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	portsrepo "github.com/corralonapp/cuentas_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ledgerEventRepository implements the LedgerEventRepository interface. It is
// the event source adapter: windowed listings ascending by date plus
// store-side aggregates for the unbounded history before the window.
type ledgerEventRepository struct {
	BaseRepository
}

// NewLedgerEventRepository creates a new ledger event repository
func NewLedgerEventRepository(db *pgxpool.Pool) portsrepo.LedgerEventRepository {
	return &ledgerEventRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListCharges returns charge events dated at or after since, ascending by date.
func (r *ledgerEventRepository) ListCharges(ctx context.Context, accountID int64, since time.Time) ([]domain.ChargeEvent, error) {
	query := `
		SELECT
			charge_id,
			account_id,
			charge_date,
			amount,
			kind,
			COALESCE(invoice, ''),
			COALESCE(customer_name, ''),
			COALESCE(supplier_name, ''),
			COALESCE(product_name, ''),
			COALESCE(extras, ''),
			COALESCE(notes, '')
		FROM account_charges
		WHERE account_id = $1 AND charge_date >= $2
		ORDER BY charge_date ASC, charge_id ASC
	`

	rows, err := r.Pool.Query(ctx, query, accountID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: listing charges for account %d: %v", apperrors.ErrSourceUnavailable, accountID, err)
	}
	defer rows.Close()

	var charges []domain.ChargeEvent
	for rows.Next() {
		var charge domain.ChargeEvent
		var amount decimal.NullDecimal
		var kind string

		if err := rows.Scan(
			&charge.EventID,
			&charge.AccountID,
			&charge.Date,
			&amount,
			&kind,
			&charge.Invoice,
			&charge.CustomerName,
			&charge.SupplierName,
			&charge.ProductName,
			&charge.Extras,
			&charge.Notes,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning charge row: %v", apperrors.ErrSourceUnavailable, err)
		}

		charge.Kind = domain.ChargeKind(kind)
		if amount.Valid {
			charge.Amount = &amount.Decimal
		}
		charges = append(charges, charge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating charge rows: %v", apperrors.ErrSourceUnavailable, err)
	}
	return charges, nil
}

// ListPayments returns payment events dated at or after since, ascending by date.
func (r *ledgerEventRepository) ListPayments(ctx context.Context, accountID int64, since time.Time) ([]domain.PaymentEvent, error) {
	query := `
		SELECT
			payment_id,
			account_id,
			payment_date,
			amount,
			COALESCE(method, ''),
			COALESCE(notes, '')
		FROM account_payments
		WHERE account_id = $1 AND payment_date >= $2
		ORDER BY payment_date ASC, payment_id ASC
	`

	rows, err := r.Pool.Query(ctx, query, accountID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: listing payments for account %d: %v", apperrors.ErrSourceUnavailable, accountID, err)
	}
	defer rows.Close()

	var payments []domain.PaymentEvent
	for rows.Next() {
		var payment domain.PaymentEvent
		if err := rows.Scan(
			&payment.EventID,
			&payment.AccountID,
			&payment.Date,
			&payment.Amount,
			&payment.Method,
			&payment.Notes,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning payment row: %v", apperrors.ErrSourceUnavailable, err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", apperrors.ErrSourceUnavailable, err)
	}
	return payments, nil
}

// AggregateChargeSum returns the sum of charge amounts dated strictly before
// the given date. The aggregate runs store-side; charges with a null amount
// (price pending) contribute zero.
func (r *ledgerEventRepository) AggregateChargeSum(ctx context.Context, accountID int64, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(COALESCE(amount, 0)), 0)
		FROM account_charges
		WHERE account_id = $1 AND charge_date < $2
	`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, before).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: aggregating charges for account %d: %v", apperrors.ErrSourceUnavailable, accountID, err)
	}
	return sum, nil
}

// AggregatePaymentSum returns the sum of payment amounts dated strictly
// before the given date.
func (r *ledgerEventRepository) AggregatePaymentSum(ctx context.Context, accountID int64, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM account_payments
		WHERE account_id = $1 AND payment_date < $2
	`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, before).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: aggregating payments for account %d: %v", apperrors.ErrSourceUnavailable, accountID, err)
	}
	return sum, nil
}
