package accounting_test

import (
	"testing"
	"time"

	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	"github.com/corralonapp/cuentas_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func charge(id int64, date time.Time, amount *decimal.Decimal) domain.ChargeEvent {
	return domain.ChargeEvent{
		EventID:   id,
		AccountID: 1,
		Date:      date,
		Amount:    amount,
		Kind:      domain.Delivery,
	}
}

func payment(id int64, date time.Time, amount decimal.Decimal) domain.PaymentEvent {
	return domain.PaymentEvent{
		EventID:   id,
		AccountID: 1,
		Date:      date,
		Amount:    amount,
	}
}

func TestMergeEvents_MapsSidesExclusively(t *testing.T) {
	charges := []domain.ChargeEvent{
		charge(1, day(2), decimalPtr(decimal.NewFromInt(500))),
	}
	payments := []domain.PaymentEvent{
		payment(2, day(3), decimal.NewFromInt(300)),
	}

	merged := accounting.MergeEvents(charges, payments)
	require.Len(t, merged, 2)

	assert.Equal(t, domain.Charge, merged[0].Kind)
	assert.True(t, merged[0].Debit.Equal(decimal.NewFromInt(500)))
	assert.True(t, merged[0].Credit.IsZero())

	assert.Equal(t, domain.Payment, merged[1].Kind)
	assert.True(t, merged[1].Debit.IsZero())
	assert.True(t, merged[1].Credit.Equal(decimal.NewFromInt(300)))

	// Exactly one side populated per row, never both
	for _, txn := range merged {
		assert.False(t, !txn.Debit.IsZero() && !txn.Credit.IsZero())
		assert.False(t, txn.Debit.IsNegative())
		assert.False(t, txn.Credit.IsNegative())
	}
}

func TestMergeEvents_NullAmountCountsAsZero(t *testing.T) {
	merged := accounting.MergeEvents([]domain.ChargeEvent{charge(1, day(1), nil)}, nil)
	require.Len(t, merged, 1)

	assert.True(t, merged[0].Debit.IsZero())
	assert.True(t, merged[0].Credit.IsZero())
	assert.True(t, merged[0].PricePending)
}

func TestMergeEvents_SortsAscendingByDate(t *testing.T) {
	charges := []domain.ChargeEvent{
		charge(1, day(10), decimalPtr(decimal.NewFromInt(10))),
		charge(2, day(3), decimalPtr(decimal.NewFromInt(20))),
	}
	payments := []domain.PaymentEvent{
		payment(3, day(7), decimal.NewFromInt(5)),
	}

	merged := accounting.MergeEvents(charges, payments)
	require.Len(t, merged, 3)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Date.Before(merged[i-1].Date))
	}
	assert.Equal(t, int64(2), merged[0].SourceID)
	assert.Equal(t, int64(3), merged[1].SourceID)
	assert.Equal(t, int64(1), merged[2].SourceID)
}

func TestMergeEvents_SameDayOrderingIsReproducible(t *testing.T) {
	// Three same-day events: the relative order must not change between
	// calls with identical input, so the displayed balances don't flicker.
	charges := []domain.ChargeEvent{
		charge(1, day(5), decimalPtr(decimal.NewFromInt(100))),
		charge(2, day(5), decimalPtr(decimal.NewFromInt(200))),
	}
	payments := []domain.PaymentEvent{
		payment(3, day(5), decimal.NewFromInt(50)),
	}

	first := accounting.MergeEvents(charges, payments)
	second := accounting.MergeEvents(charges, payments)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].SourceID, second[i].SourceID)
		assert.Equal(t, first[i].Kind, second[i].Kind)
	}
}

func TestAccumulateBalances_RowInvariant(t *testing.T) {
	opening := decimal.NewFromInt(1000)
	transactions := accounting.MergeEvents(
		[]domain.ChargeEvent{
			charge(1, day(1), decimalPtr(decimal.NewFromInt(500))),
			charge(2, day(4), decimalPtr(decimal.NewFromFloat(120.50))),
		},
		[]domain.PaymentEvent{
			payment(3, day(2), decimal.NewFromInt(300)),
			payment(4, day(6), decimal.NewFromFloat(99.99)),
		},
	)

	closing := accounting.AccumulateBalances(opening, transactions)

	previous := opening
	for _, txn := range transactions {
		expected := previous.Add(txn.Debit).Sub(txn.Credit)
		assert.True(t, txn.Balance.Equal(expected), "row balance must chain from the previous row")
		previous = txn.Balance
	}
	assert.True(t, closing.Equal(transactions[len(transactions)-1].Balance))
}

func TestAccumulateBalances_EmptyListReturnsOpening(t *testing.T) {
	opening := decimal.NewFromInt(42)
	closing := accounting.AccumulateBalances(opening, nil)
	assert.True(t, closing.Equal(opening))
}

func TestAccumulateBalances_ClosingIndependentOfOrder(t *testing.T) {
	opening := decimal.NewFromInt(1000)

	forward := accounting.MergeEvents(
		[]domain.ChargeEvent{
			charge(1, day(5), decimalPtr(decimal.NewFromInt(500))),
			charge(2, day(5), decimalPtr(decimal.NewFromInt(250))),
		},
		[]domain.PaymentEvent{payment(3, day(5), decimal.NewFromInt(300))},
	)
	reversed := accounting.MergeEvents(
		[]domain.ChargeEvent{
			charge(2, day(5), decimalPtr(decimal.NewFromInt(250))),
			charge(1, day(5), decimalPtr(decimal.NewFromInt(500))),
		},
		[]domain.PaymentEvent{payment(3, day(5), decimal.NewFromInt(300))},
	)

	closingForward := accounting.AccumulateBalances(opening, forward)
	closingReversed := accounting.AccumulateBalances(opening, reversed)

	// Ordering only affects the intermediate snapshots, never the closing
	// balance.
	assert.True(t, closingForward.Equal(closingReversed))
	assert.True(t, closingForward.Equal(decimal.NewFromInt(1450)))
}

func TestAccumulateBalances_ScenarioA(t *testing.T) {
	opening := decimal.NewFromInt(1000)
	transactions := accounting.MergeEvents(
		[]domain.ChargeEvent{charge(1, day(10), decimalPtr(decimal.NewFromInt(500)))},
		[]domain.PaymentEvent{payment(2, day(11), decimal.NewFromInt(300))},
	)

	closing := accounting.AccumulateBalances(opening, transactions)

	require.Len(t, transactions, 2)
	assert.True(t, transactions[0].Balance.Equal(decimal.NewFromInt(1500)))
	assert.True(t, transactions[1].Balance.Equal(decimal.NewFromInt(1200)))
	assert.True(t, closing.Equal(decimal.NewFromInt(1200)))
}
