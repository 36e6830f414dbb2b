package accounting

import (
	"sort"

	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MergeEvents folds charge and payment events into a single transaction list
// ordered ascending by date. Charges populate the debit column (a nil amount
// counts as zero and is flagged as price pending), payments the credit
// column. The sort is stable: same-day ordering follows the input order, so
// repeated calls with the same input produce the same output and the per-row
// balances shown to users do not flicker between page loads.
//
// This is a single in-process merge; the events were already fetched, no
// per-event round trips happen here.
func MergeEvents(charges []domain.ChargeEvent, payments []domain.PaymentEvent) []domain.Transaction {
	merged := make([]domain.Transaction, 0, len(charges)+len(payments))

	for _, charge := range charges {
		debit := decimal.Zero
		if charge.Amount != nil {
			debit = *charge.Amount
		}
		merged = append(merged, domain.Transaction{
			Date:          charge.Date,
			Debit:         debit,
			Credit:        decimal.Zero,
			Kind:          domain.Charge,
			SourceID:      charge.EventID,
			SourceSubtype: charge.Kind,
			Invoice:       charge.Invoice,
			CustomerName:  charge.CustomerName,
			SupplierName:  charge.SupplierName,
			ProductName:   charge.ProductName,
			Extras:        charge.Extras,
			Notes:         charge.Notes,
			PricePending:  charge.Amount == nil,
		})
	}

	for _, payment := range payments {
		merged = append(merged, domain.Transaction{
			Date:     payment.Date,
			Debit:    decimal.Zero,
			Credit:   payment.Amount,
			Kind:     domain.Payment,
			SourceID: payment.EventID,
			Method:   payment.Method,
			Notes:    payment.Notes,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return merged
}

// AccumulateBalances walks the merged list once, applying each row's signed
// effect to the carried balance and stamping the result on the row. It
// returns the closing balance, which equals the opening balance when the
// list is empty.
//
// The closing balance depends only on the sums of debits and credits, never
// on ordering; ordering affects the intermediate per-row snapshots only.
func AccumulateBalances(openingBalance decimal.Decimal, transactions []domain.Transaction) decimal.Decimal {
	balance := openingBalance
	for i := range transactions {
		balance = balance.Add(transactions[i].Debit).Sub(transactions[i].Credit)
		transactions[i].Balance = balance
	}
	return balance
}
