package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates which side of the ledger a row came from.
type TransactionKind string

const (
	Charge  TransactionKind = "CHARGE"
	Payment TransactionKind = "PAYMENT"
)

// Transaction is the ledger's unit of output. Exactly one of Debit/Credit is
// non-zero per row (both are zero only for a charge whose cost is still
// pending); neither is ever negative. Balance is the running balance after
// applying this row: Balance[i] = Balance[i-1] + Debit[i] - Credit[i], seeded
// with the ledger's opening balance.
type Transaction struct {
	Date          time.Time       `json:"date"`
	Concept       string          `json:"concept"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	Kind          TransactionKind `json:"type"`
	SourceID      int64           `json:"sourceID"`
	SourceSubtype ChargeKind      `json:"sourceSubtype,omitempty"` // Empty for payments

	// Carried from the source event for concept rendering; not serialized.
	Invoice      string `json:"-"`
	CustomerName string `json:"-"`
	SupplierName string `json:"-"`
	ProductName  string `json:"-"`
	Extras       string `json:"-"`
	Notes        string `json:"-"`
	Method       string `json:"-"`
	PricePending bool   `json:"-"`
}

// Ledger is the ordered sequence of transactions for one account over one
// reporting window, plus the pre-aggregated balance accrued before the window
// and the closing balance after the last row.
type Ledger struct {
	AccountID      int64           `json:"accountID"`
	WindowStart    time.Time       `json:"windowStart"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Transactions   []Transaction   `json:"transactions"`
}
