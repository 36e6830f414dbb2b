package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeKind discriminates the source operations that increase what an
// account owes.
type ChargeKind string

const (
	Delivery           ChargeKind = "DELIVERY"
	SupplierPickup     ChargeKind = "SUPPLIER_PICKUP"
	StoreMovement      ChargeKind = "STORE_MOVEMENT"
	ManufacturingOrder ChargeKind = "MANUFACTURING_ORDER"
)

// ChargeEvent is an event that increases the counterparty's balance due.
// Amount may be nil when the cost is not yet known; a nil amount contributes
// zero to every balance but is flagged in the rendered concept. Amounts are
// never negative: the source system deletes or nulls a cost instead of
// reversing it.
type ChargeEvent struct {
	EventID   int64
	AccountID int64
	Date      time.Time
	Amount    *decimal.Decimal
	Kind      ChargeKind

	// Reference fields, display only. Any of them may be empty.
	Invoice      string
	CustomerName string
	SupplierName string
	ProductName  string
	Extras       string
	Notes        string
}

// PaymentEvent is an event that decreases the running balance.
type PaymentEvent struct {
	EventID   int64
	AccountID int64
	Date      time.Time
	Amount    decimal.Decimal
	Method    string // Free form: "Efectivo", "Transferencia", ...
	Notes     string
}
