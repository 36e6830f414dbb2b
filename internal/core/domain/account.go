package domain

// AccountKind discriminates the two account variants the business tracks a
// running balance for. They differ only in which event kinds feed the ledger
// and how concepts are rendered.
type AccountKind string

const (
	// Carrier accounts accrue deliveries, supplier pickups and store movements.
	Carrier AccountKind = "CARRIER"
	// Manufacturer accounts accrue manufacturing orders.
	Manufacturer AccountKind = "MANUFACTURER"
)

// Account represents a counterparty with a monetary relationship to the
// business. This is the primary representation used by services.
type Account struct {
	AccountID int64       `json:"accountID"` // Primary key
	Kind      AccountKind `json:"kind"`      // CARRIER or MANUFACTURER
	Name      string      `json:"name"`      // Display name
	IsActive  bool        `json:"isActive"`  // Soft delete flag
	AuditFields
}
