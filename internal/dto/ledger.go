package dto

import (
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates; the events carry no
// meaningful time component.
const dateLayout = "2006-01-02"

// LedgerParams holds the query parameters for the ledger endpoint.
type LedgerParams struct {
	WindowDays int `form:"windowDays" binding:"omitempty,min=1,max=365"`
}

// LedgerTransactionResponse represents one ledger row. Money values are
// plain decimal numbers, never pre-formatted strings; display formatting is
// a caller concern.
type LedgerTransactionResponse struct {
	Date          string          `json:"date"`
	Concept       string          `json:"concept"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	Type          string          `json:"type"`
	SourceID      int64           `json:"sourceID"`
	SourceSubtype string          `json:"sourceSubtype,omitempty"`
}

// LedgerResponse represents the assembled account statement.
type LedgerResponse struct {
	AccountID      int64                       `json:"accountID"`
	WindowStart    string                      `json:"windowStart"`
	OpeningBalance decimal.Decimal             `json:"openingBalance"`
	TotalBalance   decimal.Decimal             `json:"totalBalance"`
	Transactions   []LedgerTransactionResponse `json:"transactions"`
}

// ToLedgerResponse converts a domain ledger to its DTO representation.
func ToLedgerResponse(ledger *domain.Ledger) LedgerResponse {
	transactions := make([]LedgerTransactionResponse, len(ledger.Transactions))
	for i, txn := range ledger.Transactions {
		transactions[i] = LedgerTransactionResponse{
			Date:          txn.Date.Format(dateLayout),
			Concept:       txn.Concept,
			Debit:         txn.Debit,
			Credit:        txn.Credit,
			Balance:       txn.Balance,
			Type:          string(txn.Kind),
			SourceID:      txn.SourceID,
			SourceSubtype: string(txn.SourceSubtype),
		}
	}
	return LedgerResponse{
		AccountID:      ledger.AccountID,
		WindowStart:    ledger.WindowStart.Format(dateLayout),
		OpeningBalance: ledger.OpeningBalance,
		TotalBalance:   ledger.ClosingBalance,
		Transactions:   transactions,
	}
}
