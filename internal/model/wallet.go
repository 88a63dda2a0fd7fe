package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the member's current wallet balance.
type Wallet struct {
	Balance decimal.Decimal `json:"balance"`
}

// WalletTransaction is one ledger line on the member's wallet.
type WalletTransaction struct {
	CreatedAt time.Time       `json:"created_at"`
	TxnType   string          `json:"txn_type"`
	TxnNote   string          `json:"txn_note"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	ID        int64           `json:"id"`
}

// Withdrawal is a wallet withdrawal request and its approval state.
type Withdrawal struct {
	CreatedAt time.Time       `json:"created_at"`
	Status    string          `json:"status"`
	Note      string          `json:"note"`
	Amount    decimal.Decimal `json:"amount"`
	ID        int64           `json:"id"`
}
