package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindTopUp   TransactionKind = "topup"
	KindPayment TransactionKind = "payment"
)

const StatusCompleted = "completed"

// Wallet holds a client's balance. Balance is fixed-point with two
// fractional digits and never goes below zero.
type Wallet struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	ClientID  uuid.UUID       `db:"client_id" json:"clientId"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// Transaction is an append-only record of a completed balance mutation.
// Exactly one row exists per top-up or confirmed payment.
type Transaction struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	WalletID   uuid.UUID       `db:"wallet_id" json:"walletId"`
	Kind       TransactionKind `db:"kind" json:"kind"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Reference  string          `db:"reference" json:"reference"`
	Status     string          `db:"status" json:"status"`
	OccurredAt time.Time       `db:"occurred_at" json:"occurredAt"`
}
