package payment

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusExpired   Status = "expired"
)

// PendingPayment is a payment awaiting token confirmation. The amount is
// never reserved on the wallet; the balance is re-checked at confirm time.
type PendingPayment struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	SessionID   uuid.UUID       `db:"session_id" json:"sessionId"`
	WalletID    uuid.UUID       `db:"wallet_id" json:"walletId"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description"`
	Token       string          `db:"token" json:"-"`
	Status      Status          `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	ExpiresAt   time.Time       `db:"expires_at" json:"expiresAt"`
	ConfirmedAt sql.NullTime    `db:"confirmed_at" json:"confirmedAt,omitempty"`
}
