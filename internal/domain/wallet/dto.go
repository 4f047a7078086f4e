package wallet

import (
	"time"

	"github.com/google/uuid"
)

// TopUpRequest carries an unconditional balance increase.
type TopUpRequest struct {
	ClientID  uuid.UUID `json:"clientId" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Reference string    `json:"reference" validate:"omitempty,max=255"`
}

// TopUpResponse reports the applied top-up.
type TopUpResponse struct {
	TransactionID uuid.UUID `json:"transactionId"`
	Amount        string    `json:"amount"`
	NewBalance    string    `json:"newBalance"`
	Reference     string    `json:"reference,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// ClientSummary is the identity slice returned with a balance inquiry.
type ClientSummary struct {
	ID      uuid.UUID `json:"id"`
	Names   string    `json:"names"`
	Surname string    `json:"surname"`
	Email   string    `json:"email"`
}

// BalanceResponse is the wallet snapshot for a balance inquiry.
type BalanceResponse struct {
	Balance           string        `json:"balance"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	TotalTransactions int           `json:"totalTransactions"`
	Client            ClientSummary `json:"client"`
}

// TransactionItem is a single row in the transaction history.
type TransactionItem struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	Amount     string    `json:"amount"`
	Reference  string    `json:"reference,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// TransactionListResponse is a paginated transaction history.
type TransactionListResponse struct {
	Items  []TransactionItem `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
