package payment

import (
	"time"

	"github.com/google/uuid"
)

// InitiateRequest starts a payment pending token confirmation.
type InitiateRequest struct {
	ClientID    uuid.UUID `json:"clientId" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description" validate:"required,min=5,max=255"`
}

// InitiateResponse returns the session handle the caller needs to confirm.
// The token itself travels out of band, never in this response.
type InitiateResponse struct {
	SessionID   uuid.UUID `json:"sessionId"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ConfirmRequest completes a pending payment.
type ConfirmRequest struct {
	SessionID string `json:"sessionId" validate:"required,uuid4"`
	Token     string `json:"token" validate:"required,len=6,numeric"`
}

// ConfirmResponse reports the committed debit.
type ConfirmResponse struct {
	TransactionID uuid.UUID `json:"transactionId"`
	Amount        string    `json:"amount"`
	NewBalance    string    `json:"newBalance"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}
