package client

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegisterRequest carries the registration payload. Field order matters:
// violations are reported for the first offending field.
type RegisterRequest struct {
	DocType   string `json:"docType" validate:"required"`
	DocNumber string `json:"docNumber" validate:"required"`
	Names     string `json:"names" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone10"`
}

func (r *RegisterRequest) normalize() {
	r.DocType = strings.TrimSpace(r.DocType)
	r.DocNumber = strings.TrimSpace(r.DocNumber)
	r.Names = strings.TrimSpace(r.Names)
	r.Surname = strings.TrimSpace(r.Surname)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

// WalletInfo is the wallet projection embedded in the registration response.
type WalletInfo struct {
	ID        uuid.UUID `json:"id"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterResponse is the full client + wallet projection returned after
// a successful registration.
type RegisterResponse struct {
	ID           uuid.UUID  `json:"id"`
	DocType      string     `json:"docType"`
	DocNumber    string     `json:"docNumber"`
	Names        string     `json:"names"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	RegisteredAt time.Time  `json:"registeredAt"`
	Wallet       WalletInfo `json:"wallet"`
}
