package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is an account holder. Every client owns exactly one wallet,
// created in the same transaction as the client row.
type Client struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DocType      string    `db:"doc_type" json:"docType"`
	DocNumber    string    `db:"doc_number" json:"docNumber"`
	Names        string    `db:"names" json:"names"`
	Surname      string    `db:"surname" json:"surname"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	RegisteredAt time.Time `db:"registered_at" json:"registeredAt"`
}
