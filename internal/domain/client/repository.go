package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/money"
)

const sqlStateUniqueViolation = "23505"

// Repository defines client data access
type Repository interface {
	// Create inserts the client and its zero-balance wallet in one
	// transaction and returns the created wallet projection.
	Create(ctx context.Context, c *Client) (*WalletInfo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates client repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Client) (*WalletInfo, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin register tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO clients (id, doc_type, doc_number, names, surname, email, phone, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.DocType, c.DocNumber, c.Names, c.Surname, c.Email, c.Phone, c.RegisteredAt)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	walletID := uuid.New()
	var updatedAt time.Time
	err = tx.QueryRowContext(ctx, `
		INSERT INTO wallets (id, client_id, balance)
		VALUES ($1, $2, 0)
		RETURNING updated_at
	`, walletID, c.ID).Scan(&updatedAt)
	if err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit register tx: %w", err)
	}

	return &WalletInfo{ID: walletID, Balance: money.Format(money.Zero()), UpdatedAt: updatedAt}, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	var c Client
	err := r.db.GetContext(ctx, &c, `
		SELECT id, doc_type, doc_number, names, surname, email, phone, registered_at
		FROM clients WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != sqlStateUniqueViolation {
		return fmt.Errorf("create client: %w", err)
	}
	switch pqErr.Constraint {
	case "clients_email_key":
		return ErrEmailTaken
	case "clients_doc_number_key":
		return ErrDocNumberTaken
	}
	if pqErr.Column == "email" {
		return ErrEmailTaken
	}
	return ErrDocNumberTaken
}
