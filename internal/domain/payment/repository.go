package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/money"
)

// WalletOwner is the wallet plus the identity fields the notifier needs.
type WalletOwner struct {
	WalletID uuid.UUID       `db:"wallet_id"`
	ClientID uuid.UUID       `db:"client_id"`
	Balance  decimal.Decimal `db:"balance"`
	Names    string          `db:"names"`
	Surname  string          `db:"surname"`
	Email    string          `db:"email"`
}

// ConfirmResult reports a committed payment debit.
type ConfirmResult struct {
	TransactionID uuid.UUID
	ClientID      uuid.UUID
	Amount        decimal.Decimal
	NewBalance    decimal.Decimal
	ConfirmedAt   time.Time
}

// Repository defines payment data access
type Repository interface {
	WalletForClient(ctx context.Context, clientID uuid.UUID) (*WalletOwner, error)
	CreatePending(ctx context.Context, p *PendingPayment) error
	// Confirm runs the whole confirmation state machine in one transaction.
	// Concurrent confirms for the same session serialize on the locked
	// pending row; at most one ever debits.
	Confirm(ctx context.Context, sessionID uuid.UUID, token string, now time.Time) (*ConfirmResult, error)
	// SweepExpired flips overdue pending rows to expired and reports how
	// many it touched. Confirm never relies on it.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates payment repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WalletForClient(ctx context.Context, clientID uuid.UUID) (*WalletOwner, error) {
	var owner WalletOwner
	err := r.db.GetContext(ctx, &owner, `
		SELECT w.id AS wallet_id, w.client_id, w.balance, c.names, c.surname, c.email
		FROM wallets w
		JOIN clients c ON c.id = w.client_id
		WHERE w.client_id = $1
	`, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("read wallet owner: %w", err)
	}
	return &owner, nil
}

func (r *repository) CreatePending(ctx context.Context, p *PendingPayment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pending_payments (id, session_id, wallet_id, amount, description, token, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.SessionID, p.WalletID, p.Amount, p.Description, p.Token, p.Status, p.CreatedAt, p.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert pending payment: %w", err)
	}
	return nil
}

func (r *repository) Confirm(ctx context.Context, sessionID uuid.UUID, token string, now time.Time) (*ConfirmResult, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin confirm tx: %w", err)
	}
	defer tx.Rollback()

	var pending PendingPayment
	err = tx.GetContext(ctx, &pending, `
		SELECT id, session_id, wallet_id, amount, description, token, status, created_at, expires_at, confirmed_at
		FROM pending_payments
		WHERE session_id = $1
		FOR UPDATE
	`, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("lock pending payment: %w", err)
	}

	switch pending.Status {
	case StatusConfirmed:
		return nil, ErrSessionAlreadyUsed
	case StatusExpired:
		return nil, ErrSessionExpired
	}

	if now.After(pending.ExpiresAt) {
		if _, err := tx.ExecContext(ctx, `
			UPDATE pending_payments SET status = $1 WHERE id = $2
		`, StatusExpired, pending.ID); err != nil {
			return nil, fmt.Errorf("expire pending payment: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit expiry: %w", err)
		}
		return nil, ErrSessionExpired
	}

	if pending.Token != token {
		// Row stays pending, nothing to commit.
		return nil, ErrTokenMismatch
	}

	var wallet struct {
		ClientID uuid.UUID       `db:"client_id"`
		Balance  decimal.Decimal `db:"balance"`
	}
	err = tx.GetContext(ctx, &wallet, `
		SELECT client_id, balance FROM wallets WHERE id = $1 FOR UPDATE
	`, pending.WalletID)
	if err != nil {
		return nil, fmt.Errorf("lock wallet: %w", err)
	}

	if wallet.Balance.LessThan(pending.Amount) {
		return nil, ErrInsufficientFunds
	}

	newBalance := money.Round2(wallet.Balance.Sub(pending.Amount))
	if _, err := tx.ExecContext(ctx, `
		UPDATE wallets SET balance = $1, updated_at = $2 WHERE id = $3
	`, newBalance, now, pending.WalletID); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	txnID := uuid.New()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (id, wallet_id, kind, amount, reference, status, occurred_at)
		VALUES ($1, $2, 'payment', $3, $4, 'completed', $5)
	`, txnID, pending.WalletID, pending.Amount, pending.SessionID.String(), now); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE pending_payments SET status = $1, confirmed_at = $2 WHERE id = $3
	`, StatusConfirmed, now, pending.ID); err != nil {
		return nil, fmt.Errorf("mark confirmed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm tx: %w", err)
	}

	return &ConfirmResult{
		TransactionID: txnID,
		ClientID:      wallet.ClientID,
		Amount:        pending.Amount,
		NewBalance:    newBalance,
		ConfirmedAt:   now,
	}, nil
}

func (r *repository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pending_payments SET status = $1
		WHERE status = $2 AND expires_at < $3
	`, StatusExpired, StatusPending, now)
	if err != nil {
		return 0, fmt.Errorf("sweep expired payments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sweep rows affected: %w", err)
	}
	return n, nil
}
