package wallet

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

// TopUpResult reports a committed top-up.
type TopUpResult struct {
	TransactionID uuid.UUID
	NewBalance    decimal.Decimal
	OccurredAt    time.Time
}

// Statement is a consistent read of a wallet with its owner's identity.
type Statement struct {
	Balance           decimal.Decimal `db:"balance"`
	UpdatedAt         time.Time       `db:"updated_at"`
	TotalTransactions int             `db:"total_transactions"`
	ClientID          uuid.UUID       `db:"client_id"`
	Names             string          `db:"names"`
	Surname           string          `db:"surname"`
	Email             string          `db:"email"`
}

// Repository defines wallet data access
type Repository interface {
	// TopUp locks the wallet row, adds amount to the balance and appends
	// the matching transaction row. Both writes commit together or not
	// at all.
	TopUp(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, reference string) (*TopUpResult, error)
	Statement(ctx context.Context, clientID uuid.UUID) (*Statement, error)
	ListTransactions(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*Transaction, int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates wallet repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TopUp(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, reference string) (*TopUpResult, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin topup tx: %w", err)
	}
	defer tx.Rollback()

	var row struct {
		ID      uuid.UUID       `db:"id"`
		Balance decimal.Decimal `db:"balance"`
	}
	err = tx.GetContext(ctx, &row, `SELECT id, balance FROM wallets WHERE client_id = $1 FOR UPDATE`, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("lock wallet: %w", err)
	}

	now := time.Now().UTC()
	newBalance := money.Round2(row.Balance.Add(amount))

	if _, err := tx.ExecContext(ctx, `
		UPDATE wallets SET balance = $1, updated_at = $2 WHERE id = $3
	`, newBalance, now, row.ID); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	txnID := uuid.New()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (id, wallet_id, kind, amount, reference, status, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, txnID, row.ID, string(KindTopUp), amount, reference, StatusCompleted, now); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit topup tx: %w", err)
	}

	return &TopUpResult{TransactionID: txnID, NewBalance: newBalance, OccurredAt: now}, nil
}

func (r *repository) Statement(ctx context.Context, clientID uuid.UUID) (*Statement, error) {
	var s Statement
	err := r.db.GetContext(ctx, &s, `
		SELECT w.balance, w.updated_at,
		       (SELECT count(*) FROM transactions t WHERE t.wallet_id = w.id) AS total_transactions,
		       c.id AS client_id, c.names, c.surname, c.email
		FROM wallets w
		JOIN clients c ON c.id = w.client_id
		WHERE w.client_id = $1
	`, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("read statement: %w", err)
	}
	return &s, nil
}

func (r *repository) ListTransactions(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*Transaction, int, error) {
	var walletID uuid.UUID
	err := r.db.GetContext(ctx, &walletID, `SELECT id FROM wallets WHERE client_id = $1`, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrWalletNotFound
		}
		return nil, 0, fmt.Errorf("resolve wallet: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT count(*) FROM transactions WHERE wallet_id = $1`, walletID); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	var items []*Transaction
	err = r.db.SelectContext(ctx, &items, `
		SELECT id, wallet_id, kind, amount, reference, status, occurred_at
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return items, total, nil
}
