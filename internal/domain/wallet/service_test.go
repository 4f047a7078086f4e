package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/validator"
)

type fakeRepository struct {
	balance      decimal.Decimal
	transactions []*Transaction
	clientID     uuid.UUID
	walletID     uuid.UUID
	missing      bool
}

func newFakeRepository(balance string) *fakeRepository {
	return &fakeRepository{
		balance:  decimal.RequireFromString(balance),
		clientID: uuid.New(),
		walletID: uuid.New(),
	}
}

func (f *fakeRepository) TopUp(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, reference string) (*TopUpResult, error) {
	if f.missing || clientID != f.clientID {
		return nil, ErrWalletNotFound
	}
	now := time.Now().UTC()
	f.balance = f.balance.Add(amount).Round(2)
	txn := &Transaction{
		ID:         uuid.New(),
		WalletID:   f.walletID,
		Kind:       KindTopUp,
		Amount:     amount,
		Reference:  reference,
		Status:     StatusCompleted,
		OccurredAt: now,
	}
	f.transactions = append(f.transactions, txn)
	return &TopUpResult{TransactionID: txn.ID, NewBalance: f.balance, OccurredAt: now}, nil
}

func (f *fakeRepository) Statement(ctx context.Context, clientID uuid.UUID) (*Statement, error) {
	if f.missing || clientID != f.clientID {
		return nil, ErrWalletNotFound
	}
	return &Statement{
		Balance:           f.balance,
		UpdatedAt:         time.Now().UTC(),
		TotalTransactions: len(f.transactions),
		ClientID:          f.clientID,
		Names:             "Ana Maria",
		Surname:           "Lopez",
		Email:             "ana.lopez@example.com",
	}, nil
}

func (f *fakeRepository) ListTransactions(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*Transaction, int, error) {
	if f.missing || clientID != f.clientID {
		return nil, 0, ErrWalletNotFound
	}
	total := len(f.transactions)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return f.transactions[offset:end], total, nil
}

func TestTopUpAddsToTheCent(t *testing.T) {
	repo := newFakeRepository("100.00")
	service := NewService(repo, nil)

	resp, err := service.TopUp(context.Background(), &TopUpRequest{
		ClientID: repo.clientID,
		Amount:   50.10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.NewBalance != "150.10" {
		t.Errorf("new balance = %s, want 150.10", resp.NewBalance)
	}
	if resp.Amount != "50.10" {
		t.Errorf("amount = %s, want 50.10", resp.Amount)
	}
	if len(repo.transactions) != 1 {
		t.Fatalf("expected exactly one transaction, got %d", len(repo.transactions))
	}
	if repo.transactions[0].Kind != KindTopUp {
		t.Errorf("kind = %s, want topup", repo.transactions[0].Kind)
	}
}

func TestTopUpValidation(t *testing.T) {
	repo := newFakeRepository("100.00")
	service := NewService(repo, nil)

	tests := []struct {
		name string
		req  *TopUpRequest
	}{
		{"missing client", &TopUpRequest{Amount: 10}},
		{"zero amount", &TopUpRequest{ClientID: repo.clientID, Amount: 0}},
		{"negative amount", &TopUpRequest{ClientID: repo.clientID, Amount: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.TopUp(context.Background(), tt.req)
			var verr *validator.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.transactions) != 0 {
				t.Error("no transaction may be recorded on validation failure")
			}
		})
	}
}

func TestTopUpUnknownClient(t *testing.T) {
	repo := newFakeRepository("0.00")
	service := NewService(repo, nil)

	_, err := service.TopUp(context.Background(), &TopUpRequest{
		ClientID: uuid.New(),
		Amount:   10,
	})
	if !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
}

func TestGetBalanceSnapshot(t *testing.T) {
	repo := newFakeRepository("100.00")
	service := NewService(repo, nil)

	if _, err := service.TopUp(context.Background(), &TopUpRequest{ClientID: repo.clientID, Amount: 50}); err != nil {
		t.Fatalf("topup: %v", err)
	}

	snapshot, err := service.GetBalance(context.Background(), repo.clientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.Balance != "150.00" {
		t.Errorf("balance = %s, want 150.00", snapshot.Balance)
	}
	if snapshot.TotalTransactions != 1 {
		t.Errorf("totalTransactions = %d, want 1", snapshot.TotalTransactions)
	}
	if snapshot.Client.Email != "ana.lopez@example.com" {
		t.Errorf("client email = %s", snapshot.Client.Email)
	}
}

func TestGetBalanceUnknownClient(t *testing.T) {
	repo := newFakeRepository("0.00")
	service := NewService(repo, nil)

	_, err := service.GetBalance(context.Background(), uuid.New())
	if !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
}

func TestListTransactionsDefaultsAndClamps(t *testing.T) {
	repo := newFakeRepository("0.00")
	service := NewService(repo, nil)

	for i := 0; i < 3; i++ {
		if _, err := service.TopUp(context.Background(), &TopUpRequest{ClientID: repo.clientID, Amount: 10}); err != nil {
			t.Fatalf("topup %d: %v", i, err)
		}
	}

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
		wantItems  int
	}{
		{"defaults", 0, 0, defaultHistoryLimit, 0, 3},
		{"clamped limit", 1000, 0, maxHistoryLimit, 0, 3},
		{"negative offset", 5, -2, 5, 0, 3},
		{"paged", 2, 2, 2, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := service.ListTransactions(context.Background(), repo.clientID, tt.limit, tt.offset)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Limit != tt.wantLimit || page.Offset != tt.wantOffset {
				t.Errorf("meta = (%d,%d), want (%d,%d)", page.Limit, page.Offset, tt.wantLimit, tt.wantOffset)
			}
			if len(page.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(page.Items), tt.wantItems)
			}
			if page.Total != 3 {
				t.Errorf("total = %d, want 3", page.Total)
			}
		})
	}
}
