package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/money"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/validator"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Service implements top-up, balance inquiry and transaction history.
type Service struct {
	repo  Repository
	cache *BalanceCache
}

// NewService creates wallet service
func NewService(repo Repository, cache *BalanceCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// TopUp applies an unconditional balance increase. The balance update and
// the transaction row commit in one unit.
func (s *Service) TopUp(ctx context.Context, req *TopUpRequest) (*TopUpResponse, error) {
	if verr := validator.First(req); verr != nil {
		return nil, verr
	}

	amount := money.FromFloat(req.Amount)
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	result, err := s.repo.TopUp(ctx, req.ClientID, amount, req.Reference)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, req.ClientID)

	log.Info().
		Str("client_id", req.ClientID.String()).
		Str("amount", money.Format(amount)).
		Str("transaction_id", result.TransactionID.String()).
		Msg("wallet topup applied")

	return &TopUpResponse{
		TransactionID: result.TransactionID,
		Amount:        money.Format(amount),
		NewBalance:    money.Format(result.NewBalance),
		Reference:     req.Reference,
		OccurredAt:    result.OccurredAt,
	}, nil
}

// GetBalance returns the wallet snapshot for a client, served from the
// cache when a fresh snapshot exists.
func (s *Service) GetBalance(ctx context.Context, clientID uuid.UUID) (*BalanceResponse, error) {
	if snapshot, ok := s.cache.Get(ctx, clientID); ok {
		return snapshot, nil
	}

	stmt, err := s.repo.Statement(ctx, clientID)
	if err != nil {
		return nil, err
	}

	snapshot := &BalanceResponse{
		Balance:           money.Format(stmt.Balance),
		UpdatedAt:         stmt.UpdatedAt,
		TotalTransactions: stmt.TotalTransactions,
		Client: ClientSummary{
			ID:      stmt.ClientID,
			Names:   stmt.Names,
			Surname: stmt.Surname,
			Email:   stmt.Email,
		},
	}
	s.cache.Set(ctx, clientID, snapshot)
	return snapshot, nil
}

// ListTransactions returns a page of the wallet's history, newest first.
func (s *Service) ListTransactions(ctx context.Context, clientID uuid.UUID, limit, offset int) (*TransactionListResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.repo.ListTransactions(ctx, clientID, limit, offset)
	if err != nil {
		return nil, err
	}

	out := &TransactionListResponse{
		Items:  make([]TransactionItem, 0, len(items)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, t := range items {
		out.Items = append(out.Items, TransactionItem{
			ID:         t.ID,
			Kind:       string(t.Kind),
			Amount:     money.Format(t.Amount),
			Reference:  t.Reference,
			Status:     t.Status,
			OccurredAt: t.OccurredAt,
		})
	}
	return out, nil
}
