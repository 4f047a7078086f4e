package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/domain/wallet"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/money"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/validator"
)

// TokenSender delivers confirmation tokens to the payer.
type TokenSender interface {
	SendToken(ctx context.Context, to, toName, token string, amount decimal.Decimal, description string, expiresAt time.Time) error
}

// Service implements the two-phase payment flow.
type Service struct {
	repo      Repository
	notifier  TokenSender
	cache     *wallet.BalanceCache
	maxAmount decimal.Decimal
	tokenTTL  time.Duration
}

// NewService creates payment service
func NewService(repo Repository, notifier TokenSender, cache *wallet.BalanceCache, maxAmount decimal.Decimal, tokenTTL time.Duration) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		cache:     cache,
		maxAmount: maxAmount,
		tokenTTL:  tokenTTL,
	}
}

// Initiate checks funds, persists a pending payment and sends the token.
// The balance is not decremented here; a send failure still leaves the
// pending row in place so the session can expire naturally.
func (s *Service) Initiate(ctx context.Context, req *InitiateRequest) (*InitiateResponse, error) {
	if verr := validator.First(req); verr != nil {
		return nil, verr
	}

	// Sub-cent inputs can round down to zero and must not reach the store.
	amount := money.FromFloat(req.Amount)
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(s.maxAmount) {
		return nil, ErrAmountTooLarge
	}

	owner, err := s.repo.WalletForClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if owner.Balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	now := time.Now().UTC()
	pending := &PendingPayment{
		ID:          uuid.New(),
		SessionID:   uuid.New(),
		WalletID:    owner.WalletID,
		Amount:      amount,
		Description: req.Description,
		Token:       generateToken(),
		Status:      StatusPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.tokenTTL),
	}
	if err := s.repo.CreatePending(ctx, pending); err != nil {
		return nil, err
	}

	log.Info().
		Str("client_id", req.ClientID.String()).
		Str("session_id", pending.SessionID.String()).
		Str("amount", money.Format(amount)).
		Time("expires_at", pending.ExpiresAt).
		Msg("payment initiated")

	toName := owner.Names + " " + owner.Surname
	if err := s.notifier.SendToken(ctx, owner.Email, toName, pending.Token, amount, req.Description, pending.ExpiresAt); err != nil {
		log.Error().Err(err).
			Str("session_id", pending.SessionID.String()).
			Msg("token delivery failed")
		return nil, ErrNotificationFailed
	}

	return &InitiateResponse{
		SessionID:   pending.SessionID,
		Amount:      money.Format(amount),
		Description: req.Description,
		ExpiresAt:   pending.ExpiresAt,
	}, nil
}

// Confirm settles a pending payment after token verification.
func (s *Service) Confirm(ctx context.Context, req *ConfirmRequest) (*ConfirmResponse, error) {
	if verr := validator.First(req); verr != nil {
		return nil, verr
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	result, err := s.repo.Confirm(ctx, sessionID, req.Token, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, result.ClientID)

	log.Info().
		Str("session_id", sessionID.String()).
		Str("transaction_id", result.TransactionID.String()).
		Str("amount", money.Format(result.Amount)).
		Str("new_balance", money.Format(result.NewBalance)).
		Msg("payment confirmed")

	return &ConfirmResponse{
		TransactionID: result.TransactionID,
		Amount:        money.Format(result.Amount),
		NewBalance:    money.Format(result.NewBalance),
		ConfirmedAt:   result.ConfirmedAt,
	}, nil
}
