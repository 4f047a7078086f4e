package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/validator"
)

// Service implements client registration
type Service struct {
	repo Repository
}

// NewService creates client service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a client by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

// Register validates the payload, then creates the client together with
// its zero-balance wallet. Validation short-circuits before any write.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	req.normalize()
	if verr := validator.First(req); verr != nil {
		return nil, verr
	}

	c := &Client{
		ID:           uuid.New(),
		DocType:      req.DocType,
		DocNumber:    req.DocNumber,
		Names:        req.Names,
		Surname:      req.Surname,
		Email:        req.Email,
		Phone:        req.Phone,
		RegisteredAt: time.Now().UTC(),
	}

	wallet, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("client_id", c.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Msg("client registered")

	return &RegisterResponse{
		ID:           c.ID,
		DocType:      c.DocType,
		DocNumber:    c.DocNumber,
		Names:        c.Names,
		Surname:      c.Surname,
		Email:        c.Email,
		Phone:        c.Phone,
		RegisteredAt: c.RegisteredAt,
		Wallet:       *wallet,
	}, nil
}
