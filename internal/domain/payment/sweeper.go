package payment

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Sweeper periodically flips overdue pending payments to expired. It is an
// operational nicety only; Confirm re-validates expiry on every call.
type Sweeper struct {
	repo     Repository
	interval time.Duration
}

// NewSweeper creates a sweeper
func NewSweeper(repo Repository, interval time.Duration) *Sweeper {
	return &Sweeper{repo: repo, interval: interval}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Msg("payment expiry sweeper started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("payment expiry sweeper stopped")
			return
		case <-ticker.C:
			n, err := s.repo.SweepExpired(ctx, time.Now().UTC())
			if err != nil {
				log.Error().Err(err).Msg("payment expiry sweep failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("expired", n).Msg("pending payments expired")
			}
		}
	}
}
