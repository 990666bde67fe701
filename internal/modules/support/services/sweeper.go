package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Sweeper periodically removes idle conversations from a ChatService
type Sweeper struct {
	cron    *cron.Cron
	service *ChatService
	maxIdle time.Duration
}

// NewSweeper registers the sweep job. schedule accepts standard cron
// expressions and descriptors like "@every 5m".
func NewSweeper(service *ChatService, schedule string, maxIdle time.Duration) (*Sweeper, error) {
	s := &Sweeper{
		cron:    cron.New(),
		service: service,
		maxIdle: maxIdle,
	}

	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return nil, fmt.Errorf("failed to add sweep job: %w", err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	log.Info().Dur("max_idle", s.maxIdle).Msg("⏰ Starting conversation sweeper")
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("✅ Conversation sweeper stopped")
}

// Sweep runs one pass immediately.
func (s *Sweeper) Sweep() {
	removed := s.service.SweepIdle(s.maxIdle)
	if removed > 0 {
		log.Info().
			Int("removed", removed).
			Int("remaining", s.service.Count()).
			Msg("🧹 Swept idle conversations")
	}
}
