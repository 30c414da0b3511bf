package services

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// ResetService reseeds the store on demand and, when a schedule is set,
// periodically so shared demo instances return to the fixture state.
type ResetService struct {
	store    ResettableStore
	schedule string
	cron     *cron.Cron
}

// NewResetService creates a reset service. An empty schedule disables
// the periodic reset.
func NewResetService(store ResettableStore, schedule string) *ResetService {
	return &ResetService{
		store:    store,
		schedule: schedule,
	}
}

// ResetNow reseeds the store immediately
func (s *ResetService) ResetNow(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	log.Println("🔄 Store reset to fixtures")
	return nil
}

// Start registers the reset job and starts the scheduler
func (s *ResetService) Start() error {
	if s.schedule == "" {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() {
		if err := s.ResetNow(context.Background()); err != nil {
			log.Printf("❌ Scheduled reset failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid RESET_SCHEDULE %q: %w", s.schedule, err)
	}

	c.Start()
	s.cron = c
	log.Printf("⏰ Scheduled store reset [%s]", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running reset to finish
func (s *ResetService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}
