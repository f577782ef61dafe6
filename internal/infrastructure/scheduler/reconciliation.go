package scheduler

import (
	"context"
	"log"
	"time"
)

// SweepFunc retries the pending order syncs. It matches the signature of
// IOrderSyncUseCase.RetryFailedSyncs.
type SweepFunc func(ctx context.Context) error

// ReconciliationScheduler periodically re-syncs service orders whose push to
// the order service failed. A sweep error is logged and the ticker keeps
// running; only Stop ends the loop.

type ReconciliationScheduler struct {
	interval time.Duration
	sweep    SweepFunc

	cancel context.CancelFunc
	done   chan struct{}
}

func NewReconciliationScheduler(interval time.Duration, sweep SweepFunc) *ReconciliationScheduler {
	return &ReconciliationScheduler{
		interval: interval,
		sweep:    sweep,
		done:     make(chan struct{}),
	}
}

func (s *ReconciliationScheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		log.Printf("[scheduler][reconciliation] started, interval %s", s.interval)
		for {
			select {
			case <-ctx.Done():
				log.Printf("[scheduler][reconciliation] stopped")
				return
			case <-ticker.C:
				if err := s.sweep(ctx); err != nil {
					log.Printf("[scheduler][reconciliation] sweep failed: %v", err)
				}
			}
		}
	}()
}

func (s *ReconciliationScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
