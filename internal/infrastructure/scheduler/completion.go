package scheduler

import (
	"context"
	"log"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// CompleteFunc finalizes a processing payment. It matches the signature of
// IPaymentUseCase.Complete.
type CompleteFunc func(ctx context.Context, paymentID string) (entities.Payment, error)

// DelayedCompletionScheduler stands in for a payment-gateway webhook: it
// completes each processing payment after a fixed delay. Stop cancels all
// pending completions.

type DelayedCompletionScheduler struct {
	delay    time.Duration
	complete CompleteFunc

	ctx    context.Context
	cancel context.CancelFunc
}

var _ interfaces.ICompletionScheduler = (*DelayedCompletionScheduler)(nil)

func NewDelayedCompletionScheduler(delay time.Duration, complete CompleteFunc) *DelayedCompletionScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &DelayedCompletionScheduler{
		delay:    delay,
		complete: complete,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *DelayedCompletionScheduler) SchedulePaymentCompletion(paymentID string) {
	go func() {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-s.ctx.Done():
			return
		case <-timer.C:
		}

		if _, err := s.complete(s.ctx, paymentID); err != nil {
			log.Printf("[scheduler][completion] failed to complete payment %s: %v", paymentID, err)
		}
	}()
}

func (s *DelayedCompletionScheduler) Stop() {
	s.cancel()
}
