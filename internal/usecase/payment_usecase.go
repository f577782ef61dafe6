package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidPaymentID       = errors.New("invalid payment_id")
	ErrInvalidPaymentBudgetID = errors.New("invalid budget_id for payment")
	ErrInvalidPaymentAmount   = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
)

// IPaymentUseCase owns the payment side of the workflow: registering a
// collection attempt against a budget, processing it, and completing or
// failing it. Completion also drives the linked service order forward and
// attempts the first sync with the external order service.

type IPaymentUseCase interface {
	Register(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Process(ctx context.Context, paymentID string, details entities.PaymentDetails) (entities.Payment, error)
	Complete(ctx context.Context, paymentID string) (entities.Payment, error)
	Fail(ctx context.Context, paymentID, reason string) (entities.Payment, error)
	Verify(ctx context.Context, paymentID string) (entities.Payment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	budgetRepo interfaces.IBudgetRepository
	orderRepo  interfaces.IServiceOrderRepository
	notifier   interfaces.INotifier
	publisher  interfaces.IEventPublisher
	syncClient interfaces.IOrderSyncClient
	completion interfaces.ICompletionScheduler
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	budgetRepo interfaces.IBudgetRepository,
	orderRepo interfaces.IServiceOrderRepository,
	notifier interfaces.INotifier,
	publisher interfaces.IEventPublisher,
	syncClient interfaces.IOrderSyncClient,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:       repo,
		budgetRepo: budgetRepo,
		orderRepo:  orderRepo,
		notifier:   notifier,
		publisher:  publisher,
		syncClient: syncClient,
	}
}

// SetCompletionScheduler injects the asynchronous completion trigger. It is
// set after construction because the scheduler calls back into Complete.
func (u *PaymentUseCase) SetCompletionScheduler(s interfaces.ICompletionScheduler) {
	u.completion = s
}

// Register persists a new pending payment. The referenced budget must exist;
// nothing is persisted otherwise.
func (u *PaymentUseCase) Register(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	p.BudgetID = strings.TrimSpace(p.BudgetID)
	if p.BudgetID == "" {
		return entities.Payment{}, ErrInvalidPaymentBudgetID
	}
	if p.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	if !p.PaymentMethod.IsValid() {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	b, err := u.budgetRepo.GetByBudgetID(ctx, p.BudgetID)
	if err != nil {
		return entities.Payment{}, err
	}
	if b.BudgetID == "" {
		return entities.Payment{}, ErrBudgetNotFound
	}

	now := time.Now().UTC()
	p.PaymentID = newWorkflowID(payIDPrefix, now)
	p.Status = entities.PaymentStatusPending
	p.ProcessedAt, p.CompletedAt = nil, nil
	p.FailureReason = ""
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Version = 1

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] register failed payment_id=%s err=%v", p.PaymentID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment registered payment_id=%s budget_id=%s amount=%.2f", created.PaymentID, created.BudgetID, created.Amount)
	return created, nil
}

// Process moves the payment to processing, merges the caller's transaction
// details, and schedules the injected completion trigger. The trigger stands
// in for a payment-gateway webhook; Process itself returns immediately with
// the processing payment.
func (u *PaymentUseCase) Process(ctx context.Context, paymentID string, details entities.PaymentDetails) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.PaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	now := time.Now().UTC()
	p.Status = entities.PaymentStatusProcessing
	p.ProcessedAt = &now
	p.PaymentDetails = mergePaymentDetails(p.PaymentDetails, details)
	p.PaymentDetails.TransactionID = newTransactionID(now)
	p.UpdatedAt = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.PaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	if u.completion != nil {
		u.completion.SchedulePaymentCompletion(updated.PaymentID)
	}

	log.Printf("[payment][usecase] payment processing payment_id=%s txn=%s", paymentID, updated.PaymentDetails.TransactionID)
	return updated, nil
}

// Complete marks the payment completed and runs its side effects: customer
// confirmation mail, service-order update with the first sync attempt, and
// the payment.completed event. Replays are no-ops. Once the status write
// lands, Complete always succeeds; mail, sync and publish failures are
// logged and absorbed.
func (u *PaymentUseCase) Complete(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.PaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Status == entities.PaymentStatusCompleted {
		log.Printf("[payment][usecase] complete replay payment_id=%s", paymentID)
		return p, nil
	}

	now := time.Now().UTC()
	p.Status = entities.PaymentStatusCompleted
	p.CompletedAt = &now
	p.UpdatedAt = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.PaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	// The budget is only needed for the customer-facing steps. When it cannot
	// be loaded, mail and event are skipped; the order update below does not
	// depend on it.
	budget, err := u.budgetRepo.GetByBudgetID(ctx, updated.BudgetID)
	if err != nil {
		log.Printf("[payment][usecase] budget lookup failed payment_id=%s budget_id=%s err=%v", paymentID, updated.BudgetID, err)
		budget = entities.Budget{}
	}
	budgetFound := budget.BudgetID != ""

	if budgetFound && u.notifier != nil {
		if err := u.notifier.SendPaymentConfirmation(ctx, updated, budget); err != nil {
			log.Printf("[payment][usecase] confirmation mail failed payment_id=%s err=%v", paymentID, err)
		}
	}

	if updated.OrderID != "" {
		if err := u.updateOrderAfterPayment(ctx, updated.OrderID, updated.PaymentID); err != nil {
			log.Printf("[payment][usecase] order update failed payment_id=%s order_id=%s err=%v", paymentID, updated.OrderID, err)
		}
	}

	if budgetFound {
		u.publish(ctx, TopicPaymentCompleted, PaymentCompletedEvent{
			PaymentID:  updated.PaymentID,
			BudgetID:   updated.BudgetID,
			CustomerID: updated.CustomerID,
			Amount:     updated.Amount,
			OrderID:    updated.OrderID,
			Timestamp:  now,
		})
	}

	log.Printf("[payment][usecase] payment completed payment_id=%s", paymentID)
	return updated, nil
}

// Fail marks the payment failed unconditionally, mails the customer on a
// best-effort basis and publishes payment.failed.
func (u *PaymentUseCase) Fail(ctx context.Context, paymentID, reason string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.PaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	now := time.Now().UTC()
	p.Status = entities.PaymentStatusFailed
	p.FailureReason = reason
	p.UpdatedAt = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.PaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	budget, err := u.budgetRepo.GetByBudgetID(ctx, updated.BudgetID)
	if err != nil {
		log.Printf("[payment][usecase] budget lookup failed payment_id=%s budget_id=%s err=%v", paymentID, updated.BudgetID, err)
		budget = entities.Budget{}
	}
	if budget.BudgetID != "" && u.notifier != nil {
		if err := u.notifier.SendPaymentFailure(ctx, updated, budget, reason); err != nil {
			log.Printf("[payment][usecase] failure mail failed payment_id=%s err=%v", paymentID, err)
		}
	}

	u.publish(ctx, TopicPaymentFailed, PaymentFailedEvent{
		PaymentID:  updated.PaymentID,
		BudgetID:   updated.BudgetID,
		CustomerID: updated.CustomerID,
		Amount:     updated.Amount,
		Reason:     reason,
		Timestamp:  now,
	})

	log.Printf("[payment][usecase] payment failed payment_id=%s reason=%q", paymentID, reason)
	return updated, nil
}

func (u *PaymentUseCase) Verify(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.PaymentID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Payment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidPaymentBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

// updateOrderAfterPayment attaches the payment to its service order, moves
// the order to in_progress and attempts the remote sync. The local status
// write and the sync outcome are independent: a sync failure only records
// the error and bumps the attempt counter, it never reverts the status. The
// order is persisted regardless of the sync outcome.
func (u *PaymentUseCase) updateOrderAfterPayment(ctx context.Context, orderID, paymentID string) error {
	o, err := u.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.OrderID == "" {
		return ErrServiceOrderNotFound
	}

	now := time.Now().UTC()
	o.PaymentID = paymentID
	o.Status = entities.ServiceOrderStatusInProgress

	if _, err := u.syncOrder(ctx, o.OrderID, string(o.Status), paymentID); err != nil {
		o.SyncError = err.Error()
		o.SyncAttempts++
		log.Printf("[payment][usecase] order sync failed order_id=%s attempt=%d err=%v", orderID, o.SyncAttempts, err)
	} else {
		o.SyncedWithOrderService = true
		o.LastSyncAt = &now
		o.SyncError = ""
		log.Printf("[payment][usecase] order synced order_id=%s", orderID)
	}

	o.UpdatedAt = now
	_, err = u.orderRepo.Update(ctx, o)
	return err
}

func (u *PaymentUseCase) syncOrder(ctx context.Context, orderID, status, paymentID string) ([]byte, error) {
	if u.syncClient == nil {
		return nil, errors.New("order sync client not configured")
	}
	return u.syncClient.UpdateOrderStatus(ctx, orderID, status, paymentID)
}

func (u *PaymentUseCase) publish(ctx context.Context, topic string, event any) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, topic, event); err != nil {
		log.Printf("[payment][usecase] publish %s failed err=%v", topic, err)
	}
}

func mergePaymentDetails(base, in entities.PaymentDetails) entities.PaymentDetails {
	if in.AuthorizationCode != "" {
		base.AuthorizationCode = in.AuthorizationCode
	}
	if in.Installments != 0 {
		base.Installments = in.Installments
	}
	if in.CardLastDigits != "" {
		base.CardLastDigits = in.CardLastDigits
	}
	return base
}
