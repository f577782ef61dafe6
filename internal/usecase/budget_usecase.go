package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrBudgetNotFound           = errors.New("budget not found")
	ErrInvalidBudgetID          = errors.New("invalid budget_id")
	ErrInvalidCustomerID        = errors.New("invalid customer_id")
	ErrBudgetItemsEmpty         = errors.New("budget requires at least one item")
	ErrBudgetAlreadyProcessed   = errors.New("budget already processed")
	ErrBudgetNotificationFailed = errors.New("failed to send budget notification")
)

// A budget expires 30 days after creation.
const budgetValidity = 30 * 24 * time.Hour

// ApprovalResult is the tagged outcome of Approve. A fresh approval carries
// the spawned ServiceOrder; a replayed approval sets AlreadyApproved and, when
// resolvable, the id of the order created the first time around. Callers can
// therefore tell the two apart instead of guessing from an empty order.
type ApprovalResult struct {
	Budget          entities.Budget
	ServiceOrder    *entities.ServiceOrder
	AlreadyApproved bool
	ExistingOrderID string
}

// IBudgetUseCase owns the budget side of the workflow: issuing a quote,
// sending it to the customer for approval, and approving or rejecting it.
// Approval spawns the service order that fulfillment works against.

type IBudgetUseCase interface {
	Generate(ctx context.Context, b entities.Budget) (entities.Budget, error)
	SendForApproval(ctx context.Context, budgetID string) (entities.Budget, error)
	Approve(ctx context.Context, budgetID string) (ApprovalResult, error)
	Reject(ctx context.Context, budgetID, reason string) (entities.Budget, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.Budget, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo      interfaces.IBudgetRepository
	orderRepo interfaces.IServiceOrderRepository
	notifier  interfaces.INotifier
	publisher interfaces.IEventPublisher
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	orderRepo interfaces.IServiceOrderRepository,
	notifier interfaces.INotifier,
	publisher interfaces.IEventPublisher,
) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, orderRepo: orderRepo, notifier: notifier, publisher: publisher}
}

// Generate persists a new budget in pending state. Field presence is the
// caller layer's problem; the only invariant enforced here is a non-empty
// item list. No side effects beyond persistence.
func (u *BudgetUseCase) Generate(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if len(b.Items) == 0 {
		return entities.Budget{}, ErrBudgetItemsEmpty
	}

	now := time.Now().UTC()
	b.BudgetID = newWorkflowID(budgetIDPrefix, now)
	b.Status = entities.BudgetStatusPending
	b.SentAt, b.ApprovedAt, b.RejectedAt = nil, nil, nil
	b.ExpiresAt = now.Add(budgetValidity)
	b.CreatedAt = now
	b.UpdatedAt = now
	b.Version = 1

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[budget][usecase] create failed budget_id=%s err=%v", b.BudgetID, err)
		return entities.Budget{}, err
	}
	log.Printf("[budget][usecase] budget created budget_id=%s customer_id=%s total=%.2f", created.BudgetID, created.CustomerID, created.TotalAmount)
	return created, nil
}

// SendForApproval emails the budget to the customer and marks it sent.
//
// Ordering is deliberate: the mail goes out before the status write, so a
// delivery failure aborts the transition with the budget still pending. The
// budget.created event is published after the write and its failure is only
// logged; an already-persisted transition is never rolled back.
func (u *BudgetUseCase) SendForApproval(ctx context.Context, budgetID string) (entities.Budget, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	if u.notifier == nil {
		return entities.Budget{}, errors.New("notifier not configured")
	}

	b, err := u.repo.GetByBudgetID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.BudgetID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusPending {
		log.Printf("[budget][usecase] send rejected budget_id=%s status=%s", budgetID, b.Status)
		return entities.Budget{}, ErrBudgetAlreadyProcessed
	}

	if err := u.notifier.SendBudget(ctx, b); err != nil {
		log.Printf("[budget][usecase] budget mail failed budget_id=%s err=%v", budgetID, err)
		return entities.Budget{}, fmt.Errorf("%w: %v", ErrBudgetNotificationFailed, err)
	}

	now := time.Now().UTC()
	b.Status = entities.BudgetStatusSent
	b.SentAt = &now
	b.UpdatedAt = now

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.BudgetID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	u.publish(ctx, TopicBudgetCreated, BudgetCreatedEvent{
		BudgetID:    updated.BudgetID,
		CustomerID:  updated.CustomerID,
		TotalAmount: updated.TotalAmount,
		Timestamp:   now,
	})

	log.Printf("[budget][usecase] budget sent budget_id=%s", budgetID)
	return updated, nil
}

// Approve marks the budget approved and spawns its service order. Calling it
// on an already-approved budget is a no-op reported through the tagged
// result; no second order is created.
func (u *BudgetUseCase) Approve(ctx context.Context, budgetID string) (ApprovalResult, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return ApprovalResult{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByBudgetID(ctx, budgetID)
	if err != nil {
		return ApprovalResult{}, err
	}
	if b.BudgetID == "" {
		return ApprovalResult{}, ErrBudgetNotFound
	}

	if b.Status == entities.BudgetStatusApproved {
		res := ApprovalResult{Budget: b, AlreadyApproved: true}
		existing, err := u.orderRepo.GetByBudgetID(ctx, b.BudgetID)
		if err != nil {
			log.Printf("[budget][usecase] existing order lookup failed budget_id=%s err=%v", budgetID, err)
		} else if existing.OrderID != "" {
			res.ExistingOrderID = existing.OrderID
		}
		log.Printf("[budget][usecase] approve replay budget_id=%s order_id=%s", budgetID, res.ExistingOrderID)
		return res, nil
	}

	now := time.Now().UTC()
	b.Status = entities.BudgetStatusApproved
	b.ApprovedAt = &now
	b.UpdatedAt = now

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return ApprovalResult{}, err
	}
	if updated.BudgetID == "" {
		return ApprovalResult{}, ErrBudgetNotFound
	}

	order, err := u.createServiceOrder(ctx, updated)
	if err != nil {
		return ApprovalResult{}, err
	}

	log.Printf("[budget][usecase] budget approved budget_id=%s order_id=%s", budgetID, order.OrderID)
	return ApprovalResult{Budget: updated, ServiceOrder: &order}, nil
}

// Reject is permissive: it does not guard against double rejection or
// rejecting an approved budget. The reason overwrites the notes field.
func (u *BudgetUseCase) Reject(ctx context.Context, budgetID, reason string) (entities.Budget, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByBudgetID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.BudgetID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	now := time.Now().UTC()
	b.Status = entities.BudgetStatusRejected
	b.RejectedAt = &now
	b.Notes = reason
	b.UpdatedAt = now

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.BudgetID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	log.Printf("[budget][usecase] budget rejected budget_id=%s", budgetID)
	return updated, nil
}

func (u *BudgetUseCase) GetByBudgetID(ctx context.Context, budgetID string) (entities.Budget, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByBudgetID(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.BudgetID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *BudgetUseCase) createServiceOrder(ctx context.Context, b entities.Budget) (entities.ServiceOrder, error) {
	now := time.Now().UTC()
	o := entities.ServiceOrder{
		OrderID:                newWorkflowID(orderIDPrefix, now),
		BudgetID:               b.BudgetID,
		CustomerID:             b.CustomerID,
		Status:                 entities.ServiceOrderStatusPendingPayment,
		SyncedWithOrderService: false,
		CreatedAt:              now,
		UpdatedAt:              now,
		Version:                1,
	}

	created, err := u.orderRepo.Create(ctx, o)
	if err != nil {
		log.Printf("[budget][usecase] service order create failed budget_id=%s err=%v", b.BudgetID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[budget][usecase] service order created order_id=%s budget_id=%s", created.OrderID, b.BudgetID)
	return created, nil
}

func (u *BudgetUseCase) publish(ctx context.Context, topic string, event any) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, topic, event); err != nil {
		log.Printf("[budget][usecase] publish %s failed err=%v", topic, err)
	}
}
