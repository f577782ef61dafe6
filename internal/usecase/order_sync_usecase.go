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
	ErrServiceOrderNotFound = errors.New("service order not found")
	ErrInvalidOrderID       = errors.New("invalid order_id")
)

// Orders are retried until this many sync attempts have been spent; after
// that the sweep leaves them alone.
const maxSyncAttempts = 5

// IOrderSyncUseCase exposes service-order reads and the reconciliation sweep
// that converges local sync state with the external order service.

type IOrderSyncUseCase interface {
	GetByOrderID(ctx context.Context, orderID string) (entities.ServiceOrder, error)
	RetryFailedSyncs(ctx context.Context) error
}

type OrderSyncUseCase struct {
	repo       interfaces.IServiceOrderRepository
	syncClient interfaces.IOrderSyncClient
}

var _ IOrderSyncUseCase = (*OrderSyncUseCase)(nil)

func NewOrderSyncUseCase(repo interfaces.IServiceOrderRepository, syncClient interfaces.IOrderSyncClient) *OrderSyncUseCase {
	return &OrderSyncUseCase{repo: repo, syncClient: syncClient}
}

func (u *OrderSyncUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.ServiceOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.OrderID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

// RetryFailedSyncs replays the remote sync for every order that has not
// converged and still has retry budget. Each order is handled independently:
// one order's failure never aborts the rest of the sweep. Only the selection
// query itself can make the sweep return an error, and the periodic scheduler
// just logs that and waits for the next tick.
func (u *OrderSyncUseCase) RetryFailedSyncs(ctx context.Context) error {
	orders, err := u.repo.ListPendingSync(ctx, maxSyncAttempts)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}
	log.Printf("[ordersync][usecase] sweep start pending=%d", len(orders))

	for _, o := range orders {
		u.retryOne(ctx, o)
	}
	return nil
}

func (u *OrderSyncUseCase) retryOne(ctx context.Context, o entities.ServiceOrder) {
	now := time.Now().UTC()

	// The order may have no payment attached yet; the remote call is made
	// with an empty payment id in that case, matching the order's current
	// stored state.
	_, err := u.syncClient.UpdateOrderStatus(ctx, o.OrderID, string(o.Status), o.PaymentID)
	if err != nil {
		o.SyncAttempts++
		o.SyncError = err.Error()
		o.UpdatedAt = now
		if _, uerr := u.repo.Update(ctx, o); uerr != nil {
			log.Printf("[ordersync][usecase] retry bookkeeping failed order_id=%s err=%v", o.OrderID, uerr)
			return
		}
		log.Printf("[ordersync][usecase] retry failed order_id=%s attempt=%d err=%v", o.OrderID, o.SyncAttempts, err)
		return
	}

	// A successful retry clears the error but keeps the attempt counter; it
	// records how much work convergence cost.
	o.SyncedWithOrderService = true
	o.LastSyncAt = &now
	o.SyncError = ""
	o.UpdatedAt = now
	if _, uerr := u.repo.Update(ctx, o); uerr != nil {
		log.Printf("[ordersync][usecase] retry bookkeeping failed order_id=%s err=%v", o.OrderID, uerr)
		return
	}
	log.Printf("[ordersync][usecase] retry succeeded order_id=%s", o.OrderID)
}
