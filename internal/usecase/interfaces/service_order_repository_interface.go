package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// ListPendingSync returns every order still waiting to converge with the
// external order service: synced_with_order_service = false and
// sync_attempts < maxAttempts.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.ServiceOrder, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	ListPendingSync(ctx context.Context, maxAttempts int) ([]entities.ServiceOrder, error)
}
