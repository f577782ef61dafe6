package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ServiceOrderResponse struct {
	OrderID                string     `json:"order_id"`
	BudgetID               string     `json:"budget_id"`
	CustomerID             string     `json:"customer_id"`
	PaymentID              string     `json:"payment_id,omitempty"`
	Status                 string     `json:"status"`
	SyncedWithOrderService bool       `json:"synced_with_order_service"`
	LastSyncAt             *time.Time `json:"last_sync_at,omitempty"`
	SyncError              string     `json:"sync_error,omitempty"`
	SyncAttempts           int        `json:"sync_attempts"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		OrderID:                o.OrderID,
		BudgetID:               o.BudgetID,
		CustomerID:             o.CustomerID,
		PaymentID:              o.PaymentID,
		Status:                 string(o.Status),
		SyncedWithOrderService: o.SyncedWithOrderService,
		LastSyncAt:             o.LastSyncAt,
		SyncError:              o.SyncError,
		SyncAttempts:           o.SyncAttempts,
		CreatedAt:              o.CreatedAt,
		UpdatedAt:              o.UpdatedAt,
	}
}
