package entities

import "time"

// ServiceOrderStatus represents the fulfillment lifecycle.
//
// Reachable transitions: pending_payment -> in_progress. Completed and
// cancelled are declared but never set by this service.

type ServiceOrderStatus string

const (
	ServiceOrderStatusPendingPayment ServiceOrderStatus = "pending_payment"
	ServiceOrderStatusInProgress     ServiceOrderStatus = "in_progress"
	ServiceOrderStatusCompleted      ServiceOrderStatus = "completed"
	ServiceOrderStatusCancelled      ServiceOrderStatus = "cancelled"
)

// ServiceOrder is the unit of fulfillment created when a budget is approved.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - GSI1 (budget_id-index): budget_id
//
// Sync fields track convergence with the external order service. A successful
// sync clears SyncError but never resets SyncAttempts; the reconciliation
// sweep skips orders once SyncAttempts reaches the retry cap.

type ServiceOrder struct {
	OrderID                string             `json:"order_id"`
	BudgetID               string             `json:"budget_id"`
	CustomerID             string             `json:"customer_id"`
	PaymentID              string             `json:"payment_id,omitempty"`
	Status                 ServiceOrderStatus `json:"status"`
	SyncedWithOrderService bool               `json:"synced_with_order_service"`
	LastSyncAt             *time.Time         `json:"last_sync_at,omitempty"`
	SyncError              string             `json:"sync_error,omitempty"`
	SyncAttempts           int                `json:"sync_attempts"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
	Version                int64              `json:"version"`
}
