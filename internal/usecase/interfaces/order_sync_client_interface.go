package interfaces

import (
	"context"
	"encoding/json"
)

// IOrderSyncClient pushes a service order's local status to the external
// order-management service. The call is bounded by a 5 second timeout; a
// failure reason is returned as the error text and stored verbatim on the
// order's sync state.

type IOrderSyncClient interface {
	UpdateOrderStatus(ctx context.Context, orderID, status, paymentID string) (json.RawMessage, error)
}
