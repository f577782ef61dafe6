package ordersync

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"oficina_xpto/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

// Client pushes service-order status changes to the external order-management
// service. Every request is authenticated with the shared API key and bounded
// by the configured timeout.

type Client struct {
	http *resty.Client
}

var _ interfaces.IOrderSyncClient = (*Client)(nil)

type updateOrderStatusRequest struct {
	Status    string `json:"status"`
	PaymentID string `json:"paymentId"`
	UpdatedBy string `json:"updatedBy"`
	Timestamp string `json:"timestamp"`
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-API-Key", apiKey)
	return &Client{http: http}
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status, paymentID string) (json.RawMessage, error) {
	log.Printf("[ordersync][client] updating order %s to status %s", orderID, status)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(updateOrderStatusRequest{
			Status:    status,
			PaymentID: paymentID,
			UpdatedBy: "payment-service",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}).
		Put(fmt.Sprintf("/orders/%s/status", orderID))
	if err != nil {
		return nil, fmt.Errorf("failed to sync order %s: %w", orderID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to sync order %s: order service returned %d", orderID, resp.StatusCode())
	}

	log.Printf("[ordersync][client] order %s updated successfully", orderID)
	return json.RawMessage(resp.Body()), nil
}
