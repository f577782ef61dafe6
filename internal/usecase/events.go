package usecase

import "time"

// Routing keys on the payment-events topic exchange.
const (
	TopicBudgetCreated    = "budget.created"
	TopicPaymentCompleted = "payment.completed"
	TopicPaymentFailed    = "payment.failed"
)

// BudgetCreatedEvent is published when a budget is sent for approval.
type BudgetCreatedEvent struct {
	BudgetID    string    `json:"budget_id"`
	CustomerID  string    `json:"customer_id"`
	TotalAmount float64   `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// PaymentCompletedEvent is published once a payment reaches completed.
type PaymentCompletedEvent struct {
	PaymentID  string    `json:"payment_id"`
	BudgetID   string    `json:"budget_id"`
	CustomerID string    `json:"customer_id"`
	Amount     float64   `json:"amount"`
	OrderID    string    `json:"order_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// PaymentFailedEvent is published when a payment is marked failed.
type PaymentFailedEvent struct {
	PaymentID  string    `json:"payment_id"`
	BudgetID   string    `json:"budget_id"`
	CustomerID string    `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
}
