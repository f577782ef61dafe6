package entities

import "time"

// PaymentStatus represents the payment collection lifecycle.
//
// Reachable transitions: pending -> processing -> completed | failed.
// Refunded and cancelled are declared for the data shape only; no transition
// in this service reaches them.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// PaymentMethod is the customer-chosen collection channel.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodBoleto       PaymentMethod = "boleto"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodBoleto, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// PaymentDetails carries transaction metadata merged in during processing.
type PaymentDetails struct {
	TransactionID     string `json:"transaction_id,omitempty"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
	Installments      int    `json:"installments,omitempty"`
	CardLastDigits    string `json:"card_last_digits,omitempty"`
}

// Payment is a collection attempt against a budget.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//   - GSI1 (budget_id-index): budget_id
//
// OrderID is optional; when present, completing the payment also moves the
// linked service order forward. Refund fields are bookkeeping only.

type Payment struct {
	PaymentID      string         `json:"payment_id"`
	BudgetID       string         `json:"budget_id"`
	OrderID        string         `json:"order_id,omitempty"`
	CustomerID     string         `json:"customer_id"`
	Amount         float64        `json:"amount"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	Status         PaymentStatus  `json:"status"`
	PaymentDetails PaymentDetails `json:"payment_details,omitempty"`
	ProcessedAt    *time.Time     `json:"processed_at,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	FailureReason  string         `json:"failure_reason,omitempty"`
	RefundedAmount float64        `json:"refunded_amount,omitempty"`
	RefundedAt     *time.Time     `json:"refunded_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Version        int64          `json:"version"`
}
