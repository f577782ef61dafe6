package request

import (
	"strings"

	"oficina_xpto/internal/domain/entities"
)

// PaymentRequest registers a collection attempt against a budget. The order
// id is optional; it links the payment to the service order spawned at
// approval so completion can drive the order forward.
type PaymentRequest struct {
	BudgetID      string  `json:"budget_id" binding:"required"`
	OrderID       string  `json:"order_id"`
	CustomerID    string  `json:"customer_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

func (r PaymentRequest) ToEntity() entities.Payment {
	return entities.Payment{
		BudgetID:      strings.TrimSpace(r.BudgetID),
		OrderID:       strings.TrimSpace(r.OrderID),
		CustomerID:    strings.TrimSpace(r.CustomerID),
		Amount:        r.Amount,
		PaymentMethod: entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
	}
}

// ProcessPaymentRequest carries the gateway details merged into the payment
// when processing starts. All fields are optional.
type ProcessPaymentRequest struct {
	AuthorizationCode string `json:"authorization_code"`
	Installments      int    `json:"installments" binding:"gte=0"`
	CardLastDigits    string `json:"card_last_digits"`
}

func (r ProcessPaymentRequest) ToDetails() entities.PaymentDetails {
	return entities.PaymentDetails{
		AuthorizationCode: strings.TrimSpace(r.AuthorizationCode),
		Installments:      r.Installments,
		CardLastDigits:    strings.TrimSpace(r.CardLastDigits),
	}
}

// FailPaymentRequest carries the failure reason recorded on the payment.
type FailPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}
