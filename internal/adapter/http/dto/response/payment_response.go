package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type PaymentDetailsResponse struct {
	TransactionID     string `json:"transaction_id,omitempty"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
	Installments      int    `json:"installments,omitempty"`
	CardLastDigits    string `json:"card_last_digits,omitempty"`
}

type PaymentResponse struct {
	PaymentID      string                 `json:"payment_id"`
	BudgetID       string                 `json:"budget_id"`
	OrderID        string                 `json:"order_id,omitempty"`
	CustomerID     string                 `json:"customer_id"`
	Amount         float64                `json:"amount"`
	PaymentMethod  string                 `json:"payment_method"`
	Status         string                 `json:"status"`
	PaymentDetails PaymentDetailsResponse `json:"payment_details"`
	ProcessedAt    *time.Time             `json:"processed_at,omitempty"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	FailureReason  string                 `json:"failure_reason,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		BudgetID:      p.BudgetID,
		OrderID:       p.OrderID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		PaymentDetails: PaymentDetailsResponse{
			TransactionID:     p.PaymentDetails.TransactionID,
			AuthorizationCode: p.PaymentDetails.AuthorizationCode,
			Installments:      p.PaymentDetails.Installments,
			CardLastDigits:    p.PaymentDetails.CardLastDigits,
		},
		ProcessedAt:   p.ProcessedAt,
		CompletedAt:   p.CompletedAt,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
