package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Payment, error)
}
