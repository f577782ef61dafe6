package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// INotifier sends customer-facing mail for budget and payment milestones.
//
// Callers decide whether a delivery failure aborts the transition: the
// budget-send path propagates it, the payment completion/failure paths
// swallow it.

type INotifier interface {
	SendBudget(ctx context.Context, b entities.Budget) error
	SendPaymentConfirmation(ctx context.Context, p entities.Payment, b entities.Budget) error
	SendPaymentFailure(ctx context.Context, p entities.Payment, b entities.Budget, reason string) error
}
