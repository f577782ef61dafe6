package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Get returns a zero-value Budget (empty BudgetID) when the document is
// absent. Update is a version-checked full replace; there are no partial
// updates and no deletes.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByBudgetID(ctx context.Context, budgetID string) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Budget, error)
}
