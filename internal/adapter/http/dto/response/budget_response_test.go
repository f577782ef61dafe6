package response

import (
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	sent := now.Add(time.Minute)
	b := entities.Budget{
		BudgetID:      "BUDGET-1-abc",
		CustomerID:    "cust-1",
		CustomerEmail: "cust@test.com",
		CustomerName:  "Cliente Teste",
		VehicleInfo:   entities.VehicleInfo{LicensePlate: "ABC-1234", Brand: "VW"},
		Items: []entities.BudgetItem{
			{Description: "Troca de óleo", Quantity: 1, UnitPrice: 150, Total: 150},
		},
		TotalAmount: 150,
		Status:      entities.BudgetStatusSent,
		SentAt:      &sent,
		ExpiresAt:   now.Add(30 * 24 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := FromBudget(b)

	if resp.BudgetID != "BUDGET-1-abc" || resp.Status != "sent" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.SentAt == nil || !resp.SentAt.Equal(sent) {
		t.Fatalf("expected sent_at %s, got %v", sent, resp.SentAt)
	}
	if resp.ApprovedAt != nil || resp.RejectedAt != nil {
		t.Fatalf("expected unset transition timestamps")
	}
	if len(resp.Items) != 1 || resp.Items[0].Total != 150 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.ServiceOrder{
		OrderID:      "ORDER-1-abc",
		BudgetID:     "BUDGET-1-abc",
		CustomerID:   "cust-1",
		PaymentID:    "PAY-1-abc",
		Status:       entities.ServiceOrderStatusInProgress,
		SyncError:    "order service unreachable",
		SyncAttempts: 3,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	resp := FromServiceOrder(o)

	if resp.Status != "in_progress" || resp.SyncAttempts != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.SyncedWithOrderService || resp.LastSyncAt != nil {
		t.Fatalf("expected unsynced order, got %+v", resp)
	}
}
