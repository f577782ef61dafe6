package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type VehicleInfoResponse struct {
	LicensePlate string `json:"license_plate"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	Brand        string `json:"brand,omitempty"`
}

type BudgetItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type BudgetResponse struct {
	BudgetID       string               `json:"budget_id"`
	CustomerID     string               `json:"customer_id"`
	CustomerEmail  string               `json:"customer_email"`
	CustomerName   string               `json:"customer_name"`
	VehicleInfo    VehicleInfoResponse  `json:"vehicle_info"`
	Items          []BudgetItemResponse `json:"items"`
	TotalAmount    float64              `json:"total_amount"`
	TaxAmount      float64              `json:"tax_amount"`
	DiscountAmount float64              `json:"discount_amount"`
	Status         string               `json:"status"`
	SentAt         *time.Time           `json:"sent_at,omitempty"`
	ApprovedAt     *time.Time           `json:"approved_at,omitempty"`
	RejectedAt     *time.Time           `json:"rejected_at,omitempty"`
	ExpiresAt      time.Time            `json:"expires_at"`
	Notes          string               `json:"notes,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		CustomerID:    b.CustomerID,
		CustomerEmail: b.CustomerEmail,
		CustomerName:  b.CustomerName,
		VehicleInfo: VehicleInfoResponse{
			LicensePlate: b.VehicleInfo.LicensePlate,
			Model:        b.VehicleInfo.Model,
			Year:         b.VehicleInfo.Year,
			Brand:        b.VehicleInfo.Brand,
		},
		Items:          items,
		TotalAmount:    b.TotalAmount,
		TaxAmount:      b.TaxAmount,
		DiscountAmount: b.DiscountAmount,
		Status:         string(b.Status),
		SentAt:         b.SentAt,
		ApprovedAt:     b.ApprovedAt,
		RejectedAt:     b.RejectedAt,
		ExpiresAt:      b.ExpiresAt,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}

// ApprovalResponse reports whether the approval created a new service order
// or replayed an earlier one. Exactly one of service_order and
// existing_order_id is populated for a resolvable order.
type ApprovalResponse struct {
	Budget          BudgetResponse        `json:"budget"`
	ServiceOrder    *ServiceOrderResponse `json:"service_order,omitempty"`
	AlreadyApproved bool                  `json:"already_approved"`
	ExistingOrderID string                `json:"existing_order_id,omitempty"`
}
