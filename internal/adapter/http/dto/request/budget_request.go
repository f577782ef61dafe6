package request

import (
	"strings"

	"oficina_xpto/internal/domain/entities"
)

type VehicleInfoRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Brand        string `json:"brand"`
}

type BudgetItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

// BudgetRequest is the issuance payload. Line totals are derived from
// quantity and unit price; the grand total comes from the caller and is
// stored verbatim, never recomputed here.
type BudgetRequest struct {
	CustomerID     string              `json:"customer_id" binding:"required"`
	CustomerEmail  string              `json:"customer_email" binding:"required,email"`
	CustomerName   string              `json:"customer_name" binding:"required"`
	VehicleInfo    VehicleInfoRequest  `json:"vehicle_info" binding:"required"`
	Items          []BudgetItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount    float64             `json:"total_amount" binding:"required,gt=0"`
	TaxAmount      float64             `json:"tax_amount" binding:"gte=0"`
	DiscountAmount float64             `json:"discount_amount" binding:"gte=0"`
	Notes          string              `json:"notes"`
}

// ToEntity builds the domain budget, computing each item total and carrying
// the caller-supplied grand total through unchanged.
func (r BudgetRequest) ToEntity() entities.Budget {
	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.BudgetItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.UnitPrice * float64(it.Quantity),
		})
	}

	return entities.Budget{
		CustomerID:    strings.TrimSpace(r.CustomerID),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		VehicleInfo: entities.VehicleInfo{
			LicensePlate: strings.TrimSpace(r.VehicleInfo.LicensePlate),
			Model:        strings.TrimSpace(r.VehicleInfo.Model),
			Year:         r.VehicleInfo.Year,
			Brand:        strings.TrimSpace(r.VehicleInfo.Brand),
		},
		Items:          items,
		TotalAmount:    r.TotalAmount,
		TaxAmount:      r.TaxAmount,
		DiscountAmount: r.DiscountAmount,
		Notes:          strings.TrimSpace(r.Notes),
	}
}

// RejectBudgetRequest carries the optional rejection reason.
type RejectBudgetRequest struct {
	Reason string `json:"reason"`
}
