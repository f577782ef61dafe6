package entities

import "time"

// BudgetStatus represents the lifecycle of a repair budget (orçamento).
//
// Domain notes:
//   - Reachable transitions: pending -> sent -> approved | rejected.
//   - Expired is a declared terminal state reserved for time-based expiry;
//     no transition in this service sets it.

type BudgetStatus string

const (
	BudgetStatusPending  BudgetStatus = "pending"
	BudgetStatusSent     BudgetStatus = "sent"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
	BudgetStatusExpired  BudgetStatus = "expired"
)

// IsValid reports whether s is one of the declared budget statuses.
func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusPending, BudgetStatusSent, BudgetStatusApproved, BudgetStatusRejected, BudgetStatusExpired:
		return true
	}
	return false
}

// VehicleInfo describes the customer's vehicle on a budget.
type VehicleInfo struct {
	LicensePlate string `json:"license_plate,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	Brand        string `json:"brand,omitempty"`
}

// BudgetItem is one quoted line of work or parts.
type BudgetItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Budget is the quote sent to a customer for approval.
//
// Storage model (DynamoDB):
//   - PK: budget_id
//   - GSI1 (customer_id-index): customer_id
//
// TotalAmount is caller-supplied and not recomputed here; Notes doubles as the
// rejection reason. Version is a monotonic counter checked on every replace so
// concurrent writers surface a conflict instead of silently losing an update.

type Budget struct {
	BudgetID       string       `json:"budget_id"`
	CustomerID     string       `json:"customer_id"`
	CustomerEmail  string       `json:"customer_email"`
	CustomerName   string       `json:"customer_name"`
	VehicleInfo    VehicleInfo  `json:"vehicle_info,omitempty"`
	Items          []BudgetItem `json:"items"`
	TotalAmount    float64      `json:"total_amount"`
	TaxAmount      float64      `json:"tax_amount,omitempty"`
	DiscountAmount float64      `json:"discount_amount,omitempty"`
	Status         BudgetStatus `json:"status"`
	SentAt         *time.Time   `json:"sent_at,omitempty"`
	ApprovedAt     *time.Time   `json:"approved_at,omitempty"`
	RejectedAt     *time.Time   `json:"rejected_at,omitempty"`
	ExpiresAt      time.Time    `json:"expires_at"`
	Notes          string       `json:"notes,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Version        int64        `json:"version"`
}
