package models

import (
	"time"

	"github.com/google/uuid"
)

// Order status constants. SETTLED is terminal and reachable only from
// AUTHORIZED; DECLINED and ERROR are dead-ends.
const (
	OrderStatusAuthorized = "AUTHORIZED"
	OrderStatusDeclined   = "DECLINED"
	OrderStatusError      = "ERROR"
	OrderStatusSettled    = "SETTLED"
)

// SettlementStatusSettled is the only settlement status this flow produces.
const SettlementStatusSettled = "SETTLED"

// DefaultLast4 is recorded when the caller omits the card's last four digits.
const DefaultLast4 = "0000"

// Customer is immutable once created; deletion is permanently disallowed.
type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"customer_id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Order uses the caller-supplied order_id as its natural primary key.
// Checkout upserts on it: posting the same order_id twice replaces the row.
type Order struct {
	OrderID    string    `gorm:"type:varchar(128);primaryKey" json:"order_id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Amount     float64   `gorm:"column:order_amount;not null" json:"order_amount"`
	Status     string    `gorm:"type:varchar(20);not null" json:"status"`
	OrderDate  time.Time `gorm:"not null;index" json:"order_date"`
}

// Authorization is an append-only gateway decision record tied to an order.
// Rows are never mutated or deleted.
type Authorization struct {
	AuthID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"auth_id"`
	OrderID    string    `gorm:"type:varchar(128);not null;index" json:"order_id"`
	ResponseID string    `gorm:"type:varchar(32);not null" json:"response_id"`
	AuthAmount float64   `gorm:"not null" json:"auth_amount"`
	Last4      string    `gorm:"type:varchar(4);not null" json:"last_4"`
	AuditDate  time.Time `gorm:"not null;index" json:"audit_date"`
}

// Settlement is an append-only capture record. AuthID references the latest
// authorization at the time of settlement and is null when none existed.
type Settlement struct {
	SettlementID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"settlement_id"`
	OrderID          string     `gorm:"type:varchar(128);not null;index" json:"order_id"`
	AuthID           *uuid.UUID `gorm:"type:uuid" json:"auth_id"`
	SettledAmount    float64    `gorm:"not null" json:"settled_amount"`
	SettlementStatus string     `gorm:"type:varchar(20);not null" json:"settlement_status"`
	SettlementDate   time.Time  `gorm:"not null;index" json:"settlement_date"`
}

// CreateCustomerRequest is the payload for POST /customers.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// CheckoutRequest is the payload for POST /orders/checkout. All three required
// fields must be present and non-zero; the amount is not otherwise validated.
type CheckoutRequest struct {
	OrderID    string  `json:"order_id" binding:"required"`
	CustomerID uint    `json:"customer_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Last4      string  `json:"last_4"`
}

// CheckoutResponse reports the simulated gateway decision for an order.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
	Result  string `json:"result"`
	Status  string `json:"status"`
}

// SettleRequest is the payload for POST /payments/settle.
type SettleRequest struct {
	OrderID string  `json:"order_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
}

// SettleResponse confirms the capture of a previously authorized order.
type SettleResponse struct {
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
}

// OrderDetail is an order joined with its most recent ledger entries. Both
// ledger fields are null when no matching rows exist yet.
type OrderDetail struct {
	Order             Order          `json:"order"`
	LastAuthorization *Authorization `json:"last_authorization"`
	LastSettlement    *Settlement    `json:"last_settlement"`
}

// Stats is the read-only rollup across orders and settlements. Totals always
// carry an ALL key; an empty store yields zero counts, a zero sum and an
// empty recent list.
type Stats struct {
	Totals       map[string]int64 `json:"totals"`
	SettledTotal float64          `json:"settled_total"`
	RecentOrders []Order          `json:"recent_orders"`
}
