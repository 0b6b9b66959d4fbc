package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido en la creación.
type OrderItemRequest struct {
	ProductID int64            `json:"product_id" validate:"required"`
	Quantity  *decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"required"`
}

// CreateOrderRequest pedido con sus líneas; se crean en una sola transacción.
// Si total_amount no viene se calcula como Σ quantity * unit_price.
type CreateOrderRequest struct {
	CustomerID  int64              `json:"customer_id" validate:"required"`
	OrderDate   time.Time          `json:"order_date" validate:"required"`
	OrderStatus string             `json:"order_status" validate:"omitempty,oneof=pending delivered cancelled"`
	TotalAmount *decimal.Decimal   `json:"total_amount"`
	CreatedBy   *int64             `json:"created_by"`
	Items       []OrderItemRequest `json:"order_items" validate:"dive"`
}

// UpdateOrderRequest actualización parcial de la cabecera del pedido.
type UpdateOrderRequest struct {
	CustomerID  *int64           `json:"customer_id"`
	OrderDate   *time.Time       `json:"order_date"`
	OrderStatus *string          `json:"order_status" validate:"omitempty,oneof=pending delivered cancelled"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	CreatedBy   *int64           `json:"created_by"`
}

// OrderItemResponse salida de una línea de pedido.
type OrderItemResponse struct {
	ID        int64           `json:"order_item_id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de un pedido con sus líneas.
type OrderResponse struct {
	ID          int64               `json:"order_id"`
	CustomerID  int64               `json:"customer_id"`
	OrderDate   time.Time           `json:"order_date"`
	OrderStatus string              `json:"order_status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	CreatedBy   *int64              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at"`
	Items       []OrderItemResponse `json:"order_items"`
}

// ProcurementItemRequest línea de compra en la creación.
type ProcurementItemRequest struct {
	ProductID int64            `json:"product_id" validate:"required"`
	Quantity  *decimal.Decimal `json:"quantity" validate:"required"`
	UnitCost  *decimal.Decimal `json:"unit_cost" validate:"required"`
}

// CreateProcurementRequest compra a proveedor con sus líneas.
// Si total_cost no viene se calcula como Σ quantity * unit_cost.
type CreateProcurementRequest struct {
	SupplierID      int64                    `json:"supplier_id" validate:"required"`
	ProcurementDate time.Time                `json:"procurement_date" validate:"required"`
	TotalCost       *decimal.Decimal         `json:"total_cost"`
	RecordedBy      *int64                   `json:"recorded_by"`
	Items           []ProcurementItemRequest `json:"procurement_items" validate:"dive"`
}

// UpdateProcurementRequest actualización parcial de la cabecera de la compra.
type UpdateProcurementRequest struct {
	SupplierID      *int64           `json:"supplier_id"`
	ProcurementDate *time.Time       `json:"procurement_date"`
	TotalCost       *decimal.Decimal `json:"total_cost"`
	RecordedBy      *int64           `json:"recorded_by"`
}

// ProcurementItemResponse salida de una línea de compra.
type ProcurementItemResponse struct {
	ID            int64           `json:"procurement_item_id"`
	ProcurementID int64           `json:"procurement_id"`
	ProductID     int64           `json:"product_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// ProcurementResponse salida de una compra con sus líneas.
type ProcurementResponse struct {
	ID              int64                     `json:"procurement_id"`
	SupplierID      int64                     `json:"supplier_id"`
	ProcurementDate time.Time                 `json:"procurement_date"`
	TotalCost       decimal.Decimal           `json:"total_cost"`
	RecordedBy      *int64                    `json:"recorded_by"`
	CreatedAt       time.Time                 `json:"created_at"`
	Items           []ProcurementItemResponse `json:"procurement_items"`
}
