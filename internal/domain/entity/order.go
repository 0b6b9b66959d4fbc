package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid indica si el estado pertenece al conjunto cerrado.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa un pedido de un cliente con sus líneas.
type Order struct {
	ID          int64
	CustomerID  int64
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal
	CreatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Items       []OrderItem
}

// OrderItem línea de un pedido.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Subtotal cantidad * precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
