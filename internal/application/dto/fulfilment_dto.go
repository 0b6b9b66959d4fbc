package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDeliveryRequest entrada para registrar una entrega.
type CreateDeliveryRequest struct {
	OrderID        int64     `json:"order_id" validate:"required"`
	DeliveryDate   time.Time `json:"delivery_date" validate:"required"`
	DeliveryStatus string    `json:"delivery_status" validate:"omitempty,oneof=pending in_transit delivered failed"`
	DeliveredBy    *int64    `json:"delivered_by"`
}

// UpdateDeliveryRequest actualización parcial de una entrega.
type UpdateDeliveryRequest struct {
	OrderID        *int64     `json:"order_id"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	DeliveryStatus *string    `json:"delivery_status" validate:"omitempty,oneof=pending in_transit delivered failed"`
	DeliveredBy    *int64     `json:"delivered_by"`
}

// DeliveryResponse salida de una entrega.
type DeliveryResponse struct {
	ID             int64     `json:"delivery_id"`
	OrderID        int64     `json:"order_id"`
	DeliveryDate   time.Time `json:"delivery_date"`
	DeliveryStatus string    `json:"delivery_status"`
	DeliveredBy    *int64    `json:"delivered_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreatePaymentRequest entrada para registrar un pago.
type CreatePaymentRequest struct {
	OrderID       int64            `json:"order_id" validate:"required"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,oneof=cash momo bank_transfer"`
	AmountPaid    *decimal.Decimal `json:"amount_paid" validate:"required"`
	PaymentDate   time.Time        `json:"payment_date" validate:"required"`
}

// UpdatePaymentRequest actualización parcial de un pago.
type UpdatePaymentRequest struct {
	OrderID       *int64           `json:"order_id"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,oneof=cash momo bank_transfer"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
	PaymentDate   *time.Time       `json:"payment_date"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID            int64           `json:"payment_id"`
	OrderID       int64           `json:"order_id"`
	PaymentMethod *string         `json:"payment_method"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentDate   time.Time       `json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
