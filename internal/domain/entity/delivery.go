package entity

import "time"

// DeliveryStatus estado de una entrega.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Valid indica si el estado pertenece al conjunto cerrado.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusFailed:
		return true
	}
	return false
}

// Delivery entrega de un pedido.
type Delivery struct {
	ID           int64
	OrderID      int64
	DeliveryDate time.Time
	Status       DeliveryStatus
	DeliveredBy  *int64
	CreatedAt    time.Time
}
