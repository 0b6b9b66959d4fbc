package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod medio de pago.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodMomo         PaymentMethod = "momo"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// Valid indica si el medio pertenece al conjunto cerrado.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodMomo, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// Payment pago aplicado a un pedido.
type Payment struct {
	ID          int64
	OrderID     int64
	Method      *PaymentMethod
	AmountPaid  decimal.Decimal
	PaymentDate time.Time
	CreatedAt   time.Time
}
