package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Procurement representa una compra a un proveedor con sus líneas.
type Procurement struct {
	ID              int64
	SupplierID      int64
	ProcurementDate time.Time
	TotalCost       decimal.Decimal
	RecordedBy      *int64
	CreatedAt       time.Time
	Items           []ProcurementItem
}

// ProcurementItem línea de una compra.
type ProcurementItem struct {
	ID            int64
	ProcurementID int64
	ProductID     int64
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
}

// Subtotal cantidad * costo unitario.
func (i ProcurementItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitCost)
}
