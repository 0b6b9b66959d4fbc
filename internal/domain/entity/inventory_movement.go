package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de inventario (conjunto cerrado).
type MovementType string

const (
	MovementTypeIN         MovementType = "IN"         // entrada
	MovementTypeOUT        MovementType = "OUT"        // salida
	MovementTypeSPOILAGE   MovementType = "SPOILAGE"   // merma por deterioro
	MovementTypeADJUSTMENT MovementType = "ADJUSTMENT" // ajuste
)

// MovementTypes lista los tipos válidos en orden estable.
var MovementTypes = []MovementType{
	MovementTypeIN,
	MovementTypeOUT,
	MovementTypeSPOILAGE,
	MovementTypeADJUSTMENT,
}

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t MovementType) Valid() bool {
	for _, v := range MovementTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ReferenceKind discrimina a qué documento apunta un movimiento.
type ReferenceKind string

const (
	ReferenceNone        ReferenceKind = ""
	ReferenceOrder       ReferenceKind = "ORDER"
	ReferenceProcurement ReferenceKind = "PROCUREMENT"
)

// MovementReference variante etiquetada: ninguno, pedido(id) o compra(id).
type MovementReference struct {
	Kind ReferenceKind
	ID   int64
}

// OrderRef referencia a un pedido.
func OrderRef(id int64) MovementReference {
	return MovementReference{Kind: ReferenceOrder, ID: id}
}

// ProcurementRef referencia a una compra.
func ProcurementRef(id int64) MovementReference {
	return MovementReference{Kind: ReferenceProcurement, ID: id}
}

// IsNone indica que el movimiento no tiene documento origen.
func (r MovementReference) IsNone() bool { return r.Kind == ReferenceNone }

// OrderID devuelve el id del pedido si la referencia es a un pedido.
func (r MovementReference) OrderID() *int64 {
	if r.Kind != ReferenceOrder {
		return nil
	}
	id := r.ID
	return &id
}

// ProcurementID devuelve el id de la compra si la referencia es a una compra.
func (r MovementReference) ProcurementID() *int64 {
	if r.Kind != ReferenceProcurement {
		return nil
	}
	id := r.ID
	return &id
}

// ReferenceFromColumns reconstruye la variante desde las columnas order_id / procurement_id.
func ReferenceFromColumns(orderID, procurementID *int64) MovementReference {
	switch {
	case orderID != nil:
		return OrderRef(*orderID)
	case procurementID != nil:
		return ProcurementRef(*procurementID)
	}
	return MovementReference{}
}

// InventoryMovement entrada inmutable del libro de movimientos.
// Quantity es siempre una magnitud no negativa; el signo lo da Type.
type InventoryMovement struct {
	ID           int64
	ProductID    int64
	Type         MovementType
	Quantity     decimal.Decimal
	Reference    MovementReference
	MovementDate time.Time // fecha efectiva de negocio
	RecordedBy   *int64
	CreatedAt    time.Time // fecha de registro
}
