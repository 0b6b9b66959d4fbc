package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// QuantityPlaces decimales de las cantidades del libro (NUMERIC(10,2)).
const QuantityPlaces = 2

// Totals suma de cantidades por tipo de movimiento. Una clave ausente vale cero.
type Totals map[entity.MovementType]decimal.Decimal

// Get devuelve el total del tipo, cero si no hay movimientos de ese tipo.
func (t Totals) Get(mt entity.MovementType) decimal.Decimal {
	if v, ok := t[mt]; ok {
		return v
	}
	return decimal.Zero
}

// Accumulate suma las cantidades de los movimientos por tipo.
func Accumulate(movements []entity.InventoryMovement) Totals {
	totals := make(Totals, len(entity.MovementTypes))
	for _, m := range movements {
		totals[m.Type] = totals.Get(m.Type).Add(m.Quantity)
	}
	return totals
}

// ComputeStock aplica la fórmula de stock (servicio de dominio):
//
//	StockIn  = Σ IN
//	StockOut = Σ OUT + Σ SPOILAGE
//	Current  = StockIn - StockOut
//
// ADJUSTMENT no entra en ninguno de los dos lados: la cantidad es una magnitud sin
// signo y no se puede saber si el ajuste suma o resta. Se informa en Adjustments.
func ComputeStock(productID int64, totals Totals) entity.StockLevel {
	in := totals.Get(entity.MovementTypeIN)
	out := totals.Get(entity.MovementTypeOUT).Add(totals.Get(entity.MovementTypeSPOILAGE))
	return entity.StockLevel{
		ProductID:    productID,
		StockIn:      in.Round(QuantityPlaces),
		StockOut:     out.Round(QuantityPlaces),
		CurrentStock: in.Sub(out).Round(QuantityPlaces),
		Adjustments:  totals.Get(entity.MovementTypeADJUSTMENT).Round(QuantityPlaces),
	}
}

// Delta efecto con signo de un movimiento sobre el stock actual.
func Delta(m entity.InventoryMovement) decimal.Decimal {
	switch m.Type {
	case entity.MovementTypeIN:
		return m.Quantity
	case entity.MovementTypeOUT, entity.MovementTypeSPOILAGE:
		return m.Quantity.Neg()
	}
	return decimal.Zero
}

// BalanceLine movimiento con el saldo acumulado tras aplicarlo (kardex).
type BalanceLine struct {
	Movement entity.InventoryMovement
	Delta    decimal.Decimal
	Balance  decimal.Decimal
}

// RunningBalance calcula el saldo acumulado en el orden recibido.
// El último saldo coincide con ComputeStock(...).CurrentStock para los mismos movimientos.
func RunningBalance(movements []entity.InventoryMovement) []BalanceLine {
	lines := make([]BalanceLine, 0, len(movements))
	balance := decimal.Zero
	for _, m := range movements {
		d := Delta(m)
		balance = balance.Add(d)
		lines = append(lines, BalanceLine{
			Movement: m,
			Delta:    d,
			Balance:  balance.Round(QuantityPlaces),
		})
	}
	return lines
}
