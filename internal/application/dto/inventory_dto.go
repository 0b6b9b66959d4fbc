package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para registrar un movimiento en el libro.
// reference_type + reference_id identifican el documento origen (pedido o compra); ambos opcionales.
type CreateMovementRequest struct {
	ProductID     int64            `json:"product_id" validate:"required"`
	MovementType  string           `json:"movement_type" validate:"required,oneof=IN OUT SPOILAGE ADJUSTMENT"`
	Quantity      *decimal.Decimal `json:"quantity" validate:"required"`
	// ReferenceType y ReferenceID van juntos o ninguno.
	ReferenceType *string          `json:"reference_type" validate:"omitempty,oneof=ORDER PROCUREMENT"`
	ReferenceID   *int64           `json:"reference_id"`
	MovementDate  time.Time        `json:"movement_date" validate:"required"`
	RecordedBy    *int64           `json:"recorded_by"`
}

// MovementFilter filtros opcionales de GET /inventory/movements.
type MovementFilter struct {
	ProductID     *int64
	OrderID       *int64
	ProcurementID *int64
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            int64           `json:"movement_id"`
	ProductID     int64           `json:"product_id"`
	MovementType  string          `json:"movement_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType *string         `json:"reference_type"`
	ReferenceID   *int64          `json:"reference_id"`
	MovementDate  time.Time       `json:"movement_date"`
	RecordedBy    *int64          `json:"recorded_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// StockResponse stock derivado del libro para un producto.
// adjustments se informa aparte: los ajustes no entran en current_stock.
type StockResponse struct {
	ProductID    int64           `json:"product_id"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	StockIn      decimal.Decimal `json:"stock_in"`
	StockOut     decimal.Decimal `json:"stock_out"`
	Adjustments  decimal.Decimal `json:"adjustments"`
}

// StockSummaryResponse fila del resumen de stock de todos los productos.
type StockSummaryResponse struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitOfMeasure *string         `json:"unit_of_measure"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	StockIn       decimal.Decimal `json:"stock_in"`
	StockOut      decimal.Decimal `json:"stock_out"`
	Adjustments   decimal.Decimal `json:"adjustments"`
}
