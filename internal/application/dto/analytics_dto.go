package dto

import "github.com/shopspring/decimal"

// MovementTotalsDTO cantidades del período por tipo de movimiento.
type MovementTotalsDTO struct {
	StockIn     decimal.Decimal `json:"stock_in"`
	StockOut    decimal.Decimal `json:"stock_out"`
	Spoilage    decimal.Decimal `json:"spoilage"`
	Adjustments decimal.Decimal `json:"adjustments"`
}

// TopProductDTO producto del ranking de mermas.
type TopProductDTO struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// InventoryDashboardDTO resumen de movimientos del día y del mes en curso.
// spoilage_rate = mermas del mes / entradas del mes × 100 (0 si no hubo entradas).
type InventoryDashboardDTO struct {
	Today        MovementTotalsDTO `json:"today"`
	Month        MovementTotalsDTO `json:"month"`
	SpoilageRate decimal.Decimal   `json:"spoilage_rate"`
	TopSpoiled   []TopProductDTO   `json:"top_spoiled"`
	DateLabel    string            `json:"date_label"`
}
