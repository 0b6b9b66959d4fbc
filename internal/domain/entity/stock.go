package entity

import "github.com/shopspring/decimal"

// StockLevel stock derivado de un producto a partir del libro de movimientos.
// Adjustments se informa por separado: no participa en CurrentStock.
type StockLevel struct {
	ProductID    int64
	StockIn      decimal.Decimal
	StockOut     decimal.Decimal
	CurrentStock decimal.Decimal
	Adjustments  decimal.Decimal
}
