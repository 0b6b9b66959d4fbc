// Package xlsx exporta el resumen de stock a Excel con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	appinventory "github.com/jhoicas/terrafoods-ems/internal/application/inventory"
)

var _ appinventory.StockSheetWriter = (*StockSheetWriter)(nil)

const sheetName = "Stock"

var header = []any{
	"product_id",
	"product_name",
	"unit_of_measure",
	"stock_in",
	"stock_out",
	"current_stock",
	"adjustments",
}

// StockSheetWriter implementa appinventory.StockSheetWriter.
type StockSheetWriter struct{}

func NewStockSheetWriter() *StockSheetWriter { return &StockSheetWriter{} }

// StockSheet una fila por producto; las cantidades se escriben como número.
func (w *StockSheetWriter) StockSheet(_ context.Context, rows []appinventory.StockRow, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Terra Foods - stock",
		Creator: "terrafoods-ems",
		Created: generatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("xlsx: propiedades: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	for i, r := range rows {
		unit := ""
		if r.Product.UnitOfMeasure != nil {
			unit = *r.Product.UnitOfMeasure
		}
		line := []any{
			r.Product.ID,
			r.Product.Name,
			unit,
			r.Level.StockIn.InexactFloat64(),
			r.Level.StockOut.InexactFloat64(),
			r.Level.CurrentStock.InexactFloat64(),
			r.Level.Adjustments.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &line); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
