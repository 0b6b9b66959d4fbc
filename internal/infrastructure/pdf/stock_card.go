// Package pdf genera el kardex (tarjeta de stock) de un producto con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Terra Foods + producto  │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Referencia | Entrada | Salida | Saldo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Entradas / Salidas / Stock actual / Ajustes        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appinventory "github.com/jhoicas/terrafoods-ems/internal/application/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
)

var _ appinventory.StockCardRenderer = (*StockCardGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockCardGenerator implementa appinventory.StockCardRenderer usando Maroto v2.
type StockCardGenerator struct{}

// NewStockCardGenerator construye el generador.
func NewStockCardGenerator() *StockCardGenerator { return &StockCardGenerator{} }

// StockCardPDF genera el PDF y devuelve sus bytes.
func (g *StockCardGenerator) StockCardPDF(_ context.Context, card appinventory.StockCard) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex - "+card.Product.Name, true).
		WithAuthor("Terra Foods", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(card.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableDetailRows(card.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(card.Level))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + producto (izq) y fecha de generación (der).
func headerRow(card appinventory.StockCard) core.Row {
	unit := "-"
	if card.Product.UnitOfMeasure != nil {
		unit = *card.Product.UnitOfMeasure
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New("TERRA FOODS - KARDEX", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Producto #%d: %s   |   Unidad: %s", card.Product.ID, card.Product.Name, unit), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(card.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo del color primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Referencia", 2, align.Left),
		h("Entrada", 2, align.Right),
		h("Salida", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

// tableDetailRows: una fila por movimiento. Los ajustes no mueven el saldo.
func tableDetailRows(lines []inventory.BalanceLine) []core.Row {
	cell := func(s string, a align.Type) core.Col {
		return col.New(2).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		in, out := "", ""
		switch {
		case l.Delta.IsPositive():
			in = formatQuantity(l.Delta)
		case l.Delta.IsNegative():
			out = formatQuantity(l.Delta.Neg())
		case l.Movement.Type == entity.MovementTypeADJUSTMENT:
			in = "(" + formatQuantity(l.Movement.Quantity) + ")"
		}
		result = append(result, row.New(6).Add(
			cell(l.Movement.MovementDate.Format("02/01/2006"), align.Left),
			cell(string(l.Movement.Type), align.Left),
			cell(referenceLabel(l.Movement.Reference), align.Left),
			cell(in, align.Right),
			cell(out, align.Right),
			cell(formatQuantity(l.Balance), align.Right),
		))
	}
	return result
}

// summaryRow: totales alineados a la derecha.
func summaryRow(level entity.StockLevel) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Entradas:"),
			label("Salidas (incl. mermas):"),
			label("Stock actual:"),
			label("Ajustes (no incluidos):"),
		),
		col.New(3).Add(
			value(formatQuantity(level.StockIn)),
			value(formatQuantity(level.StockOut)),
			value(formatQuantity(level.CurrentStock)),
			value(formatQuantity(level.Adjustments)),
		),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Saldo = entradas (IN) - salidas (OUT, SPOILAGE). "+
				"Los ajustes se listan pero no modifican el saldo.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func referenceLabel(ref entity.MovementReference) string {
	switch ref.Kind {
	case entity.ReferenceOrder:
		return fmt.Sprintf("Pedido #%d", ref.ID)
	case entity.ReferenceProcurement:
		return fmt.Sprintf("Compra #%d", ref.ID)
	}
	return "-"
}

// formatQuantity dos decimales con separador de miles: 1234.5 -> "1.234,50".
func formatQuantity(d decimal.Decimal) string {
	s := d.Abs().StringFixed(inventory.QuantityPlaces)
	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart) + "," + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
