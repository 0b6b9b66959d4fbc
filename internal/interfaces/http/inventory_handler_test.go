package http_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	httpapi "github.com/jhoicas/terrafoods-ems/internal/interfaces/http"
)

func TestInventory_CrearMovimientoConDecimal(t *testing.T) {
	app, td := newTestApp(t)

	body := `{"product_id":7,"movement_type":"IN","quantity":"12.50","reference_type":"PROCUREMENT","reference_id":3,"movement_date":"2024-03-01T08:00:00Z"}`
	status, _ := do(t, app, fiber.MethodPost, "/api/v1/inventory/movements", body)

	require.Equal(t, fiber.StatusCreated, status)
	require.Len(t, td.movements.created, 1)
	in := td.movements.created[0]
	assert.Equal(t, "12.5", in.Quantity.String())
	require.NotNil(t, in.ReferenceType)
	assert.Equal(t, "PROCUREMENT", *in.ReferenceType)
	assert.Equal(t, int64(3), *in.ReferenceID)
}

func TestInventory_CantidadNumericaSinComillas(t *testing.T) {
	app, td := newTestApp(t)

	status, _ := do(t, app, fiber.MethodPost, "/api/v1/inventory/movements",
		`{"product_id":7,"movement_type":"OUT","quantity":30,"movement_date":"2024-03-01T08:00:00Z"}`)

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "30", td.movements.created[0].Quantity.String())
}

func TestInventory_FechaMalFormadaEsCuerpoInvalido(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := do(t, app, fiber.MethodPost, "/api/v1/inventory/movements",
		`{"product_id":7,"movement_type":"IN","quantity":1,"movement_date":"ayer"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", decodeError(t, raw).Code)
}

func TestInventory_ListarConFiltros(t *testing.T) {
	app, td := newTestApp(t)

	status, raw := do(t, app, fiber.MethodGet, "/api/v1/inventory/movements?product_id=7&order_id=2&limit=10", "")

	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))
	require.NotNil(t, td.movements.lastFilter.ProductID)
	assert.Equal(t, int64(7), *td.movements.lastFilter.ProductID)
	assert.Equal(t, int64(2), *td.movements.lastFilter.OrderID)
	assert.Nil(t, td.movements.lastFilter.ProcurementID)
	assert.Equal(t, dto.PageRequest{Limit: 10}, td.movements.lastPage)
}

func TestInventory_FiltroInvalido(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := do(t, app, fiber.MethodGet, "/api/v1/inventory/movements?procurement_id=x", "")

	assert.Equal(t, fiber.StatusBadRequest, status)
	e := decodeError(t, raw)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Equal(t, "procurement_id", e.Field)
}

func TestInventory_MovimientoNoEncontrado(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := do(t, app, fiber.MethodGet, "/api/v1/inventory/movements/9", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, fiber.MethodDelete, "/api/v1/inventory/movements/9", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestInventory_StockDeProducto(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := do(t, app, fiber.MethodGet, "/api/v1/inventory/stock/42", "")

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), `"product_id":42`)

	status, raw = do(t, app, fiber.MethodGet, "/api/v1/inventory/stock/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "product_id", decodeError(t, raw).Field)
}

func TestInventory_StockAlmacenCaido(t *testing.T) {
	app, td := newTestApp(t)
	td.stock.err = domain.ErrStoreUnavailable

	status, raw := do(t, app, fiber.MethodGet, "/api/v1/inventory/stock/1", "")

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "STORE_UNAVAILABLE", decodeError(t, raw).Code)
}

func TestInventory_ExportXLSX(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory/stock/export.xlsx", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "PK\x03\x04", string(raw))
}

func TestInventory_KardexPDF(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory/stock/5/card.pdf", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "kardex_5.pdf")

	status, _ := do(t, app, fiber.MethodGet, "/api/v1/inventory/stock/404/card.pdf", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDashboard_Resumen(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := do(t, app, fiber.MethodGet, "/api/v1/inventory/dashboard", "")

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), `"date_label":"Febrero 2026"`)
	assert.Contains(t, string(raw), `"top_spoiled":[]`)
}

func TestDashboard_AlmacenCaido(t *testing.T) {
	app, _ := newTestApp(t, func(d *httpapi.RouterDeps) {
		d.Dashboard = fakeDashboard{err: domain.ErrStoreUnavailable}
	})

	status, raw := do(t, app, fiber.MethodGet, "/api/v1/inventory/dashboard", "")

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "STORE_UNAVAILABLE", decodeError(t, raw).Code)
}
