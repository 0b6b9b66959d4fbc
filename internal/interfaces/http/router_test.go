package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	httpapi "github.com/jhoicas/terrafoods-ems/internal/interfaces/http"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
	"github.com/jhoicas/terrafoods-ems/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Name: "Terra Foods EMS"},
		HTTP: config.HTTPConfig{CORSOrigins: []string{"http://localhost:5173"}},
		API:  config.APIConfig{Prefix: "/api/v1", DefaultLimit: 100, MaxLimit: 1000},
	}
}

type testDeps struct {
	products  *fakeProducts
	movements *fakeMovements
	stock     *fakeStock
}

func newTestApp(t *testing.T, mutate ...func(*httpapi.RouterDeps)) (*fiber.App, testDeps) {
	t.Helper()
	td := testDeps{products: newFakeProducts(), movements: &fakeMovements{}, stock: &fakeStock{}}
	deps := httpapi.RouterDeps{
		Categories: fakeCategories{},
		Products:   td.products,
		Movements:  td.movements,
		Stock:      td.stock,
		Dashboard:  fakeDashboard{},
	}
	for _, m := range mutate {
		m(&deps)
	}
	cfg := testConfig()
	app := httpapi.NewApp(cfg, logger.Nop())
	httpapi.Router(app, cfg, deps)
	return app, td
}

// do ejecuta la petición y devuelve status y cuerpo.
func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeError(t *testing.T, raw []byte) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e), string(raw))
	return e
}

func TestRouter_RaizYHealth(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := do(t, app, fiber.MethodGet, "/", "")
	require.Equal(t, fiber.StatusOK, status)
	var w dto.WelcomeResponse
	require.NoError(t, json.Unmarshal(raw, &w))
	assert.Equal(t, "Bienvenido a la API de Terra Foods EMS", w.Message)
	assert.Equal(t, "/docs", w.Docs)
	assert.Equal(t, httpapi.Version, w.Version)

	status, raw = do(t, app, fiber.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy"}`, string(raw))
}

func TestRouter_RutaInexistenteEsJSON(t *testing.T) {
	app, _ := newTestApp(t)

	status, raw := do(t, app, fiber.MethodGet, "/api/v1/nada", "")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decodeError(t, raw).Code)
}

func TestRouter_RequestIDEnRespuesta(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
}

func TestRouter_CORSPermiteOrigenConfigurado(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:5173", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

type recordingObserver struct {
	routes []string
}

func (r *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.routes = append(r.routes, method+" "+route+" "+nethttp.StatusText(status))
}

func TestRouter_MetricasYObservador(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "terrafoods_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()
	obs := &recordingObserver{}
	app, _ := newTestApp(t, func(d *httpapi.RouterDeps) {
		d.Registry = reg
		d.Observer = obs
	})

	status, raw := do(t, app, fiber.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(raw), "terrafoods_test_total 1")

	do(t, app, fiber.MethodGet, "/api/v1/products/7", "")
	assert.Contains(t, obs.routes, "GET /api/v1/products/:id Not Found")
}

func TestRouter_SinRegistroNoHayMetrics(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := do(t, app, fiber.MethodGet, "/metrics", "")

	assert.Equal(t, fiber.StatusNotFound, status)
}
