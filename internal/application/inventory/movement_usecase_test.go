package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	appinventory "github.com/jhoicas/terrafoods-ems/internal/application/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

func qty(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func movement(productID int64, t entity.MovementType, q string) dto.CreateMovementRequest {
	return dto.CreateMovementRequest{
		ProductID:    productID,
		MovementType: string(t),
		Quantity:     qty(q),
		MovementDate: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestMovementUseCase_CreateRegistraYCuentaMetrica(t *testing.T) {
	ledger := newFakeLedger(7)
	metrics := newFakeMetrics()
	uc := appinventory.NewMovementUseCase(ledger, metrics, nil)

	out, err := uc.Create(context.Background(), movement(7, entity.MovementTypeIN, "100"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "IN", out.MovementType)
	assert.Nil(t, out.ReferenceType)
	assert.Equal(t, 1, metrics.recorded[entity.MovementTypeIN])
}

func TestMovementUseCase_ValidacionAntesDeEscribir(t *testing.T) {
	cases := map[string]struct {
		mutate func(*dto.CreateMovementRequest)
		field  string
	}{
		"tipo desconocido":     {func(r *dto.CreateMovementRequest) { r.MovementType = "TRANSFER" }, "movement_type"},
		"cantidad negativa":    {func(r *dto.CreateMovementRequest) { r.Quantity = qty("-1") }, "quantity"},
		"tres decimales":       {func(r *dto.CreateMovementRequest) { r.Quantity = qty("0.004") }, "quantity"},
		"redondeo ambiguo":     {func(r *dto.CreateMovementRequest) { r.Quantity = qty("1.005") }, "quantity"},
		"sin cantidad":         {func(r *dto.CreateMovementRequest) { r.Quantity = nil }, "quantity"},
		"sin producto":         {func(r *dto.CreateMovementRequest) { r.ProductID = 0 }, "product_id"},
		"sin fecha":            {func(r *dto.CreateMovementRequest) { r.MovementDate = time.Time{} }, "movement_date"},
		"id sin tipo":          {func(r *dto.CreateMovementRequest) { id := int64(3); r.ReferenceID = &id }, "reference_type"},
		"tipo sin id":          {func(r *dto.CreateMovementRequest) { k := "ORDER"; r.ReferenceType = &k }, "reference_id"},
		"tipo de ref inválido": {func(r *dto.CreateMovementRequest) { k := "INVOICE"; r.ReferenceType = &k }, "reference_type"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ledger := newFakeLedger(7)
			uc := appinventory.NewMovementUseCase(ledger, nil, nil)
			req := movement(7, entity.MovementTypeOUT, "5")
			tc.mutate(&req)

			_, err := uc.Create(context.Background(), req)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "err = %v", err)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Zero(t, ledger.creates)
		})
	}
}

func TestMovementUseCase_ProductoInexistenteEsValidacion(t *testing.T) {
	uc := appinventory.NewMovementUseCase(newFakeLedger(), nil, nil)

	_, err := uc.Create(context.Background(), movement(99, entity.MovementTypeIN, "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementUseCase_ReferenciaEtiquetada(t *testing.T) {
	ledger := newFakeLedger(7)
	uc := appinventory.NewMovementUseCase(ledger, nil, nil)
	ctx := context.Background()

	req := movement(7, entity.MovementTypeIN, "10")
	kind, id := "PROCUREMENT", int64(12)
	req.ReferenceType, req.ReferenceID = &kind, &id
	out, err := uc.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, out.ReferenceType)
	assert.Equal(t, "PROCUREMENT", *out.ReferenceType)
	assert.Equal(t, int64(12), *out.ReferenceID)

	stored, err := ledger.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Reference.OrderID())
	assert.Equal(t, int64(12), *stored.Reference.ProcurementID())

	byProcurement, err := uc.List(ctx, dto.MovementFilter{ProcurementID: &id}, dto.PageRequest{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, byProcurement, 1)
	byOrder, err := uc.List(ctx, dto.MovementFilter{OrderID: &id}, dto.PageRequest{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, byOrder)
}

func TestMovementUseCase_GetYDeleteNoEncontrado(t *testing.T) {
	uc := appinventory.NewMovementUseCase(newFakeLedger(), nil, nil)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 1), domain.ErrNotFound)
}

func TestMovementUseCase_ListPaginadoYVacio(t *testing.T) {
	ledger := newFakeLedger(1)
	uc := appinventory.NewMovementUseCase(ledger, nil, nil)
	ctx := context.Background()

	empty, err := uc.List(ctx, dto.MovementFilter{}, dto.PageRequest{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i := 0; i < 120; i++ {
		_, err := uc.Create(ctx, movement(1, entity.MovementTypeIN, "1"))
		require.NoError(t, err)
	}
	list, err := uc.List(ctx, dto.MovementFilter{}, dto.PageRequest{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, list, 100)
	assert.Equal(t, int64(1), list[0].ID)
}
