// Package analytics contiene los casos de uso de reportes sobre el libro de movimientos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

const dashboardTopSpoiled = 5 // número de productos en el widget de mermas

// DashboardUseCase genera el resumen de movimientos del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el InventoryDashboardDTO.
//
// Tres llamadas en paralelo:
//  1. TotalsBetween(hoy)            → Today
//  2. TotalsBetween(mes)            → Month + SpoilageRate
//  3. TopProducts(SPOILAGE, mes, 5) → TopSpoiled
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.InventoryDashboardDTO, error) {
	now := uc.now()

	// ── Rangos de fecha [inicio, fin) ──────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		totals inventory.Totals
		err    error
	}
	type topResult struct {
		top []repository.ProductQuantity
		err error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		t, err := uc.analyticsRepo.TotalsBetween(ctx, todayStart, tomorrow)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.TotalsBetween(ctx, monthStart, tomorrow)
		monthCh <- totalsResult{t, err}
	}()
	go func() {
		top, err := uc.analyticsRepo.TopProducts(ctx, entity.MovementTypeSPOILAGE, monthStart, tomorrow, dashboardTopSpoiled)
		topCh <- topResult{top, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: ranking de mermas: %w", top.err)
	}

	topSpoiled := make([]dto.TopProductDTO, 0, len(top.top))
	for _, p := range top.top {
		topSpoiled = append(topSpoiled, dto.TopProductDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity.Round(inventory.QuantityPlaces),
		})
	}

	return &dto.InventoryDashboardDTO{
		Today:        totalsDTO(today.totals),
		Month:        totalsDTO(month.totals),
		SpoilageRate: spoilageRate(month.totals),
		TopSpoiled:   topSpoiled,
		DateLabel:    monthLabel(now),
	}, nil
}

func totalsDTO(t inventory.Totals) dto.MovementTotalsDTO {
	return dto.MovementTotalsDTO{
		StockIn:     t.Get(entity.MovementTypeIN).Round(inventory.QuantityPlaces),
		StockOut:    t.Get(entity.MovementTypeOUT).Round(inventory.QuantityPlaces),
		Spoilage:    t.Get(entity.MovementTypeSPOILAGE).Round(inventory.QuantityPlaces),
		Adjustments: t.Get(entity.MovementTypeADJUSTMENT).Round(inventory.QuantityPlaces),
	}
}

// spoilageRate porcentaje de mermas sobre entradas, protegido contra división por cero.
func spoilageRate(t inventory.Totals) decimal.Decimal {
	in := t.Get(entity.MovementTypeIN)
	if !in.IsPositive() {
		return decimal.Zero
	}
	return t.Get(entity.MovementTypeSPOILAGE).Div(in).Mul(decimal.NewFromInt(100)).Round(2)
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
