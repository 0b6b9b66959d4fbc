package inventory

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
	"github.com/jhoicas/terrafoods-ems/pkg/logger"
)

// MovementUseCase libro de movimientos: alta, consulta, listado y borrado.
// No hay actualización: un movimiento es inmutable una vez registrado.
type MovementUseCase struct {
	repo    repository.InventoryMovementRepository
	metrics Metrics
	log     *logger.Logger
}

// NewMovementUseCase construye el caso de uso. metrics puede ser nil.
func NewMovementUseCase(repo repository.InventoryMovementRepository, metrics Metrics, log *logger.Logger) *MovementUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{repo: repo, metrics: metrics, log: log.Named("movements")}
}

// Create valida tipo, cantidad y referencia antes de escribir. Un product_id
// inexistente lo rechaza la FK y llega como ValidationError.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := validation.Amount("quantity", *in.Quantity); err != nil {
		return nil, err
	}
	ref, err := referenceFrom(in.ReferenceType, in.ReferenceID)
	if err != nil {
		return nil, err
	}
	m := &entity.InventoryMovement{
		ProductID:    in.ProductID,
		Type:         entity.MovementType(in.MovementType),
		Quantity:     *in.Quantity,
		Reference:    ref,
		MovementDate: in.MovementDate,
		RecordedBy:   in.RecordedBy,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.metrics.MovementRecorded(m.Type)
	uc.log.Debug().
		Int64("movement_id", m.ID).
		Int64("product_id", m.ProductID).
		Str("type", string(m.Type)).
		Str("quantity", m.Quantity.String()).
		Msg("movimiento registrado")
	return toMovementResponse(m), nil
}

// referenceFrom arma la variante etiquetada; tipo e id van juntos o no van.
func referenceFrom(kind *string, id *int64) (entity.MovementReference, error) {
	hasKind := kind != nil && *kind != ""
	switch {
	case !hasKind && id == nil:
		return entity.MovementReference{}, nil
	case !hasKind:
		return entity.MovementReference{}, domain.NewValidationError("reference_type", "es obligatorio cuando se informa reference_id")
	case id == nil:
		return entity.MovementReference{}, domain.NewValidationError("reference_id", "es obligatorio cuando se informa reference_type")
	}
	if *id <= 0 {
		return entity.MovementReference{}, domain.NewValidationError("reference_id", "debe ser positivo")
	}
	if entity.ReferenceKind(*kind) == entity.ReferenceOrder {
		return entity.OrderRef(*id), nil
	}
	return entity.ProcurementRef(*id), nil
}

// GetByID devuelve ErrNotFound si el movimiento no existe.
func (uc *MovementUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m), nil
}

// List movimientos por movement_id con filtros opcionales.
func (uc *MovementUseCase) List(ctx context.Context, f dto.MovementFilter, page dto.PageRequest) ([]dto.MovementResponse, error) {
	list, err := uc.repo.List(ctx, repository.MovementFilter{
		ProductID:     f.ProductID,
		OrderID:       f.OrderID,
		ProcurementID: f.ProcurementID,
	}, repository.Page{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// Delete elimina el movimiento sin asiento compensatorio: el stock derivado cambia
// también hacia atrás. Se deja constancia en el log.
func (uc *MovementUseCase) Delete(ctx context.Context, id int64) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	found, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	uc.metrics.MovementDeleted(m.Type)
	uc.log.Warn().
		Int64("movement_id", m.ID).
		Int64("product_id", m.ProductID).
		Str("type", string(m.Type)).
		Str("quantity", m.Quantity.String()).
		Msg("movimiento eliminado; el stock histórico del producto cambia")
	return nil
}

func toMovementResponse(m *entity.InventoryMovement) *dto.MovementResponse {
	out := &dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		MovementType: string(m.Type),
		Quantity:     m.Quantity,
		MovementDate: m.MovementDate,
		RecordedBy:   m.RecordedBy,
		CreatedAt:    m.CreatedAt,
	}
	if !m.Reference.IsNone() {
		kind := string(m.Reference.Kind)
		id := m.Reference.ID
		out.ReferenceType = &kind
		out.ReferenceID = &id
	}
	return out
}
