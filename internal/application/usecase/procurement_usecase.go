package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// ProcurementUseCase compras a proveedores con sus líneas.
type ProcurementUseCase struct {
	txRunner TxRunner
	repo     repository.ProcurementRepository
}

func NewProcurementUseCase(txRunner TxRunner, repo repository.ProcurementRepository) *ProcurementUseCase {
	return &ProcurementUseCase{txRunner: txRunner, repo: repo}
}

// Create inserta cabecera y líneas en una transacción. total_cost por defecto = Σ quantity * unit_cost.
func (uc *ProcurementUseCase) Create(ctx context.Context, in dto.CreateProcurementRequest) (*dto.ProcurementResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p := &entity.Procurement{
		SupplierID:      in.SupplierID,
		ProcurementDate: in.ProcurementDate,
		RecordedBy:      in.RecordedBy,
		Items:           make([]entity.ProcurementItem, 0, len(in.Items)),
	}
	total := decimal.Zero
	for i, it := range in.Items {
		if err := validation.Amount(fmt.Sprintf("procurement_items[%d].quantity", i), *it.Quantity); err != nil {
			return nil, err
		}
		if err := validation.Amount(fmt.Sprintf("procurement_items[%d].unit_cost", i), *it.UnitCost); err != nil {
			return nil, err
		}
		item := entity.ProcurementItem{ProductID: it.ProductID, Quantity: *it.Quantity, UnitCost: *it.UnitCost}
		total = total.Add(item.Subtotal())
		p.Items = append(p.Items, item)
	}
	p.TotalCost = total.Round(2)
	if in.TotalCost != nil {
		p.TotalCost = *in.TotalCost
	}
	if err := validation.Amount("total_cost", p.TotalCost); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(_ repository.OrderRepository, procurementRepo repository.ProcurementRepository) error {
		return procurementRepo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toProcurementResponse(p), nil
}

func (uc *ProcurementUseCase) GetByID(ctx context.Context, id int64) (*dto.ProcurementResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProcurementResponse(p), nil
}

func (uc *ProcurementUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProcurementResponse, error) {
	list, err := uc.repo.List(ctx, toPage(page))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProcurementResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProcurementResponse(p))
	}
	return out, nil
}

func (uc *ProcurementUseCase) Update(ctx context.Context, id int64, in dto.UpdateProcurementRequest) (*dto.ProcurementResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	if in.ProcurementDate != nil {
		p.ProcurementDate = *in.ProcurementDate
	}
	if in.TotalCost != nil {
		if err := validation.Amount("total_cost", *in.TotalCost); err != nil {
			return nil, err
		}
		p.TotalCost = *in.TotalCost
	}
	if in.RecordedBy != nil {
		p.RecordedBy = in.RecordedBy
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProcurementResponse(p), nil
}

// Delete borra la compra y sus líneas; si hay movimientos que la referencian -> ErrConflict.
func (uc *ProcurementUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundOrNil(uc.repo.Delete(ctx, id))
}

func toProcurementResponse(p *entity.Procurement) *dto.ProcurementResponse {
	items := make([]dto.ProcurementItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.ProcurementItemResponse{
			ID:            it.ID,
			ProcurementID: it.ProcurementID,
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			UnitCost:      it.UnitCost,
		})
	}
	return &dto.ProcurementResponse{
		ID:              p.ID,
		SupplierID:      p.SupplierID,
		ProcurementDate: p.ProcurementDate,
		TotalCost:       p.TotalCost,
		RecordedBy:      p.RecordedBy,
		CreatedAt:       p.CreatedAt,
		Items:           items,
	}
}
