package usecase

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// DeliveryUseCase entregas de pedidos.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
}

func NewDeliveryUseCase(repo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo}
}

func (uc *DeliveryUseCase) Create(ctx context.Context, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	status := entity.DeliveryStatusPending
	if in.DeliveryStatus != "" {
		status = entity.DeliveryStatus(in.DeliveryStatus)
	}
	d := &entity.Delivery{
		OrderID:      in.OrderID,
		DeliveryDate: in.DeliveryDate,
		Status:       status,
		DeliveredBy:  in.DeliveredBy,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

func (uc *DeliveryUseCase) GetByID(ctx context.Context, id int64) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDeliveryResponse(d), nil
}

func (uc *DeliveryUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.DeliveryResponse, error) {
	list, err := uc.repo.List(ctx, toPage(page))
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDeliveryResponse(d))
	}
	return out, nil
}

func (uc *DeliveryUseCase) Update(ctx context.Context, id int64, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.OrderID != nil {
		d.OrderID = *in.OrderID
	}
	if in.DeliveryDate != nil {
		d.DeliveryDate = *in.DeliveryDate
	}
	if in.DeliveryStatus != nil {
		d.Status = entity.DeliveryStatus(*in.DeliveryStatus)
	}
	if in.DeliveredBy != nil {
		d.DeliveredBy = in.DeliveredBy
	}
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

func (uc *DeliveryUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundOrNil(uc.repo.Delete(ctx, id))
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:             d.ID,
		OrderID:        d.OrderID,
		DeliveryDate:   d.DeliveryDate,
		DeliveryStatus: string(d.Status),
		DeliveredBy:    d.DeliveredBy,
		CreatedAt:      d.CreatedAt,
	}
}
