package usecase

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// PaymentUseCase pagos aplicados a pedidos.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := validation.Amount("amount_paid", *in.AmountPaid); err != nil {
		return nil, err
	}
	p := &entity.Payment{
		OrderID:     in.OrderID,
		Method:      paymentMethod(in.PaymentMethod),
		AmountPaid:  *in.AmountPaid,
		PaymentDate: in.PaymentDate,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

func (uc *PaymentUseCase) GetByID(ctx context.Context, id int64) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(p), nil
}

func (uc *PaymentUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.List(ctx, toPage(page))
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

func (uc *PaymentUseCase) Update(ctx context.Context, id int64, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.OrderID != nil {
		p.OrderID = *in.OrderID
	}
	if in.PaymentMethod != nil {
		p.Method = paymentMethod(in.PaymentMethod)
	}
	if in.AmountPaid != nil {
		if err := validation.Amount("amount_paid", *in.AmountPaid); err != nil {
			return nil, err
		}
		p.AmountPaid = *in.AmountPaid
	}
	if in.PaymentDate != nil {
		p.PaymentDate = *in.PaymentDate
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

func (uc *PaymentUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundOrNil(uc.repo.Delete(ctx, id))
}

func paymentMethod(s *string) *entity.PaymentMethod {
	if s == nil || *s == "" {
		return nil
	}
	m := entity.PaymentMethod(*s)
	return &m
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	var method *string
	if p.Method != nil {
		m := string(*p.Method)
		method = &m
	}
	return &dto.PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		PaymentMethod: method,
		AmountPaid:    p.AmountPaid,
		PaymentDate:   p.PaymentDate,
		CreatedAt:     p.CreatedAt,
	}
}
