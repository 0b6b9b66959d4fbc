package usecase

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes (hoteles, restaurantes).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida y crea un cliente activo por defecto.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	name, err := requiredName("business_name", in.BusinessName)
	if err != nil {
		return nil, err
	}
	c := &entity.Customer{
		BusinessName:  name,
		CustomerType:  validation.CleanOptional(in.CustomerType),
		ContactPerson: validation.CleanOptional(in.ContactPerson),
		Phone:         validation.CleanOptional(in.Phone),
		Location:      validation.CleanOptional(in.Location),
		IsActive:      boolOr(in.IsActive, true),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, toPage(page))
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update aplica solo los campos presentes.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.BusinessName != nil {
		if c.BusinessName, err = requiredName("business_name", *in.BusinessName); err != nil {
			return nil, err
		}
	}
	if in.CustomerType != nil {
		c.CustomerType = validation.CleanOptional(in.CustomerType)
	}
	if in.ContactPerson != nil {
		c.ContactPerson = validation.CleanOptional(in.ContactPerson)
	}
	if in.Phone != nil {
		c.Phone = validation.CleanOptional(in.Phone)
	}
	if in.Location != nil {
		c.Location = validation.CleanOptional(in.Location)
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete con pedidos registrados -> ErrConflict.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundOrNil(uc.repo.Delete(ctx, id))
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		BusinessName:  c.BusinessName,
		CustomerType:  c.CustomerType,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Location:      c.Location,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
