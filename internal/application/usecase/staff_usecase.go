package usecase

import (
	"context"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

type StaffUseCase struct {
	repo repository.StaffRepository
}

func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

func (uc *StaffUseCase) Create(ctx context.Context, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	name, err := requiredName("full_name", in.FullName)
	if err != nil {
		return nil, err
	}
	s := &entity.Staff{
		FullName: name,
		Role:     validation.CleanOptional(in.Role),
		Phone:    validation.CleanOptional(in.Phone),
		IsActive: boolOr(in.IsActive, true),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStaffResponse(s), nil
}

func (uc *StaffUseCase) GetByID(ctx context.Context, id int64) (*dto.StaffResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(s), nil
}

func (uc *StaffUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.StaffResponse, error) {
	list, err := uc.repo.List(ctx, toPage(page))
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStaffResponse(s))
	}
	return out, nil
}

func (uc *StaffUseCase) Update(ctx context.Context, id int64, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		if s.FullName, err = requiredName("full_name", *in.FullName); err != nil {
			return nil, err
		}
	}
	if in.Role != nil {
		s.Role = validation.CleanOptional(in.Role)
	}
	if in.Phone != nil {
		s.Phone = validation.CleanOptional(in.Phone)
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toStaffResponse(s), nil
}

// Delete los registros que lo referencian conservan la fila con la FK en NULL.
func (uc *StaffUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundOrNil(uc.repo.Delete(ctx, id))
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:        s.ID,
		FullName:  s.FullName,
		Role:      s.Role,
		Phone:     s.Phone,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
