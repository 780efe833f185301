package service

import (
	"context"
	"errors"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/model"
	"github.com/ARUNKUMAR016/suganya-metals/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabourService defines business operations for labourers. Delete is guarded:
// a labourer referenced by production days or advances cannot be removed.
type LabourService interface {
	Create(ctx context.Context, req dto.CreateLabourRequest) (dto.LabourResponse, error)
	List(ctx context.Context) ([]dto.LabourResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateLabourRequest) (dto.LabourResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type labourService struct {
	repo        repository.LabourRepository
	roleRepo    repository.RoleRepository
	prodRepo    repository.ProductionRepository
	advanceRepo repository.AdvanceRepository
}

func NewLabourService(
	repo repository.LabourRepository,
	roleRepo repository.RoleRepository,
	prodRepo repository.ProductionRepository,
	advanceRepo repository.AdvanceRepository,
) LabourService {
	return &labourService{repo: repo, roleRepo: roleRepo, prodRepo: prodRepo, advanceRepo: advanceRepo}
}

func mapLabour(l model.Labour) dto.LabourResponse {
	resp := dto.LabourResponse{
		ID:     l.ID.String(),
		Name:   l.Name,
		Phone:  l.Phone,
		RoleID: l.RoleID.String(),
		Active: l.Active,
	}
	if l.Role != nil {
		resp.RoleName = l.Role.Name
		resp.RatePerKg = l.Role.RatePerKg
	}
	return resp
}

func (s *labourService) resolveRole(ctx context.Context, roleID string) (*model.Role, error) {
	rid, err := uuid.Parse(roleID)
	if err != nil {
		return nil, apierror.Validationf("invalid role_id")
	}
	role, err := s.roleRepo.FindByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFoundf("role not found")
		}
		return nil, apierror.Internal(err)
	}
	return role, nil
}

func (s *labourService) Create(ctx context.Context, req dto.CreateLabourRequest) (dto.LabourResponse, error) {
	role, err := s.resolveRole(ctx, req.RoleID)
	if err != nil {
		return dto.LabourResponse{}, err
	}

	l := &model.Labour{
		Name:   req.Name,
		Phone:  req.Phone,
		RoleID: role.ID,
		Active: true,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return dto.LabourResponse{}, apierror.Internal(err)
	}
	l.Role = role
	return mapLabour(*l), nil
}

func (s *labourService) List(ctx context.Context) ([]dto.LabourResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.LabourResponse, 0, len(list))
	for _, l := range list {
		result = append(result, mapLabour(l))
	}
	return result, nil
}

func (s *labourService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateLabourRequest) (dto.LabourResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LabourResponse{}, apierror.NotFoundf("labour not found")
		}
		return dto.LabourResponse{}, apierror.Internal(err)
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Phone != nil {
		l.Phone = req.Phone
	}
	if req.RoleID != nil {
		// A role change affects future production days only; past headers keep
		// the role and rate they latched.
		role, err := s.resolveRole(ctx, *req.RoleID)
		if err != nil {
			return dto.LabourResponse{}, err
		}
		l.RoleID = role.ID
		l.Role = role
	}
	if req.Active != nil {
		l.Active = *req.Active
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return dto.LabourResponse{}, apierror.Internal(err)
	}
	return mapLabour(*l), nil
}

func (s *labourService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFoundf("labour not found")
		}
		return apierror.Internal(err)
	}

	productionCount, err := s.prodRepo.CountByLabour(ctx, id)
	if err != nil {
		return apierror.Internal(err)
	}
	if productionCount > 0 {
		return apierror.Conflictf("cannot delete labour: associated with production records")
	}

	advanceCount, err := s.advanceRepo.CountByLabour(ctx, id)
	if err != nil {
		return apierror.Internal(err)
	}
	if advanceCount > 0 {
		return apierror.Conflictf("cannot delete labour: has advance payment records")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
