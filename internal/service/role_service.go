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

// RoleService defines business operations for wage roles. Roles are never
// deleted; rate changes apply to future production days only — existing day
// headers keep their latched rate.
type RoleService interface {
	Create(ctx context.Context, req dto.CreateRoleRequest) (dto.RoleResponse, error)
	List(ctx context.Context) ([]dto.RoleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoleRequest) (dto.RoleResponse, error)
}

type roleService struct {
	repo repository.RoleRepository
}

func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func mapRole(r model.Role) dto.RoleResponse {
	return dto.RoleResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		RatePerKg: r.RatePerKg,
		Active:    r.Active,
	}
}

func (s *roleService) Create(ctx context.Context, req dto.CreateRoleRequest) (dto.RoleResponse, error) {
	if req.RatePerKg.IsNegative() {
		return dto.RoleResponse{}, apierror.Validationf("rate_per_kg cannot be negative")
	}

	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.RoleResponse{}, apierror.Internal(err)
	}
	if existing != nil {
		return dto.RoleResponse{}, apierror.Conflictf("role name already exists")
	}

	role := &model.Role{
		Name:      req.Name,
		RatePerKg: req.RatePerKg,
		Active:    true,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.RoleResponse{}, apierror.Conflictf("role name already exists")
		}
		return dto.RoleResponse{}, apierror.Internal(err)
	}
	return mapRole(*role), nil
}

func (s *roleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		result = append(result, mapRole(r))
	}
	return result, nil
}

func (s *roleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoleRequest) (dto.RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RoleResponse{}, apierror.NotFoundf("role not found")
		}
		return dto.RoleResponse{}, apierror.Internal(err)
	}

	if req.Name != nil && *req.Name != role.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RoleResponse{}, apierror.Internal(err)
		}
		if existing != nil && existing.ID != id {
			return dto.RoleResponse{}, apierror.Conflictf("role name already exists")
		}
		role.Name = *req.Name
	}
	if req.RatePerKg != nil {
		if req.RatePerKg.IsNegative() {
			return dto.RoleResponse{}, apierror.Validationf("rate_per_kg cannot be negative")
		}
		// Takes effect for future production-day headers only.
		role.RatePerKg = *req.RatePerKg
	}
	if req.Active != nil {
		role.Active = *req.Active
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return dto.RoleResponse{}, apierror.Internal(err)
	}
	return mapRole(*role), nil
}
