package service

import (
	"context"
	"errors"
	"time"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/model"
	"github.com/ARUNKUMAR016/suganya-metals/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdvanceService defines business operations for cash advances. Advances are
// leaf records: delete has no dependency checks.
type AdvanceService interface {
	Create(ctx context.Context, req dto.CreateAdvanceRequest) (dto.AdvanceResponse, error)
	List(ctx context.Context, filter dto.AdvanceFilter) ([]dto.AdvanceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type advanceService struct {
	repo       repository.AdvanceRepository
	labourRepo repository.LabourRepository
}

func NewAdvanceService(repo repository.AdvanceRepository, labourRepo repository.LabourRepository) AdvanceService {
	return &advanceService{repo: repo, labourRepo: labourRepo}
}

func mapAdvance(a model.LabourAdvance) dto.AdvanceResponse {
	resp := dto.AdvanceResponse{
		ID:       a.ID.String(),
		LabourID: a.LabourID.String(),
		Amount:   a.Amount,
		Date:     a.Date.Format(dto.DateLayout),
		Notes:    a.Notes,
	}
	if a.Labour != nil {
		resp.LabourName = a.Labour.Name
	}
	return resp
}

func (s *advanceService) Create(ctx context.Context, req dto.CreateAdvanceRequest) (dto.AdvanceResponse, error) {
	if req.LabourID == "" || req.Amount.IsZero() || req.Date == "" {
		return dto.AdvanceResponse{}, apierror.Validationf("labour, amount, and date are required")
	}
	if !req.Amount.IsPositive() {
		return dto.AdvanceResponse{}, apierror.Validationf("amount must be greater than zero")
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return dto.AdvanceResponse{}, apierror.Validationf("invalid date, expected YYYY-MM-DD")
	}

	labourID, err := uuid.Parse(req.LabourID)
	if err != nil {
		return dto.AdvanceResponse{}, apierror.Validationf("invalid labour_id")
	}
	labour, err := s.labourRepo.FindByID(ctx, labourID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AdvanceResponse{}, apierror.NotFoundf("labour not found")
		}
		return dto.AdvanceResponse{}, apierror.Internal(err)
	}

	a := &model.LabourAdvance{
		LabourID: labourID,
		Amount:   req.Amount,
		Date:     date,
		Notes:    req.Notes,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return dto.AdvanceResponse{}, apierror.Internal(err)
	}
	a.Labour = labour
	return mapAdvance(*a), nil
}

func (s *advanceService) List(ctx context.Context, filter dto.AdvanceFilter) ([]dto.AdvanceResponse, error) {
	start, end, labourID, err := parseRangeFilter(filter.StartOfWeek, filter.EndOfWeek, filter.LabourID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, start, end, labourID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	result := make([]dto.AdvanceResponse, 0, len(list))
	for _, a := range list {
		result = append(result, mapAdvance(a))
	}
	return result, nil
}

func (s *advanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFoundf("advance not found")
		}
		return apierror.Internal(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
