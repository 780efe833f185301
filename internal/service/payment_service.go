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

// PaymentService records weekly settlements. The ledger is append-only:
// corrections are compensating entries (a negative total_amount is accepted),
// never edits.
type PaymentService interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	List(ctx context.Context, filter dto.PaymentFilter) ([]dto.PaymentResponse, error)
}

type paymentService struct {
	repo       repository.PaymentRepository
	labourRepo repository.LabourRepository
	now        func() time.Time
}

func NewPaymentService(repo repository.PaymentRepository, labourRepo repository.LabourRepository) PaymentService {
	return &paymentService{repo: repo, labourRepo: labourRepo, now: time.Now}
}

func mapPayment(p model.Payment) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ID:          p.ID.String(),
		LabourID:    p.LabourID.String(),
		WeekStart:   p.WeekStart.Format(dto.DateLayout),
		WeekEnd:     p.WeekEnd.Format(dto.DateLayout),
		TotalAmount: p.TotalAmount,
		Remarks:     p.Remarks,
		PaidOn:      p.PaidOn.UTC().Format(time.RFC3339),
	}
	if p.Labour != nil {
		resp.LabourName = p.Labour.Name
	}
	return resp
}

func (s *paymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error) {
	weekStart, err := time.Parse(dto.DateLayout, req.WeekStart)
	if err != nil {
		return dto.PaymentResponse{}, apierror.Validationf("invalid week_start, expected YYYY-MM-DD")
	}
	weekEnd, err := time.Parse(dto.DateLayout, req.WeekEnd)
	if err != nil {
		return dto.PaymentResponse{}, apierror.Validationf("invalid week_end, expected YYYY-MM-DD")
	}
	if weekEnd.Before(weekStart) {
		return dto.PaymentResponse{}, apierror.Validationf("week_end cannot be before week_start")
	}

	labourID, err := uuid.Parse(req.LabourID)
	if err != nil {
		return dto.PaymentResponse{}, apierror.Validationf("invalid labour_id")
	}
	labour, err := s.labourRepo.FindByID(ctx, labourID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PaymentResponse{}, apierror.NotFoundf("labour not found")
		}
		return dto.PaymentResponse{}, apierror.Internal(err)
	}

	p := &model.Payment{
		LabourID:    labourID,
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
		TotalAmount: req.TotalAmount,
		Remarks:     req.Remarks,
		PaidOn:      s.now(), // server-assigned, never client-supplied
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.PaymentResponse{}, apierror.Internal(err)
	}
	p.Labour = labour
	return mapPayment(*p), nil
}

func (s *paymentService) List(ctx context.Context, filter dto.PaymentFilter) ([]dto.PaymentResponse, error) {
	var labourID *uuid.UUID
	if filter.LabourID != "" {
		id, err := uuid.Parse(filter.LabourID)
		if err != nil {
			return nil, apierror.Validationf("invalid labourId")
		}
		labourID = &id
	}

	list, err := s.repo.List(ctx, labourID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	result := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPayment(p))
	}
	return result, nil
}
