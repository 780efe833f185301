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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductionService interface {
	RecordEntry(ctx context.Context, req dto.RecordProductionRequest) (*dto.RecordProductionResponse, error)
	ListProduction(ctx context.Context, filter dto.ProductionFilter) ([]dto.ProductionDayResponse, error)
}

type productionService struct {
	repo       repository.ProductionRepository
	labourRepo repository.LabourRepository
}

func NewProductionService(repo repository.ProductionRepository, labourRepo repository.LabourRepository) ProductionService {
	return &productionService{repo: repo, labourRepo: labourRepo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RecordEntry ───────────────────────────────────────────────────────────────
// One atomic unit per entry:
//   1. Resolve the labourer and its current role rate (pre-flight, outside TX)
//   2. BEGIN TX: find the (labour, date) header; create it if absent,
//      latching rate_per_kg from the role at this moment — the only moment a
//      day's rate is ever set. An existing header keeps its stored rate no
//      matter what the role says now.
//   3. Insert all items, amount = quantity_kg × the header's latched rate
//   4. COMMIT — or roll everything back, a header with a partial item set is
//      never acceptable
//
// Two concurrent requests for a fresh (labour, date) race on the composite
// unique index; the loser's insert fails with gorm.ErrDuplicatedKey and the
// whole transaction is retried once, now taking the append path.

func (s *productionService) RecordEntry(ctx context.Context, req dto.RecordProductionRequest) (*dto.RecordProductionResponse, error) {
	if len(req.Items) == 0 {
		return nil, apierror.Validationf("no items provided")
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, apierror.Validationf("invalid date, expected YYYY-MM-DD")
	}

	labourID, err := uuid.Parse(req.LabourID)
	if err != nil {
		return nil, apierror.Validationf("invalid or inactive labour")
	}

	// Resolve labour + current role rate
	labour, err := s.labourRepo.FindByID(ctx, labourID)
	if err != nil || !labour.Active {
		return nil, apierror.Validationf("invalid or inactive labour")
	}
	if labour.Role == nil {
		return nil, apierror.Validationf("invalid or inactive labour")
	}

	// Pre-flight item resolution
	type resolvedItem struct {
		productID uuid.UUID
		pcs       int
		quantity  decimal.Decimal
	}
	resolved := make([]resolvedItem, 0, len(req.Items))
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apierror.Validationf("invalid product_id")
		}
		if !item.QuantityKg.IsPositive() {
			return nil, apierror.Validationf("quantity_kg must be greater than zero")
		}
		if item.Pcs < 0 {
			return nil, apierror.Validationf("pcs cannot be negative")
		}
		resolved = append(resolved, resolvedItem{productID: pid, pcs: item.Pcs, quantity: item.QuantityKg})
	}

	record := func() (*model.ProductionDay, error) {
		var day *model.ProductionDay
		txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			existing, err := s.repo.FindDayTx(ctx, tx, labourID, date)
			switch {
			case err == nil:
				// Existing day: the rate stays latched to whatever the header
				// stored at creation, even if the role's rate changed since.
				day = existing
			case errors.Is(err, gorm.ErrRecordNotFound):
				day = &model.ProductionDay{
					Date:      date,
					LabourID:  labourID,
					RoleID:    labour.RoleID,
					RatePerKg: labour.Role.RatePerKg, // LATCH
				}
				if err := s.repo.CreateDayTx(ctx, tx, day); err != nil {
					return err
				}
			default:
				return err
			}

			items := make([]model.ProductionItem, 0, len(resolved))
			for _, r := range resolved {
				items = append(items, model.ProductionItem{
					ProductionDayID: day.ID,
					ProductID:       r.productID,
					Pcs:             r.pcs,
					QuantityKg:      r.quantity,
					Amount:          r.quantity.Mul(day.RatePerKg),
				})
			}
			return s.repo.CreateItemsTx(ctx, tx, items)
		})
		if txErr != nil {
			return nil, txErr
		}
		return day, nil
	}

	day, err := record()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the header-creation race; the header exists now, so the retry
		// takes the append path against the winner's latched rate.
		day, err = record()
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}

	return &dto.RecordProductionResponse{
		Message:         "production entry saved",
		ProductionDayID: day.ID.String(),
		Date:            day.Date.Format(dto.DateLayout),
		RatePerKg:       day.RatePerKg,
		ItemsAdded:      len(resolved),
	}, nil
}

// ── ListProduction ────────────────────────────────────────────────────────────

func (s *productionService) ListProduction(ctx context.Context, filter dto.ProductionFilter) ([]dto.ProductionDayResponse, error) {
	start, end, labourID, err := parseRangeFilter(filter.StartDate, filter.EndDate, filter.LabourID)
	if err != nil {
		return nil, err
	}

	days, err := s.repo.ListDays(ctx, start, end, labourID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	result := make([]dto.ProductionDayResponse, 0, len(days))
	for _, day := range days {
		result = append(result, dayToResponse(&day))
	}
	return result, nil
}

// parseRangeFilter parses optional date bounds and labour filter shared by the
// production, advance, and salary read paths.
func parseRangeFilter(startStr, endStr, labourStr string) (start, end *time.Time, labourID *uuid.UUID, err error) {
	if startStr != "" {
		t, perr := time.Parse(dto.DateLayout, startStr)
		if perr != nil {
			return nil, nil, nil, apierror.Validationf("invalid start date, expected YYYY-MM-DD")
		}
		start = &t
	}
	if endStr != "" {
		t, perr := time.Parse(dto.DateLayout, endStr)
		if perr != nil {
			return nil, nil, nil, apierror.Validationf("invalid end date, expected YYYY-MM-DD")
		}
		end = &t
	}
	if labourStr != "" {
		id, perr := uuid.Parse(labourStr)
		if perr != nil {
			return nil, nil, nil, apierror.Validationf("invalid labourId")
		}
		labourID = &id
	}
	return start, end, labourID, nil
}

func dayToResponse(day *model.ProductionDay) dto.ProductionDayResponse {
	items := make([]dto.ProductionItemResponse, 0, len(day.Items))
	for _, item := range day.Items {
		productName := ""
		if item.Product != nil {
			productName = item.Product.Name
		}
		items = append(items, dto.ProductionItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: productName,
			Pcs:         item.Pcs,
			QuantityKg:  item.QuantityKg,
			Amount:      item.Amount,
		})
	}
	labourName := ""
	if day.Labour != nil {
		labourName = day.Labour.Name
	}
	roleName := ""
	if day.Role != nil {
		roleName = day.Role.Name
	}
	return dto.ProductionDayResponse{
		ID:         day.ID.String(),
		Date:       day.Date.Format(dto.DateLayout),
		LabourID:   day.LabourID.String(),
		LabourName: labourName,
		RoleID:     day.RoleID.String(),
		RoleName:   roleName,
		RatePerKg:  day.RatePerKg,
		Items:      items,
	}
}
