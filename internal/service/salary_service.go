package service

import (
	"context"
	"sort"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryService interface {
	ComputeWeeklySalary(ctx context.Context, filter dto.SalaryFilter) ([]dto.SalarySummary, error)
}

type salaryService struct {
	prodRepo    repository.ProductionRepository
	advanceRepo repository.AdvanceRepository
}

func NewSalaryService(prodRepo repository.ProductionRepository, advanceRepo repository.AdvanceRepository) SalaryService {
	return &salaryService{prodRepo: prodRepo, advanceRepo: advanceRepo}
}

// ComputeWeeklySalary aggregates production and advances over an inclusive
// date window into one summary row per labourer who produced in range.
//
// Amounts are summed item-by-item from the values latched at entry time, never
// recomputed as total_kg × a single rate — a labourer whose rate changed
// mid-window is still summed correctly. Labourers with advances but no
// production in range produce no row. NetPayable may go negative when a
// labourer has been advanced more than earned; that is a valid, reportable
// state, not an error.
func (s *salaryService) ComputeWeeklySalary(ctx context.Context, filter dto.SalaryFilter) ([]dto.SalarySummary, error) {
	if filter.StartOfWeek == "" || filter.EndOfWeek == "" {
		return nil, apierror.Validationf("start and end date required")
	}

	start, end, labourID, err := parseRangeFilter(filter.StartOfWeek, filter.EndOfWeek, filter.LabourID)
	if err != nil {
		return nil, err
	}

	days, err := s.prodRepo.ListDays(ctx, start, end, labourID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	advances, err := s.advanceRepo.List(ctx, start, end, labourID)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	// Index advances by labour before the netting pass so the netting is one
	// lookup per labourer instead of a scan per labourer.
	advanceByLabour := make(map[uuid.UUID]decimal.Decimal)
	for _, a := range advances {
		advanceByLabour[a.LabourID] = advanceByLabour[a.LabourID].Add(a.Amount)
	}

	// Single pass over production days, grouping into per-labour accumulators.
	summaries := make(map[uuid.UUID]*dto.SalarySummary)
	for _, day := range days {
		acc, ok := summaries[day.LabourID]
		if !ok {
			labourName := ""
			if day.Labour != nil {
				labourName = day.Labour.Name
			}
			acc = &dto.SalarySummary{
				LabourID:   day.LabourID.String(),
				LabourName: labourName,
			}
			summaries[day.LabourID] = acc
		}

		for _, item := range day.Items {
			acc.TotalKg = acc.TotalKg.Add(item.QuantityKg)
			acc.TotalAmount = acc.TotalAmount.Add(item.Amount)
		}
		acc.DaysWorked++
	}

	result := make([]dto.SalarySummary, 0, len(summaries))
	for lid, acc := range summaries {
		acc.TotalAdvance = advanceByLabour[lid]
		acc.NetPayable = acc.TotalAmount.Sub(acc.TotalAdvance)
		result = append(result, *acc)
	}

	// Rows are keyed uniquely by labour; sort by name (id as tie-break) so the
	// HTTP surface is deterministic.
	sort.Slice(result, func(i, j int) bool {
		if result[i].LabourName != result[j].LabourName {
			return result[i].LabourName < result[j].LabourName
		}
		return result[i].LabourID < result[j].LabourID
	})
	return result, nil
}
