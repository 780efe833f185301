package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ARUNKUMAR016/suganya-metals/internal/apierror"
	"github.com/ARUNKUMAR016/suganya-metals/internal/dto"
	"github.com/ARUNKUMAR016/suganya-metals/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
	recentPaymentsN   = 5
)

// DashboardService composes today's and this week's production totals with
// resource counts and recent payments. Pure composition of existing reads;
// results are cached briefly in Redis since the dashboard is polled.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	prodRepo    repository.ProductionRepository
	labourRepo  repository.LabourRepository
	roleRepo    repository.RoleRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentRepository
	rdb         *redis.Client
	now         func() time.Time
}

func NewDashboardService(
	prodRepo repository.ProductionRepository,
	labourRepo repository.LabourRepository,
	roleRepo repository.RoleRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		prodRepo:    prodRepo,
		labourRepo:  labourRepo,
		roleRepo:    roleRepo,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
		rdb:         rdb,
		now:         time.Now,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	// Try cache first — best effort, a miss or a broken payload falls through
	// to a fresh computation.
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardStatsResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// Monday-start week; Sunday belongs to the preceding week.
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))

	// 1. Today's production
	todayDays, err := s.prodRepo.ListDays(ctx, &today, &today, nil)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	var todayStats dto.TodayStats
	for _, day := range todayDays {
		todayStats.Labours++
		for _, item := range day.Items {
			todayStats.TotalKg = todayStats.TotalKg.Add(item.QuantityKg)
			todayStats.TotalAmount = todayStats.TotalAmount.Add(item.Amount)
		}
	}

	// 2. This week's summary
	weekDays, err := s.prodRepo.ListDays(ctx, &weekStart, nil, nil)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	var weekStats dto.WeekStats
	distinctDates := make(map[string]struct{})
	for _, day := range weekDays {
		distinctDates[day.Date.Format(dto.DateLayout)] = struct{}{}
		for _, item := range day.Items {
			weekStats.TotalKg = weekStats.TotalKg.Add(item.QuantityKg)
			weekStats.TotalAmount = weekStats.TotalAmount.Add(item.Amount)
		}
	}
	weekStats.Days = len(distinctDates)

	// 3. Active resources
	activeLabours, err := s.labourRepo.CountActive(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	activeRoles, err := s.roleRepo.CountActive(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	// 4. Recent payments
	payments, err := s.paymentRepo.ListRecent(ctx, recentPaymentsN)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	recent := make([]dto.RecentPayment, 0, len(payments))
	for _, p := range payments {
		labourName := ""
		if p.Labour != nil {
			labourName = p.Labour.Name
		}
		recent = append(recent, dto.RecentPayment{
			ID:         p.ID.String(),
			LabourName: labourName,
			Amount:     p.TotalAmount,
			PaidOn:     p.PaidOn.UTC().Format(time.RFC3339),
			WeekStart:  p.WeekStart.Format(dto.DateLayout),
			WeekEnd:    p.WeekEnd.Format(dto.DateLayout),
		})
	}

	resp := &dto.DashboardStatsResponse{
		Today:          todayStats,
		Week:           weekStats,
		Resources:      dto.ResourceStats{ActiveLabours: activeLabours, ActiveRoles: activeRoles, TotalProducts: totalProducts},
		RecentPayments: recent,
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, dashboardCacheKey, b, dashboardCacheTTL).Err()
		}
	}
	return resp, nil
}
