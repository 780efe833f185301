package dto

import "github.com/shopspring/decimal"

type TodayStats struct {
	Labours     int             `json:"labours"`
	TotalKg     decimal.Decimal `json:"totalKg"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type WeekStats struct {
	Days        int             `json:"days"`
	TotalKg     decimal.Decimal `json:"totalKg"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type ResourceStats struct {
	ActiveLabours int64 `json:"activeLabours"`
	ActiveRoles   int64 `json:"activeRoles"`
	TotalProducts int64 `json:"totalProducts"`
}

type RecentPayment struct {
	ID         string          `json:"id"`
	LabourName string          `json:"labourName"`
	Amount     decimal.Decimal `json:"amount"`
	PaidOn     string          `json:"paidOn"`
	WeekStart  string          `json:"weekStart"`
	WeekEnd    string          `json:"weekEnd"`
}

type DashboardStatsResponse struct {
	Today          TodayStats      `json:"today"`
	Week           WeekStats       `json:"week"`
	Resources      ResourceStats   `json:"resources"`
	RecentPayments []RecentPayment `json:"recentPayments"`
}
