package dto

import "github.com/shopspring/decimal"

// SalaryFilter is bound from the query string of GET /v1/salary.
// StartOfWeek and EndOfWeek are both required; LabourID is optional.
type SalaryFilter struct {
	StartOfWeek string `form:"startOfWeek"`
	EndOfWeek   string `form:"endOfWeek"`
	LabourID    string `form:"labourId"`
}

// SalarySummary is one labourer's aggregated pay for the requested window.
// NetPayable may be negative when advances exceed the earned amount.
type SalarySummary struct {
	LabourID     string          `json:"labour_id"`
	LabourName   string          `json:"labour_name"`
	TotalKg      decimal.Decimal `json:"total_kg"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	NetPayable   decimal.Decimal `json:"net_payable"`
	DaysWorked   int             `json:"days_worked"`
}
