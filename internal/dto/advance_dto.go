package dto

import "github.com/shopspring/decimal"

type CreateAdvanceRequest struct {
	LabourID string          `json:"labour_id" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount"    validate:"required"`
	Date     string          `json:"date"      validate:"required"`
	Notes    *string         `json:"notes"`
}

// AdvanceFilter is bound from the query string of GET /v1/advances.
type AdvanceFilter struct {
	StartOfWeek string `form:"startOfWeek"`
	EndOfWeek   string `form:"endOfWeek"`
	LabourID    string `form:"labourId"`
}

type AdvanceResponse struct {
	ID         string          `json:"id"`
	LabourID   string          `json:"labour_id"`
	LabourName string          `json:"labour_name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Notes      *string         `json:"notes"`
}
