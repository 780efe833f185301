package dto

import "github.com/shopspring/decimal"

// DateLayout is the wire format for calendar dates across the API.
const DateLayout = "2006-01-02"

// ─── Requests ────────────────────────────────────────────────────────────────

type ProductionItemRequest struct {
	ProductID  string          `json:"product_id"  validate:"required,uuid"`
	Pcs        int             `json:"pcs"         validate:"min=0"`
	QuantityKg decimal.Decimal `json:"quantity_kg" validate:"required"`
}

type RecordProductionRequest struct {
	Date     string                  `json:"date"      validate:"required"`
	LabourID string                  `json:"labour_id" validate:"required,uuid"`
	Items    []ProductionItemRequest `json:"items"     validate:"required,min=1,dive"`
}

// ProductionFilter is bound from the query string of GET /v1/production.
type ProductionFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	LabourID  string `form:"labourId"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

// RecordProductionResponse confirms a saved entry, echoing the latched rate so
// the client can display what the day is actually paying.
type RecordProductionResponse struct {
	Message         string          `json:"message"`
	ProductionDayID string          `json:"production_day_id"`
	Date            string          `json:"date"`
	RatePerKg       decimal.Decimal `json:"rate_per_kg"`
	ItemsAdded      int             `json:"items_added"`
}

type ProductionItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Pcs         int             `json:"pcs"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	Amount      decimal.Decimal `json:"amount"`
}

type ProductionDayResponse struct {
	ID         string                   `json:"id"`
	Date       string                   `json:"date"`
	LabourID   string                   `json:"labour_id"`
	LabourName string                   `json:"labour_name"`
	RoleID     string                   `json:"role_id"`
	RoleName   string                   `json:"role_name"`
	RatePerKg  decimal.Decimal          `json:"rate_per_kg"`
	Items      []ProductionItemResponse `json:"items"`
}
