package dto

import "github.com/shopspring/decimal"

type CreatePaymentRequest struct {
	LabourID    string          `json:"labour_id"    validate:"required,uuid"`
	WeekStart   string          `json:"week_start"   validate:"required"`
	WeekEnd     string          `json:"week_end"     validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Remarks     *string         `json:"remarks"`
}

// PaymentFilter is bound from the query string of GET /v1/payments.
type PaymentFilter struct {
	LabourID string `form:"labourId"`
}

type PaymentResponse struct {
	ID          string          `json:"id"`
	LabourID    string          `json:"labour_id"`
	LabourName  string          `json:"labour_name"`
	WeekStart   string          `json:"week_start"`
	WeekEnd     string          `json:"week_end"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Remarks     *string         `json:"remarks"`
	PaidOn      string          `json:"paid_on"`
}
