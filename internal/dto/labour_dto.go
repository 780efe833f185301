package dto

import "github.com/shopspring/decimal"

type CreateLabourRequest struct {
	Name   string  `json:"name"    validate:"required"`
	Phone  *string `json:"phone"`
	RoleID string  `json:"role_id" validate:"required,uuid"`
}

type UpdateLabourRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	RoleID *string `json:"role_id" validate:"omitempty,uuid"`
	Active *bool   `json:"active"`
}

type LabourResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone"`
	RoleID    string          `json:"role_id"`
	RoleName  string          `json:"role_name"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
	Active    bool            `json:"active"`
}
