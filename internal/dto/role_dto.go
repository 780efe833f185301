package dto

import "github.com/shopspring/decimal"

type CreateRoleRequest struct {
	Name      string          `json:"role_name"   validate:"required"`
	RatePerKg decimal.Decimal `json:"rate_per_kg" validate:"min=0"`
}

type UpdateRoleRequest struct {
	Name      *string          `json:"role_name"`
	RatePerKg *decimal.Decimal `json:"rate_per_kg" validate:"omitempty,min=0"`
	Active    *bool            `json:"active"`
}

type RoleResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"role_name"`
	RatePerKg decimal.Decimal `json:"rate_per_kg"`
	Active    bool            `json:"active"`
}
