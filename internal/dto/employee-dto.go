package dto

import (
	"github.com/shopspring/decimal"
)

type CreateEmployeeDTO struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"omitempty"`
	Type     string `json:"type" validate:"required,employee_type"`

	// Whichever field does not match Type is zeroed on insert.
	FixedSalary decimal.Decimal `json:"fixed_salary"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	HireDate    string          `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateEmployeeDTO struct {
	Name        *string          `json:"name,omitempty"         validate:"omitempty"`
	Position    *string          `json:"position,omitempty"     validate:"omitempty"`
	Type        *string          `json:"type,omitempty"         validate:"omitempty,employee_type"`
	FixedSalary *decimal.Decimal `json:"fixed_salary,omitempty" validate:"omitempty"`
	DailyRate   *decimal.Decimal `json:"daily_rate,omitempty"   validate:"omitempty"`
	HireDate    *string          `json:"hire_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
}

type EmployeeDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Position    string          `json:"position"`
	Type        string          `json:"type"`
	FixedSalary decimal.Decimal `json:"fixed_salary"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	HireDate    string          `json:"hire_date,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortEmployeeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
