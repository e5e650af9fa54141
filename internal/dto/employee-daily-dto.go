package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateEmployeeDailyDTO struct {
	EmployeeID  string `json:"employee_id" validate:"required,uuid"`
	EventID     string `json:"event_id" validate:"omitempty,uuid"`
	ServiceDate string `json:"service_date" validate:"required,datetime=2006-01-02"`

	// Exactly one of these may be non-zero and it has to match the
	// employee's type; the service rejects everything else.
	DailyValue      decimal.Decimal `json:"daily_value"`
	AdditionalValue decimal.Decimal `json:"additional_value"`

	Description null.String `json:"description"`
}

type UpdateEmployeeDailyDTO struct {
	ServiceDate     *string          `json:"service_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DailyValue      *decimal.Decimal `json:"daily_value,omitempty"`
	AdditionalValue *decimal.Decimal `json:"additional_value,omitempty"`
	Description     null.String      `json:"description,omitempty"`
}

type EmployeeDailyDTO struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	EmployeeType    string          `json:"employee_type"`
	EventID         string          `json:"event_id,omitempty"`
	ServiceDate     string          `json:"service_date"`
	DailyValue      decimal.Decimal `json:"daily_value"`
	AdditionalValue decimal.Decimal `json:"additional_value"`
	Description     string          `json:"description,omitempty"`

	CreatedAt string `json:"created_at"`
}
