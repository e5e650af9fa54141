package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-system/pkg/types"
)

// Employee is a worker. Type is "fixed" (monthly salary) or "freelancer"
// (suggested daily rate); the field of the other type is kept at zero.
type Employee struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Position    *string         `json:"position"`
	Type        string          `json:"type"`
	FixedSalary decimal.Decimal `json:"fixed_salary"`
	DailyRate   decimal.Decimal `json:"daily_rate"`
	HireDate    *time.Time      `json:"hire_date"`

	types.BaseEntity
}
