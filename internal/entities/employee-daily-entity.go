package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-system/pkg/types"
)

// EmployeeDaily is one dated service record. Exactly one of DailyValue
// (freelancers) and AdditionalValue (fixed employees) is non-zero,
// matching the employee's type; the insert path rejects anything else.
type EmployeeDaily struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EventID         *string         `json:"event_id"`
	ServiceDate     time.Time       `json:"service_date"`
	DailyValue      decimal.Decimal `json:"daily_value"`
	AdditionalValue decimal.Decimal `json:"additional_value"`
	Description     *string         `json:"description"`

	types.BaseEntity

	// Joined from employees, not columns of employee_dailies.
	EmployeeName string `db:"-"`
	EmployeeType string `db:"-"`
}
