package dto

import (
	"github.com/shopspring/decimal"

	"rental-system/pkg/types"
)

// FixedEmployeeFinanceDTO is one row of the fixed-salary table on the
// finance screen: base pay, accumulated bonuses and what was disbursed.
type FixedEmployeeFinanceDTO struct {
	EmployeeID  string          `json:"employee_id"`
	Name        string          `json:"name"`
	Position    string          `json:"position"`
	FixedSalary decimal.Decimal `json:"fixed_salary"`
	Additional  decimal.Decimal `json:"additional"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Total       decimal.Decimal `json:"total"`
	Balance     decimal.Decimal `json:"balance"`
}

// FreelancerDailyFinanceDTO is one freelancer daily-fee row.
type FreelancerDailyFinanceDTO struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	EventName  string          `json:"event_name"`
	DailyValue decimal.Decimal `json:"daily_value"`
	Total      decimal.Decimal `json:"total"`
}

type FinanceOverviewDTO struct {
	Summary     types.FinancialSummary    `json:"summary"`
	Events      []types.EventFinancials   `json:"events"`
	Fixed       []FixedEmployeeFinanceDTO `json:"fixed_employees"`
	Freelancers []FreelancerDailyFinanceDTO `json:"freelancer_dailies"`
}
