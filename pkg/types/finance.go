package types

import "github.com/shopspring/decimal"

// EquipmentRollup holds the per-equipment unit counters derived from the
// unit set. The stored counters on the equipment row are a materialized
// copy of this value, never the source of truth.
type EquipmentRollup struct {
	Available     int `json:"available"`
	InMaintenance int `json:"in_maintenance"`
	Unavailable   int `json:"unavailable"`
	Total         int `json:"total"`
}

// EmployeeBalance is the running amount owed to one worker. Positive means
// the company owes the employee, negative means overpayment.
type EmployeeBalance struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	EmployeeType string          `json:"employee_type"`
	FixedSalary  decimal.Decimal `json:"fixed_salary"`
	EarnedTotal  decimal.Decimal `json:"earned_total"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	Balance      decimal.Decimal `json:"balance"`
}

// EventFinancials is the per-event cost/profit breakdown.
type EventFinancials struct {
	EventID       string          `json:"event_id"`
	ClientName    string          `json:"client_name"`
	Revenue       decimal.Decimal `json:"revenue"`
	FixedCost     decimal.Decimal `json:"fixed_cost"`
	FreelanceCost decimal.Decimal `json:"freelance_cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// FinancialSummary is the company-wide picture shown on the finance screen.
type FinancialSummary struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	EmployeeCosts   decimal.Decimal `json:"employee_costs"`
	FreelancerCosts decimal.Decimal `json:"freelancer_costs"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	MarginPercent   decimal.Decimal `json:"margin_percent"`
}

// DashboardStats backs the main dashboard. MonthlyCosts deliberately counts
// only fixed-salary base pay, not freelancer fees or bonuses; the reported
// margin depends on that asymmetry.
type DashboardStats struct {
	TotalEmployees       int             `json:"total_employees"`
	FixedEmployees       int             `json:"fixed_employees"`
	Freelancers          int             `json:"freelancers"`
	TotalEquipment       int             `json:"total_equipment"`
	AvailableEquipment   int             `json:"available_equipment"`
	MaintenanceEquipment int             `json:"maintenance_equipment"`
	TotalEvents          int             `json:"total_events"`
	CompletedEvents      int             `json:"completed_events"`
	PlannedEvents        int             `json:"planned_events"`
	MonthlyRevenue       decimal.Decimal `json:"monthly_revenue"`
	MonthlyCosts         decimal.Decimal `json:"monthly_costs"`
	Profit               decimal.Decimal `json:"profit"`
}
