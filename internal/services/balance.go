package services

import (
	"github.com/shopspring/decimal"

	"rental-system/internal/entities"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// marginPercent returns profit/revenue*100, or zero when revenue is not
// positive. A zero-revenue event is reported as 0%, never as an error.
func marginPercent(profit, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred)
}

// ComputeEmployeeBalance derives what the company still owes one worker.
// Fixed employees earn base salary plus bonus (additional) entries;
// freelancers earn the sum of their daily values. Payments reduce the
// balance in both cases and a negative result means overpayment.
func ComputeEmployeeBalance(emp entities.Employee, dailies []entities.EmployeeDaily, payments []entities.EmployeePayment) types.EmployeeBalance {
	earned := decimal.Zero
	switch emp.Type {
	case constants.EmployeeTypeFixed:
		earned = emp.FixedSalary
		for _, d := range dailies {
			earned = earned.Add(d.AdditionalValue)
		}
	case constants.EmployeeTypeFreelancer:
		for _, d := range dailies {
			earned = earned.Add(d.DailyValue)
		}
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return types.EmployeeBalance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		EmployeeType: emp.Type,
		FixedSalary:  emp.FixedSalary,
		EarnedTotal:  earned,
		PaidTotal:    paid,
		Balance:      earned.Sub(paid),
	}
}

// ComputeEventFinancials breaks one event down into revenue, labor cost and
// margin. Only dailies linked to the event are expected here; the split
// between fixed and freelance cost follows the employee type joined onto
// each record.
func ComputeEventFinancials(event entities.Event, dailies []entities.EmployeeDaily) types.EventFinancials {
	fixedCost := decimal.Zero
	freelanceCost := decimal.Zero
	for _, d := range dailies {
		cost := d.DailyValue.Add(d.AdditionalValue)
		if d.EmployeeType == constants.EmployeeTypeFixed {
			fixedCost = fixedCost.Add(cost)
		} else {
			freelanceCost = freelanceCost.Add(cost)
		}
	}

	profit := event.TotalCost.Sub(fixedCost).Sub(freelanceCost)
	return types.EventFinancials{
		EventID:       event.ID,
		ClientName:    event.ClientName,
		Revenue:       event.TotalCost,
		FixedCost:     fixedCost,
		FreelanceCost: freelanceCost,
		Profit:        profit,
		MarginPercent: marginPercent(profit, event.TotalCost),
	}
}

// ComputeFinancialSummary is the company-wide roll of every event, daily and
// payment. Employee costs are actual disbursements (payments), freelancer
// costs are earned dailies of freelancers; the two bases intentionally
// differ, mirroring how the finance screen has always read.
func ComputeFinancialSummary(events []entities.Event, dailies []entities.EmployeeDaily, payments []entities.EmployeePayment) types.FinancialSummary {
	revenue := decimal.Zero
	for _, ev := range events {
		revenue = revenue.Add(ev.TotalCost)
	}

	employeeCosts := decimal.Zero
	for _, p := range payments {
		employeeCosts = employeeCosts.Add(p.Amount)
	}

	freelancerCosts := decimal.Zero
	for _, d := range dailies {
		if d.EmployeeType == constants.EmployeeTypeFreelancer {
			freelancerCosts = freelancerCosts.Add(d.DailyValue).Add(d.AdditionalValue)
		}
	}

	profit := revenue.Sub(employeeCosts).Sub(freelancerCosts)
	return types.FinancialSummary{
		TotalRevenue:    revenue,
		EmployeeCosts:   employeeCosts,
		FreelancerCosts: freelancerCosts,
		NetProfit:       profit,
		MarginPercent:   marginPercent(profit, revenue),
	}
}

// NormalizeDailyValues enforces the type exclusivity rule on a service
// record: exactly one of the two values is non-zero, and it is the one
// matching the employee's type (freelancers book daily values, fixed
// employees book bonuses). A non-zero value in the wrong field is rejected
// rather than silently zeroed so that a miskeyed amount never disappears,
// and an all-zero record is rejected as well.
func NormalizeDailyValues(employeeType string, dailyValue, additionalValue decimal.Decimal) error {
	switch employeeType {
	case constants.EmployeeTypeFixed:
		if !dailyValue.IsZero() {
			return apperrors.NewValidationError("daily value must be zero for fixed employees, got %s", dailyValue)
		}
		if additionalValue.IsZero() {
			return apperrors.NewValidationError("additional value is required for fixed employees")
		}
	case constants.EmployeeTypeFreelancer:
		if !additionalValue.IsZero() {
			return apperrors.NewValidationError("additional value must be zero for freelancers, got %s", additionalValue)
		}
		if dailyValue.IsZero() {
			return apperrors.NewValidationError("daily value is required for freelancers")
		}
	default:
		return apperrors.NewValidationError("unknown employee type %q", employeeType)
	}
	return nil
}
