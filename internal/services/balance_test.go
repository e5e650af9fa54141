package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-system/internal/entities"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeEmployeeBalanceFixed(t *testing.T) {
	emp := entities.Employee{
		ID:          "emp-1",
		Name:        "Carlos",
		Type:        constants.EmployeeTypeFixed,
		FixedSalary: dec("3000"),
	}
	dailies := []entities.EmployeeDaily{
		{EmployeeID: "emp-1", AdditionalValue: dec("350")},
	}
	payments := []entities.EmployeePayment{
		{EmployeeID: "emp-1", Amount: dec("3000")},
	}

	balance := ComputeEmployeeBalance(emp, dailies, payments)

	assert.True(t, balance.EarnedTotal.Equal(dec("3350")), "earned = %s", balance.EarnedTotal)
	assert.True(t, balance.PaidTotal.Equal(dec("3000")))
	assert.True(t, balance.Balance.Equal(dec("350")), "balance = %s", balance.Balance)
}

func TestComputeEmployeeBalanceFreelancer(t *testing.T) {
	emp := entities.Employee{
		ID:   "emp-2",
		Name: "Ana",
		Type: constants.EmployeeTypeFreelancer,
	}
	dailies := []entities.EmployeeDaily{
		{EmployeeID: "emp-2", DailyValue: dec("850")},
	}
	payments := []entities.EmployeePayment{
		{EmployeeID: "emp-2", Amount: dec("500")},
	}

	balance := ComputeEmployeeBalance(emp, dailies, payments)

	assert.True(t, balance.Balance.Equal(dec("350")), "balance = %s", balance.Balance)
}

func TestComputeEmployeeBalanceOverpayment(t *testing.T) {
	emp := entities.Employee{ID: "emp-3", Type: constants.EmployeeTypeFreelancer}
	dailies := []entities.EmployeeDaily{{DailyValue: dec("200")}}
	payments := []entities.EmployeePayment{{Amount: dec("500")}}

	balance := ComputeEmployeeBalance(emp, dailies, payments)

	assert.True(t, balance.Balance.IsNegative())
	assert.True(t, balance.Balance.Equal(dec("-300")))
}

func TestComputeEmployeeBalanceIgnoresOffTypeValues(t *testing.T) {
	// A fixed employee's earned total only counts bonuses; a stray daily
	// value on a record must not leak into the sum.
	emp := entities.Employee{ID: "emp-4", Type: constants.EmployeeTypeFixed, FixedSalary: dec("2000")}
	dailies := []entities.EmployeeDaily{
		{AdditionalValue: dec("100"), DailyValue: dec("999")},
	}

	balance := ComputeEmployeeBalance(emp, dailies, nil)

	assert.True(t, balance.EarnedTotal.Equal(dec("2100")))
}

func TestComputeEventFinancials(t *testing.T) {
	event := entities.Event{
		ID:         "ev-1",
		ClientName: "Prefeitura",
		TotalCost:  dec("4500"),
	}
	dailies := []entities.EmployeeDaily{
		{EmployeeType: constants.EmployeeTypeFixed, AdditionalValue: dec("350")},
		{EmployeeType: constants.EmployeeTypeFreelancer, DailyValue: dec("850")},
	}

	fin := ComputeEventFinancials(event, dailies)

	assert.True(t, fin.Revenue.Equal(dec("4500")))
	assert.True(t, fin.FixedCost.Equal(dec("350")))
	assert.True(t, fin.FreelanceCost.Equal(dec("850")))
	assert.True(t, fin.Profit.Equal(dec("3300")))
	assert.True(t, fin.MarginPercent.GreaterThan(decimal.Zero))
}

func TestComputeEventFinancialsZeroRevenue(t *testing.T) {
	event := entities.Event{ID: "ev-2", TotalCost: decimal.Zero}
	dailies := []entities.EmployeeDaily{
		{EmployeeType: constants.EmployeeTypeFreelancer, DailyValue: dec("100")},
	}

	fin := ComputeEventFinancials(event, dailies)

	assert.True(t, fin.Profit.Equal(dec("-100")))
	assert.True(t, fin.MarginPercent.IsZero(), "margin must be 0 when revenue is 0, got %s", fin.MarginPercent)
}

func TestComputeFinancialSummary(t *testing.T) {
	events := []entities.Event{
		{TotalCost: dec("4500")},
		{TotalCost: dec("1500")},
	}
	dailies := []entities.EmployeeDaily{
		{EmployeeType: constants.EmployeeTypeFreelancer, DailyValue: dec("850")},
		{EmployeeType: constants.EmployeeTypeFixed, AdditionalValue: dec("350")},
	}
	payments := []entities.EmployeePayment{
		{Amount: dec("3000")},
	}

	summary := ComputeFinancialSummary(events, dailies, payments)

	assert.True(t, summary.TotalRevenue.Equal(dec("6000")))
	assert.True(t, summary.EmployeeCosts.Equal(dec("3000")))
	// Only freelancer earnings count here; the fixed bonus flows through
	// payments instead.
	assert.True(t, summary.FreelancerCosts.Equal(dec("850")))
	assert.True(t, summary.NetProfit.Equal(dec("2150")))
}

func TestComputeFinancialSummaryEmpty(t *testing.T) {
	summary := ComputeFinancialSummary(nil, nil, nil)

	assert.True(t, summary.TotalRevenue.IsZero())
	assert.True(t, summary.NetProfit.IsZero())
	assert.True(t, summary.MarginPercent.IsZero())
}

func TestNormalizeDailyValues(t *testing.T) {
	testCases := []struct {
		name         string
		employeeType string
		daily        decimal.Decimal
		additional   decimal.Decimal
		wantErr      bool
	}{
		{"freelancer daily ok", constants.EmployeeTypeFreelancer, dec("850"), decimal.Zero, false},
		{"fixed bonus ok", constants.EmployeeTypeFixed, decimal.Zero, dec("350"), false},
		{"fixed with daily value rejected", constants.EmployeeTypeFixed, dec("850"), decimal.Zero, true},
		{"freelancer with bonus rejected", constants.EmployeeTypeFreelancer, decimal.Zero, dec("350"), true},
		{"unknown type rejected", "contractor", decimal.Zero, decimal.Zero, true},
		{"freelancer with both zero rejected", constants.EmployeeTypeFreelancer, decimal.Zero, decimal.Zero, true},
		{"fixed with both zero rejected", constants.EmployeeTypeFixed, decimal.Zero, decimal.Zero, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := NormalizeDailyValues(tc.employeeType, tc.daily, tc.additional)
			if tc.wantErr {
				require.Error(t, err)
				var validationErr *apperrors.ValidationError
				assert.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
