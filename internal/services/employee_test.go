package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

type fakeEmployeeRepo struct {
	employees map[string]*entities.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entities.Employee)}
}

func (r *fakeEmployeeRepo) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	var out []entities.Employee
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeEmployeeRepo) FindEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmployeeRepo) CreateEmployee(ctx context.Context, e *entities.Employee) error {
	copied := *e
	r.employees[e.ID] = &copied
	return nil
}

func (r *fakeEmployeeRepo) UpdateEmployee(ctx context.Context, id string, e entities.Employee) error {
	if _, ok := r.employees[id]; !ok {
		return apperrors.ErrNotFound
	}
	copied := e
	r.employees[id] = &copied
	return nil
}

func (r *fakeEmployeeRepo) DeleteEmployee(ctx context.Context, q repositories.Querier, id string) error {
	if _, ok := r.employees[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}

type fakeDailyRepo struct {
	employees map[string]*entities.Employee
	dailies   map[string]*entities.EmployeeDaily
}

func newFakeDailyRepo(employees map[string]*entities.Employee) *fakeDailyRepo {
	return &fakeDailyRepo{employees: employees, dailies: make(map[string]*entities.EmployeeDaily)}
}

func (r *fakeDailyRepo) join(d entities.EmployeeDaily) entities.EmployeeDaily {
	if e, ok := r.employees[d.EmployeeID]; ok {
		d.EmployeeName = e.Name
		d.EmployeeType = e.Type
	}
	return d
}

func (r *fakeDailyRepo) ListDailies(ctx context.Context) ([]entities.EmployeeDaily, error) {
	var out []entities.EmployeeDaily
	for _, d := range r.dailies {
		out = append(out, r.join(*d))
	}
	return out, nil
}

func (r *fakeDailyRepo) ListDailiesByEmployee(ctx context.Context, employeeID string) ([]entities.EmployeeDaily, error) {
	var out []entities.EmployeeDaily
	for _, d := range r.dailies {
		if d.EmployeeID == employeeID {
			out = append(out, r.join(*d))
		}
	}
	return out, nil
}

func (r *fakeDailyRepo) ListDailiesByEvent(ctx context.Context, eventID string) ([]entities.EmployeeDaily, error) {
	var out []entities.EmployeeDaily
	for _, d := range r.dailies {
		if d.EventID != nil && *d.EventID == eventID {
			out = append(out, r.join(*d))
		}
	}
	return out, nil
}

func (r *fakeDailyRepo) FindDaily(ctx context.Context, id string) (*entities.EmployeeDaily, error) {
	d, ok := r.dailies[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	joined := r.join(*d)
	return &joined, nil
}

func (r *fakeDailyRepo) CreateDaily(ctx context.Context, d *entities.EmployeeDaily) error {
	copied := *d
	r.dailies[d.ID] = &copied
	return nil
}

func (r *fakeDailyRepo) UpdateDaily(ctx context.Context, id string, d entities.EmployeeDaily) error {
	if _, ok := r.dailies[id]; !ok {
		return apperrors.ErrNotFound
	}
	copied := d
	r.dailies[id] = &copied
	return nil
}

func (r *fakeDailyRepo) DeleteDaily(ctx context.Context, id string) error {
	delete(r.dailies, id)
	return nil
}

func (r *fakeDailyRepo) DeleteDailiesByEmployee(ctx context.Context, q repositories.Querier, employeeID string) error {
	for id, d := range r.dailies {
		if d.EmployeeID == employeeID {
			delete(r.dailies, id)
		}
	}
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*entities.EmployeePayment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entities.EmployeePayment)}
}

func (r *fakePaymentRepo) ListPayments(ctx context.Context) ([]entities.EmployeePayment, error) {
	var out []entities.EmployeePayment
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) ListPaymentsByEmployee(ctx context.Context, employeeID string) ([]entities.EmployeePayment, error) {
	var out []entities.EmployeePayment
	for _, p := range r.payments {
		if p.EmployeeID == employeeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindPayment(ctx context.Context, id string) (*entities.EmployeePayment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) CreatePayment(ctx context.Context, p *entities.EmployeePayment) error {
	copied := *p
	r.payments[p.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) DeletePayment(ctx context.Context, id string) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) DeletePaymentsByEmployee(ctx context.Context, q repositories.Querier, employeeID string) error {
	for id, p := range r.payments {
		if p.EmployeeID == employeeID {
			delete(r.payments, id)
		}
	}
	return nil
}

func newEmployeeServiceForTest(t *testing.T) (EmployeeServiceInterface, *fakeEmployeeRepo, *fakeDailyRepo, *fakePaymentRepo) {
	t.Helper()
	employeeRepo := newFakeEmployeeRepo()
	dailyRepo := newFakeDailyRepo(employeeRepo.employees)
	paymentRepo := newFakePaymentRepo()
	svc := NewEmployeeService(employeeRepo, dailyRepo, paymentRepo, fakeTxManager{}, zap.NewNop())
	return svc, employeeRepo, dailyRepo, paymentRepo
}

func TestCreateEmployeeZeroesOffTypeField(t *testing.T) {
	svc, _, _, _ := newEmployeeServiceForTest(t)

	created, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeDTO{
		Name:        "Ana",
		Type:        constants.EmployeeTypeFreelancer,
		FixedSalary: dec("3000"),
		DailyRate:   dec("350"),
	})
	require.NoError(t, err)

	assert.True(t, created.FixedSalary.IsZero(), "freelancer must carry no base salary")
	assert.True(t, created.DailyRate.Equal(dec("350")))
}

func TestCreateDailyRejectsDailyValueForFixedEmployee(t *testing.T) {
	svc, employeeRepo, dailyRepo, _ := newEmployeeServiceForTest(t)
	employeeRepo.employees["emp-1"] = &entities.Employee{
		ID: "emp-1", Name: "Carlos", Type: constants.EmployeeTypeFixed, FixedSalary: dec("3000"),
	}

	_, err := svc.CreateDaily(context.Background(), dto.CreateEmployeeDailyDTO{
		EmployeeID:  "emp-1",
		ServiceDate: "2026-08-01",
		DailyValue:  dec("850"),
	})
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, dailyRepo.dailies, "no record on rejection")
}

func TestCreateDailyRejectsAllZeroValues(t *testing.T) {
	svc, employeeRepo, dailyRepo, _ := newEmployeeServiceForTest(t)
	employeeRepo.employees["emp-1"] = &entities.Employee{
		ID: "emp-1", Name: "Carlos", Type: constants.EmployeeTypeFixed, FixedSalary: dec("3000"),
	}
	employeeRepo.employees["emp-2"] = &entities.Employee{
		ID: "emp-2", Name: "Ana", Type: constants.EmployeeTypeFreelancer,
	}

	for _, employeeID := range []string{"emp-1", "emp-2"} {
		_, err := svc.CreateDaily(context.Background(), dto.CreateEmployeeDailyDTO{
			EmployeeID:  employeeID,
			ServiceDate: "2026-08-01",
		})
		require.Error(t, err, "a record with neither value set must be rejected")

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
	assert.Empty(t, dailyRepo.dailies)
}

func TestCreateDailyAcceptsBonusForFixedEmployee(t *testing.T) {
	svc, employeeRepo, _, _ := newEmployeeServiceForTest(t)
	employeeRepo.employees["emp-1"] = &entities.Employee{
		ID: "emp-1", Name: "Carlos", Type: constants.EmployeeTypeFixed, FixedSalary: dec("3000"),
	}

	created, err := svc.CreateDaily(context.Background(), dto.CreateEmployeeDailyDTO{
		EmployeeID:      "emp-1",
		ServiceDate:     "2026-08-01",
		AdditionalValue: dec("350"),
	})
	require.NoError(t, err)
	assert.True(t, created.AdditionalValue.Equal(dec("350")))
	assert.Equal(t, constants.EmployeeTypeFixed, created.EmployeeType)
}

func TestGetEmployeeBalanceEndToEnd(t *testing.T) {
	svc, employeeRepo, dailyRepo, paymentRepo := newEmployeeServiceForTest(t)
	employeeRepo.employees["emp-1"] = &entities.Employee{
		ID: "emp-1", Name: "Carlos", Type: constants.EmployeeTypeFixed, FixedSalary: dec("3000"),
	}
	dailyRepo.dailies["d-1"] = &entities.EmployeeDaily{
		ID: "d-1", EmployeeID: "emp-1", AdditionalValue: dec("350"),
	}
	paymentRepo.payments["p-1"] = &entities.EmployeePayment{
		ID: "p-1", EmployeeID: "emp-1", Amount: dec("3000"),
	}

	balance, err := svc.GetEmployeeBalance(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(dec("350")), "balance = %s", balance.Balance)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	svc, employeeRepo, dailyRepo, paymentRepo := newEmployeeServiceForTest(t)
	employeeRepo.employees["emp-1"] = &entities.Employee{
		ID: "emp-1", Name: "Ana", Type: constants.EmployeeTypeFreelancer,
	}
	dailyRepo.dailies["d-1"] = &entities.EmployeeDaily{ID: "d-1", EmployeeID: "emp-1", DailyValue: dec("850")}
	paymentRepo.payments["p-1"] = &entities.EmployeePayment{ID: "p-1", EmployeeID: "emp-1", Amount: dec("500")}

	err := svc.DeleteEmployee(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Empty(t, employeeRepo.employees)
	assert.Empty(t, dailyRepo.dailies)
	assert.Empty(t, paymentRepo.payments)
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, employeeRepo, _, paymentRepo := newEmployeeServiceForTest(t)
	employeeRepo.employees["emp-1"] = &entities.Employee{
		ID: "emp-1", Name: "Ana", Type: constants.EmployeeTypeFreelancer,
	}

	_, err := svc.CreatePayment(context.Background(), dto.CreateEmployeePaymentDTO{
		EmployeeID:  "emp-1",
		PaymentDate: "2026-08-01",
		Amount:      decimal.Zero,
	})
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, paymentRepo.payments)
}
