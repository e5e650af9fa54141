package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

type fakeEventRepo struct {
	events map[string]*entities.Event
	items  map[string][]entities.EventEquipmentItem
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: make(map[string]*entities.Event),
		items:  make(map[string][]entities.EventEquipmentItem),
	}
}

func (r *fakeEventRepo) GetEvents(ctx context.Context, filter types.Filter) ([]entities.Event, uint64, error) {
	var out []entities.Event
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeEventRepo) GetEventsBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	var out []entities.Event
	for _, e := range r.events {
		if !e.EventDate.Before(from) && !e.EventDate.After(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) FindEvent(ctx context.Context, id string) (*entities.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) CreateEvent(ctx context.Context, q repositories.Querier, e *entities.Event) error {
	copied := *e
	r.events[e.ID] = &copied
	return nil
}

func (r *fakeEventRepo) UpdateEvent(ctx context.Context, q repositories.Querier, id string, e entities.Event) error {
	if _, ok := r.events[id]; !ok {
		return apperrors.ErrNotFound
	}
	copied := e
	r.events[id] = &copied
	return nil
}

func (r *fakeEventRepo) DeleteEvent(ctx context.Context, q repositories.Querier, id string) error {
	if _, ok := r.events[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) ListEquipmentItems(ctx context.Context, eventID string) ([]entities.EventEquipmentItem, error) {
	return r.items[eventID], nil
}

func (r *fakeEventRepo) InsertEquipmentItems(ctx context.Context, q repositories.Querier, items []entities.EventEquipmentItem) error {
	for _, item := range items {
		r.items[item.EventID] = append(r.items[item.EventID], item)
	}
	return nil
}

func (r *fakeEventRepo) DeleteEquipmentItems(ctx context.Context, q repositories.Querier, eventID string) error {
	delete(r.items, eventID)
	return nil
}

func newFinanceServiceForTest(t *testing.T) (FinanceServiceInterface, *fakeEventRepo, *fakeEmployeeRepo, *fakeDailyRepo, *fakePaymentRepo) {
	t.Helper()
	eventRepo := newFakeEventRepo()
	employeeRepo := newFakeEmployeeRepo()
	dailyRepo := newFakeDailyRepo(employeeRepo.employees)
	paymentRepo := newFakePaymentRepo()
	svc := NewFinanceService(eventRepo, employeeRepo, dailyRepo, paymentRepo, zap.NewNop())
	return svc, eventRepo, employeeRepo, dailyRepo, paymentRepo
}

func TestGetEventFinancialsByID(t *testing.T) {
	svc, eventRepo, employeeRepo, dailyRepo, _ := newFinanceServiceForTest(t)

	eventRepo.events["ev-1"] = &entities.Event{
		ID: "ev-1", ClientName: "Casamento Silva", TotalCost: dec("10000"), Status: constants.EventStatusInProgress,
	}
	eventRepo.events["ev-2"] = &entities.Event{
		ID: "ev-2", ClientName: "Feira Anual", TotalCost: dec("4000"), Status: constants.EventStatusPlanned,
	}
	employeeRepo.employees["emp-1"] = &entities.Employee{
		ID: "emp-1", Name: "Carlos", Type: constants.EmployeeTypeFixed, FixedSalary: dec("3000"),
	}
	employeeRepo.employees["emp-2"] = &entities.Employee{
		ID: "emp-2", Name: "Ana", Type: constants.EmployeeTypeFreelancer,
	}

	ev1, ev2 := "ev-1", "ev-2"
	dailyRepo.dailies["d-1"] = &entities.EmployeeDaily{
		ID: "d-1", EmployeeID: "emp-1", EventID: &ev1, AdditionalValue: dec("350"),
	}
	dailyRepo.dailies["d-2"] = &entities.EmployeeDaily{
		ID: "d-2", EmployeeID: "emp-2", EventID: &ev1, DailyValue: dec("850"),
	}
	// Belongs to another event, must not leak into ev-1.
	dailyRepo.dailies["d-3"] = &entities.EmployeeDaily{
		ID: "d-3", EmployeeID: "emp-2", EventID: &ev2, DailyValue: dec("500"),
	}

	res, err := svc.GetEventFinancialsByID(context.Background(), "ev-1")
	require.NoError(t, err)

	assert.Equal(t, "ev-1", res.EventID)
	assert.Equal(t, "Casamento Silva", res.ClientName)
	assert.True(t, res.Revenue.Equal(dec("10000")))
	assert.True(t, res.FixedCost.Equal(dec("350")), "fixed cost = %s", res.FixedCost)
	assert.True(t, res.FreelanceCost.Equal(dec("850")), "freelance cost = %s", res.FreelanceCost)
	assert.True(t, res.Profit.Equal(dec("8800")))
	assert.True(t, res.MarginPercent.Equal(dec("88")), "margin = %s", res.MarginPercent)
}

func TestGetEventFinancialsByIDUnknownEvent(t *testing.T) {
	svc, _, _, _, _ := newFinanceServiceForTest(t)

	_, err := svc.GetEventFinancialsByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
