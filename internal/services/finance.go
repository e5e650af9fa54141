package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/constants"
	"rental-system/pkg/types"
	"rental-system/pkg/utils"
)

type FinanceServiceInterface interface {
	GetSummary(ctx context.Context) (*types.FinancialSummary, error)
	GetEventFinancials(ctx context.Context) ([]types.EventFinancials, error)
	GetEventFinancialsByID(ctx context.Context, eventID string) (*types.EventFinancials, error)
	GetFixedEmployeeFinances(ctx context.Context) ([]dto.FixedEmployeeFinanceDTO, error)
	GetFreelancerDailies(ctx context.Context) ([]dto.FreelancerDailyFinanceDTO, error)
	GetOverview(ctx context.Context) (*dto.FinanceOverviewDTO, error)
}

type FinanceService struct {
	eventRepository    repositories.EventRepositoryInterface
	employeeRepository repositories.EmployeeRepositoryInterface
	dailyRepository    repositories.EmployeeDailyRepositoryInterface
	paymentRepository  repositories.EmployeePaymentRepositoryInterface
	logger             *zap.Logger
}

func NewFinanceService(
	eventRepository repositories.EventRepositoryInterface,
	employeeRepository repositories.EmployeeRepositoryInterface,
	dailyRepository repositories.EmployeeDailyRepositoryInterface,
	paymentRepository repositories.EmployeePaymentRepositoryInterface,
	logger *zap.Logger,
) FinanceServiceInterface {
	return &FinanceService{
		eventRepository:    eventRepository,
		employeeRepository: employeeRepository,
		dailyRepository:    dailyRepository,
		paymentRepository:  paymentRepository,
		logger:             logger,
	}
}

// financeSnapshot is one consistent read of everything the finance screen
// aggregates over.
type financeSnapshot struct {
	events    []entities.Event
	employees []entities.Employee
	dailies   []entities.EmployeeDaily
	payments  []entities.EmployeePayment
}

func (s *FinanceService) load(ctx context.Context) (*financeSnapshot, error) {
	events, _, err := s.eventRepository.GetEvents(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}
	employees, _, err := s.employeeRepository.GetEmployees(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}
	dailies, err := s.dailyRepository.ListDailies(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepository.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	return &financeSnapshot{
		events:    events,
		employees: employees,
		dailies:   dailies,
		payments:  payments,
	}, nil
}

func (s *FinanceService) GetSummary(ctx context.Context) (*types.FinancialSummary, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	summary := ComputeFinancialSummary(snap.events, snap.dailies, snap.payments)
	return &summary, nil
}

func (s *FinanceService) GetEventFinancials(ctx context.Context) ([]types.EventFinancials, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return eventFinancials(snap), nil
}

// GetEventFinancialsByID computes the breakdown for a single event without
// loading the full snapshot.
func (s *FinanceService) GetEventFinancialsByID(ctx context.Context, eventID string) (*types.EventFinancials, error) {
	event, err := s.eventRepository.FindEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	dailies, err := s.dailyRepository.ListDailiesByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	financials := ComputeEventFinancials(*event, dailies)
	return &financials, nil
}

func eventFinancials(snap *financeSnapshot) []types.EventFinancials {
	byEvent := make(map[string][]entities.EmployeeDaily)
	for _, d := range snap.dailies {
		if d.EventID != nil {
			byEvent[*d.EventID] = append(byEvent[*d.EventID], d)
		}
	}

	out := make([]types.EventFinancials, 0, len(snap.events))
	for _, ev := range snap.events {
		out = append(out, ComputeEventFinancials(ev, byEvent[ev.ID]))
	}
	return out
}

func (s *FinanceService) GetFixedEmployeeFinances(ctx context.Context) ([]dto.FixedEmployeeFinanceDTO, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return fixedEmployeeFinances(snap), nil
}

func fixedEmployeeFinances(snap *financeSnapshot) []dto.FixedEmployeeFinanceDTO {
	dailiesByEmployee := make(map[string][]entities.EmployeeDaily)
	for _, d := range snap.dailies {
		dailiesByEmployee[d.EmployeeID] = append(dailiesByEmployee[d.EmployeeID], d)
	}
	paymentsByEmployee := make(map[string][]entities.EmployeePayment)
	for _, p := range snap.payments {
		paymentsByEmployee[p.EmployeeID] = append(paymentsByEmployee[p.EmployeeID], p)
	}

	var out []dto.FixedEmployeeFinanceDTO
	for _, emp := range snap.employees {
		if emp.Type != constants.EmployeeTypeFixed {
			continue
		}

		additional := decimal.Zero
		for _, d := range dailiesByEmployee[emp.ID] {
			additional = additional.Add(d.AdditionalValue)
		}

		balance := ComputeEmployeeBalance(emp, dailiesByEmployee[emp.ID], paymentsByEmployee[emp.ID])
		out = append(out, dto.FixedEmployeeFinanceDTO{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			Position:    utils.SafeDeref(emp.Position),
			FixedSalary: emp.FixedSalary,
			Additional:  additional,
			TotalPaid:   balance.PaidTotal,
			Total:       balance.EarnedTotal,
			Balance:     balance.Balance,
		})
	}
	return out
}

func (s *FinanceService) GetFreelancerDailies(ctx context.Context) ([]dto.FreelancerDailyFinanceDTO, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return freelancerDailies(snap), nil
}

func freelancerDailies(snap *financeSnapshot) []dto.FreelancerDailyFinanceDTO {
	eventNames := make(map[string]string, len(snap.events))
	for _, ev := range snap.events {
		eventNames[ev.ID] = ev.ClientName
	}

	totals := make(map[string]decimal.Decimal)
	for _, d := range snap.dailies {
		if d.EmployeeType == constants.EmployeeTypeFreelancer {
			totals[d.EmployeeID] = totals[d.EmployeeID].Add(d.DailyValue)
		}
	}

	var out []dto.FreelancerDailyFinanceDTO
	for _, d := range snap.dailies {
		if d.EmployeeType != constants.EmployeeTypeFreelancer {
			continue
		}
		eventName := ""
		if d.EventID != nil {
			eventName = eventNames[*d.EventID]
		}
		out = append(out, dto.FreelancerDailyFinanceDTO{
			EmployeeID: d.EmployeeID,
			Name:       d.EmployeeName,
			EventName:  eventName,
			DailyValue: d.DailyValue,
			Total:      totals[d.EmployeeID],
		})
	}
	return out
}

// GetOverview is the whole finance screen in one payload.
func (s *FinanceService) GetOverview(ctx context.Context) (*dto.FinanceOverviewDTO, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.FinanceOverviewDTO{
		Summary:     ComputeFinancialSummary(snap.events, snap.dailies, snap.payments),
		Events:      eventFinancials(snap),
		Fixed:       fixedEmployeeFinances(snap),
		Freelancers: freelancerDailies(snap),
	}, nil
}
