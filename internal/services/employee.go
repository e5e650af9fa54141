package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
	"rental-system/pkg/utils"
)

const dateLayout = "2006-01-02"

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]dto.EmployeeDTO, uint64, error)
	FindEmployee(ctx context.Context, id string) (*dto.EmployeeDTO, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error)
	UpdateEmployee(ctx context.Context, id string, payload dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, id string) error

	GetEmployeeBalance(ctx context.Context, id string) (*types.EmployeeBalance, error)

	ListDailies(ctx context.Context, employeeID string) ([]dto.EmployeeDailyDTO, error)
	CreateDaily(ctx context.Context, payload dto.CreateEmployeeDailyDTO) (*dto.EmployeeDailyDTO, error)
	UpdateDaily(ctx context.Context, id string, payload dto.UpdateEmployeeDailyDTO) (*dto.EmployeeDailyDTO, error)
	DeleteDaily(ctx context.Context, id string) error

	ListPayments(ctx context.Context, employeeID string) ([]dto.EmployeePaymentDTO, error)
	CreatePayment(ctx context.Context, payload dto.CreateEmployeePaymentDTO) (*dto.EmployeePaymentDTO, error)
	DeletePayment(ctx context.Context, id string) error
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	dailyRepository    repositories.EmployeeDailyRepositoryInterface
	paymentRepository  repositories.EmployeePaymentRepositoryInterface
	txManager          repositories.TxManagerInterface
	logger             *zap.Logger
}

func NewEmployeeService(
	employeeRepository repositories.EmployeeRepositoryInterface,
	dailyRepository repositories.EmployeeDailyRepositoryInterface,
	paymentRepository repositories.EmployeePaymentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) EmployeeServiceInterface {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		dailyRepository:    dailyRepository,
		paymentRepository:  paymentRepository,
		txManager:          txManager,
		logger:             logger,
	}
}

func mapEmployee(e entities.Employee) dto.EmployeeDTO {
	out := dto.EmployeeDTO{
		ID:          e.ID,
		Name:        e.Name,
		Position:    utils.SafeDeref(e.Position),
		Type:        e.Type,
		FixedSalary: e.FixedSalary,
		DailyRate:   e.DailyRate,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
	if e.HireDate != nil {
		out.HireDate = e.HireDate.Format(dateLayout)
	}
	return out
}

func mapDaily(d entities.EmployeeDaily) dto.EmployeeDailyDTO {
	return dto.EmployeeDailyDTO{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		EmployeeName:    d.EmployeeName,
		EmployeeType:    d.EmployeeType,
		EventID:         utils.SafeDeref(d.EventID),
		ServiceDate:     d.ServiceDate.Format(dateLayout),
		DailyValue:      d.DailyValue,
		AdditionalValue: d.AdditionalValue,
		Description:     utils.SafeDeref(d.Description),
		CreatedAt:       formatTime(d.CreatedAt),
	}
}

func mapPayment(p entities.EmployeePayment) dto.EmployeePaymentDTO {
	return dto.EmployeePaymentDTO{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		PaymentDate:  p.PaymentDate.Format(dateLayout),
		Amount:       p.Amount,
		Description:  utils.SafeDeref(p.Description),
		ReceiptURL:   utils.SafeDeref(p.ReceiptURL),
		CreatedAt:    formatTime(p.CreatedAt),
	}
}

// normalizeCompensation keeps the off-type compensation field at zero: a
// fixed employee carries no daily rate and a freelancer no base salary.
func normalizeCompensation(e *entities.Employee) {
	switch e.Type {
	case constants.EmployeeTypeFixed:
		e.DailyRate = decimal.Zero
	case constants.EmployeeTypeFreelancer:
		e.FixedSalary = decimal.Zero
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, filter types.Filter) ([]dto.EmployeeDTO, uint64, error) {
	list, total, err := s.employeeRepository.GetEmployees(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EmployeeDTO, 0, len(list))
	for _, e := range list {
		out = append(out, mapEmployee(e))
	}
	return out, total, nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id string) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapEmployee(*employee)
	return &result, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	employee := entities.Employee{
		ID:          uuid.New().String(),
		Name:        payload.Name,
		Type:        payload.Type,
		FixedSalary: payload.FixedSalary,
		DailyRate:   payload.DailyRate,
	}
	if payload.Position != "" {
		employee.Position = &payload.Position
	}
	if payload.HireDate != "" {
		hireDate, err := time.Parse(dateLayout, payload.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid hire date %q", payload.HireDate)
		}
		employee.HireDate = &hireDate
	}
	normalizeCompensation(&employee)

	if err := s.employeeRepository.CreateEmployee(ctx, &employee); err != nil {
		s.logger.Error("failed to create employee", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}
	return s.FindEmployee(ctx, employee.ID)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, payload dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error) {
	current, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.Position != nil {
		current.Position = payload.Position
	}
	if payload.Type != nil {
		current.Type = *payload.Type
	}
	if payload.FixedSalary != nil {
		current.FixedSalary = *payload.FixedSalary
	}
	if payload.DailyRate != nil {
		current.DailyRate = *payload.DailyRate
	}
	if payload.HireDate != nil {
		hireDate, err := time.Parse(dateLayout, *payload.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid hire date %q", *payload.HireDate)
		}
		current.HireDate = &hireDate
	}
	normalizeCompensation(current)

	if err := s.employeeRepository.UpdateEmployee(ctx, id, *current); err != nil {
		return nil, err
	}
	return s.FindEmployee(ctx, id)
}

// DeleteEmployee removes the worker together with their service records and
// payment history in one transaction.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepository.FindEmployee(ctx, id); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.dailyRepository.DeleteDailiesByEmployee(ctx, tx, id); err != nil {
			return err
		}
		if err := s.paymentRepository.DeletePaymentsByEmployee(ctx, tx, id); err != nil {
			return err
		}
		return s.employeeRepository.DeleteEmployee(ctx, tx, id)
	})
}

func (s *EmployeeService) GetEmployeeBalance(ctx context.Context, id string) (*types.EmployeeBalance, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	dailies, err := s.dailyRepository.ListDailiesByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepository.ListPaymentsByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	balance := ComputeEmployeeBalance(*employee, dailies, payments)
	return &balance, nil
}

func (s *EmployeeService) ListDailies(ctx context.Context, employeeID string) ([]dto.EmployeeDailyDTO, error) {
	var (
		dailies []entities.EmployeeDaily
		err     error
	)
	if employeeID == "" {
		dailies, err = s.dailyRepository.ListDailies(ctx)
	} else {
		dailies, err = s.dailyRepository.ListDailiesByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.EmployeeDailyDTO, 0, len(dailies))
	for _, d := range dailies {
		out = append(out, mapDaily(d))
	}
	return out, nil
}

func (s *EmployeeService) CreateDaily(ctx context.Context, payload dto.CreateEmployeeDailyDTO) (*dto.EmployeeDailyDTO, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, payload.EmployeeID)
	if err != nil {
		return nil, err
	}
	if err := NormalizeDailyValues(employee.Type, payload.DailyValue, payload.AdditionalValue); err != nil {
		return nil, err
	}

	serviceDate, err := time.Parse(dateLayout, payload.ServiceDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid service date %q", payload.ServiceDate)
	}

	daily := entities.EmployeeDaily{
		ID:              uuid.New().String(),
		EmployeeID:      payload.EmployeeID,
		ServiceDate:     serviceDate,
		DailyValue:      payload.DailyValue,
		AdditionalValue: payload.AdditionalValue,
	}
	if payload.EventID != "" {
		daily.EventID = &payload.EventID
	}
	if payload.Description.Valid {
		daily.Description = &payload.Description.String
	}

	if err := s.dailyRepository.CreateDaily(ctx, &daily); err != nil {
		s.logger.Error("failed to create service record",
			zap.String("employee_id", payload.EmployeeID), zap.Error(err))
		return nil, err
	}

	created, err := s.dailyRepository.FindDaily(ctx, daily.ID)
	if err != nil {
		return nil, err
	}
	result := mapDaily(*created)
	return &result, nil
}

func (s *EmployeeService) UpdateDaily(ctx context.Context, id string, payload dto.UpdateEmployeeDailyDTO) (*dto.EmployeeDailyDTO, error) {
	current, err := s.dailyRepository.FindDaily(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.ServiceDate != nil {
		serviceDate, err := time.Parse(dateLayout, *payload.ServiceDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid service date %q", *payload.ServiceDate)
		}
		current.ServiceDate = serviceDate
	}
	if payload.DailyValue != nil {
		current.DailyValue = *payload.DailyValue
	}
	if payload.AdditionalValue != nil {
		current.AdditionalValue = *payload.AdditionalValue
	}
	if payload.Description.Valid {
		current.Description = &payload.Description.String
	}

	if err := NormalizeDailyValues(current.EmployeeType, current.DailyValue, current.AdditionalValue); err != nil {
		return nil, err
	}

	if err := s.dailyRepository.UpdateDaily(ctx, id, *current); err != nil {
		return nil, err
	}

	updated, err := s.dailyRepository.FindDaily(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapDaily(*updated)
	return &result, nil
}

func (s *EmployeeService) DeleteDaily(ctx context.Context, id string) error {
	return s.dailyRepository.DeleteDaily(ctx, id)
}

func (s *EmployeeService) ListPayments(ctx context.Context, employeeID string) ([]dto.EmployeePaymentDTO, error) {
	var (
		payments []entities.EmployeePayment
		err      error
	)
	if employeeID == "" {
		payments, err = s.paymentRepository.ListPayments(ctx)
	} else {
		payments, err = s.paymentRepository.ListPaymentsByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.EmployeePaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, mapPayment(p))
	}
	return out, nil
}

func (s *EmployeeService) CreatePayment(ctx context.Context, payload dto.CreateEmployeePaymentDTO) (*dto.EmployeePaymentDTO, error) {
	if _, err := s.employeeRepository.FindEmployee(ctx, payload.EmployeeID); err != nil {
		return nil, err
	}
	if !payload.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be positive, got %s", payload.Amount)
	}

	paymentDate, err := time.Parse(dateLayout, payload.PaymentDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment date %q", payload.PaymentDate)
	}

	payment := entities.EmployeePayment{
		ID:          uuid.New().String(),
		EmployeeID:  payload.EmployeeID,
		PaymentDate: paymentDate,
		Amount:      payload.Amount,
	}
	if payload.Description.Valid {
		payment.Description = &payload.Description.String
	}
	if payload.ReceiptURL.Valid {
		payment.ReceiptURL = &payload.ReceiptURL.String
	}

	if err := s.paymentRepository.CreatePayment(ctx, &payment); err != nil {
		s.logger.Error("failed to create payment",
			zap.String("employee_id", payload.EmployeeID), zap.Error(err))
		return nil, err
	}

	created, err := s.paymentRepository.FindPayment(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	result := mapPayment(*created)
	return &result, nil
}

func (s *EmployeeService) DeletePayment(ctx context.Context, id string) error {
	return s.paymentRepository.DeletePayment(ctx, id)
}
