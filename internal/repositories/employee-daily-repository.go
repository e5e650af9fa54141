package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
)

const employeeDailyTable = "employee_dailies"

// Dailies are always read joined with the employee: the balance and event
// rollup computations group rows by the employee's type.
const employeeDailyJoinedFields = `d.id, d.employee_id, d.event_id, d.service_date, d.daily_value, d.additional_value, d.description, d.created_at, d.updated_at, e.name, e.type`

type EmployeeDailyRepositoryInterface interface {
	ListDailies(ctx context.Context) ([]entities.EmployeeDaily, error)
	ListDailiesByEmployee(ctx context.Context, employeeID string) ([]entities.EmployeeDaily, error)
	ListDailiesByEvent(ctx context.Context, eventID string) ([]entities.EmployeeDaily, error)
	FindDaily(ctx context.Context, id string) (*entities.EmployeeDaily, error)
	CreateDaily(ctx context.Context, d *entities.EmployeeDaily) error
	UpdateDaily(ctx context.Context, id string, d entities.EmployeeDaily) error
	DeleteDaily(ctx context.Context, id string) error
	DeleteDailiesByEmployee(ctx context.Context, q Querier, employeeID string) error
}

type EmployeeDailyRepository struct {
	storage *pgxpool.Pool
}

func NewEmployeeDailyRepository(storage *pgxpool.Pool) EmployeeDailyRepositoryInterface {
	return &EmployeeDailyRepository{storage: storage}
}

func (r *EmployeeDailyRepository) list(ctx context.Context, where string, args ...interface{}) ([]entities.EmployeeDaily, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s d
			JOIN employees e ON d.employee_id = e.id
		%s
		ORDER BY d.service_date DESC
	`, employeeDailyJoinedFields, employeeDailyTable, where)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dailies []entities.EmployeeDaily
	for rows.Next() {
		var d entities.EmployeeDaily
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.EventID, &d.ServiceDate, &d.DailyValue, &d.AdditionalValue,
			&d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeName, &d.EmployeeType,
		); err != nil {
			return nil, err
		}
		dailies = append(dailies, d)
	}
	return dailies, rows.Err()
}

func (r *EmployeeDailyRepository) ListDailies(ctx context.Context) ([]entities.EmployeeDaily, error) {
	return r.list(ctx, "")
}

func (r *EmployeeDailyRepository) ListDailiesByEmployee(ctx context.Context, employeeID string) ([]entities.EmployeeDaily, error) {
	return r.list(ctx, "WHERE d.employee_id = $1", employeeID)
}

func (r *EmployeeDailyRepository) ListDailiesByEvent(ctx context.Context, eventID string) ([]entities.EmployeeDaily, error) {
	return r.list(ctx, "WHERE d.event_id = $1", eventID)
}

func (r *EmployeeDailyRepository) FindDaily(ctx context.Context, id string) (*entities.EmployeeDaily, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s d
			JOIN employees e ON d.employee_id = e.id
		WHERE d.id = $1
	`, employeeDailyJoinedFields, employeeDailyTable)

	var d entities.EmployeeDaily
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.EmployeeID, &d.EventID, &d.ServiceDate, &d.DailyValue, &d.AdditionalValue,
		&d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeName, &d.EmployeeType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *EmployeeDailyRepository) CreateDaily(ctx context.Context, d *entities.EmployeeDaily) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, employee_id, event_id, service_date, daily_value, additional_value, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, employeeDailyTable)

	_, err := r.storage.Exec(ctx, query,
		d.ID, d.EmployeeID, d.EventID, d.ServiceDate, d.DailyValue, d.AdditionalValue, d.Description,
	)
	return err
}

func (r *EmployeeDailyRepository) UpdateDaily(ctx context.Context, id string, d entities.EmployeeDaily) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET service_date = $1, daily_value = $2, additional_value = $3, description = $4, updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
    `, employeeDailyTable)

	result, err := r.storage.Exec(ctx, query,
		d.ServiceDate, d.DailyValue, d.AdditionalValue, d.Description, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeeDailyRepository) DeleteDaily(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", employeeDailyTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeeDailyRepository) DeleteDailiesByEmployee(ctx context.Context, q Querier, employeeID string) error {
	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE employee_id = $1", employeeDailyTable), employeeID)
	return err
}
