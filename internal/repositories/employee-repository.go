package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

const employeeTable = "employees"
const employeeFields = "id, name, position, type, fixed_salary, daily_rate, hire_date, created_at, updated_at"

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error)
	FindEmployee(ctx context.Context, id string) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, e *entities.Employee) error
	UpdateEmployee(ctx context.Context, id string, e entities.Employee) error
	DeleteEmployee(ctx context.Context, q Querier, id string) error
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
}

func NewEmployeeRepository(storage *pgxpool.Pool) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage}
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	builder := sq.Select(employeeFields).
		From(employeeTable).
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(employeeTable).
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"position": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if empType, ok := filter.Filter["type"]; ok {
		builder = builder.Where(sq.Eq{"type": empType})
		countBuilder = countBuilder.Where(sq.Eq{"type": empType})
	}

	order := "name ASC"
	for field, dir := range filter.Sort {
		if field == "name" || field == "hire_date" || field == "created_at" {
			order = fmt.Sprintf("%s %s", field, strings.ToUpper(dir))
		}
	}
	builder = builder.OrderBy(order)
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Employee
	for rows.Next() {
		var e entities.Employee
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Position, &e.Type, &e.FixedSalary, &e.DailyRate, &e.HireDate,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", employeeFields, employeeTable)

	var e entities.Employee
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Position, &e.Type, &e.FixedSalary, &e.DailyRate, &e.HireDate,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, e *entities.Employee) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, name, position, type, fixed_salary, daily_rate, hire_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, employeeTable)

	_, err := r.storage.Exec(ctx, query,
		e.ID, e.Name, e.Position, e.Type, e.FixedSalary, e.DailyRate, e.HireDate,
	)
	return err
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id string, e entities.Employee) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET name = $1, position = $2, type = $3, fixed_salary = $4, daily_rate = $5, hire_date = $6, updated_at = CURRENT_TIMESTAMP
        WHERE id = $7
    `, employeeTable)

	result, err := r.storage.Exec(ctx, query,
		e.Name, e.Position, e.Type, e.FixedSalary, e.DailyRate, e.HireDate, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, q Querier, id string) error {
	result, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", employeeTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
