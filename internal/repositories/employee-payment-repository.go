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

const employeePaymentTable = "employee_payments"
const employeePaymentJoinedFields = `p.id, p.employee_id, p.payment_date, p.amount, p.description, p.receipt_url, p.created_at, p.updated_at, e.name`

type EmployeePaymentRepositoryInterface interface {
	ListPayments(ctx context.Context) ([]entities.EmployeePayment, error)
	ListPaymentsByEmployee(ctx context.Context, employeeID string) ([]entities.EmployeePayment, error)
	FindPayment(ctx context.Context, id string) (*entities.EmployeePayment, error)
	CreatePayment(ctx context.Context, p *entities.EmployeePayment) error
	DeletePayment(ctx context.Context, id string) error
	DeletePaymentsByEmployee(ctx context.Context, q Querier, employeeID string) error
}

type EmployeePaymentRepository struct {
	storage *pgxpool.Pool
}

func NewEmployeePaymentRepository(storage *pgxpool.Pool) EmployeePaymentRepositoryInterface {
	return &EmployeePaymentRepository{storage: storage}
}

func (r *EmployeePaymentRepository) list(ctx context.Context, where string, args ...interface{}) ([]entities.EmployeePayment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
			JOIN employees e ON p.employee_id = e.id
		%s
		ORDER BY p.payment_date DESC
	`, employeePaymentJoinedFields, employeePaymentTable, where)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []entities.EmployeePayment
	for rows.Next() {
		var p entities.EmployeePayment
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PaymentDate, &p.Amount, &p.Description, &p.ReceiptURL,
			&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *EmployeePaymentRepository) ListPayments(ctx context.Context) ([]entities.EmployeePayment, error) {
	return r.list(ctx, "")
}

func (r *EmployeePaymentRepository) ListPaymentsByEmployee(ctx context.Context, employeeID string) ([]entities.EmployeePayment, error) {
	return r.list(ctx, "WHERE p.employee_id = $1", employeeID)
}

func (r *EmployeePaymentRepository) FindPayment(ctx context.Context, id string) (*entities.EmployeePayment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
			JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`, employeePaymentJoinedFields, employeePaymentTable)

	var p entities.EmployeePayment
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PaymentDate, &p.Amount, &p.Description, &p.ReceiptURL,
		&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *EmployeePaymentRepository) CreatePayment(ctx context.Context, p *entities.EmployeePayment) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, employee_id, payment_date, amount, description, receipt_url)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, employeePaymentTable)

	_, err := r.storage.Exec(ctx, query,
		p.ID, p.EmployeeID, p.PaymentDate, p.Amount, p.Description, p.ReceiptURL,
	)
	return err
}

func (r *EmployeePaymentRepository) DeletePayment(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", employeePaymentTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeePaymentRepository) DeletePaymentsByEmployee(ctx context.Context, q Querier, employeeID string) error {
	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE employee_id = $1", employeePaymentTable), employeeID)
	return err
}
