package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"rental-system/pkg/constants"
	"rental-system/pkg/types"
)

type DashboardRepositoryInterface interface {
	GetEmployeeCounts(ctx context.Context, stats *types.DashboardStats) error
	GetEquipmentTotals(ctx context.Context, stats *types.DashboardStats) error
	GetEventCounts(ctx context.Context, stats *types.DashboardStats) error
	GetMonthlyRevenue(ctx context.Context) (decimal.Decimal, error)
	GetMonthlyCosts(ctx context.Context) (decimal.Decimal, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) GetEmployeeCounts(ctx context.Context, stats *types.DashboardStats) error {
	query, args, err := sq.Select(
		"COUNT(*)",
		fmt.Sprintf("COUNT(*) FILTER (WHERE type = '%s')", constants.EmployeeTypeFixed),
		fmt.Sprintf("COUNT(*) FILTER (WHERE type = '%s')", constants.EmployeeTypeFreelancer),
	).From(employeeTable).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	return r.storage.QueryRow(ctx, query, args...).
		Scan(&stats.TotalEmployees, &stats.FixedEmployees, &stats.Freelancers)
}

// GetEquipmentTotals sums the cached per-equipment counters. The rollup
// engine keeps them in step with the unit set on every mutation.
func (r *DashboardRepository) GetEquipmentTotals(ctx context.Context, stats *types.DashboardStats) error {
	query, args, err := sq.Select(
		"COALESCE(SUM(total_quantity), 0)",
		"COALESCE(SUM(available_quantity), 0)",
		"COALESCE(SUM(maintenance_quantity), 0)",
	).From(equipmentTable).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	return r.storage.QueryRow(ctx, query, args...).
		Scan(&stats.TotalEquipment, &stats.AvailableEquipment, &stats.MaintenanceEquipment)
}

func (r *DashboardRepository) GetEventCounts(ctx context.Context, stats *types.DashboardStats) error {
	query, args, err := sq.Select(
		"COUNT(*)",
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", constants.EventStatusCompleted),
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", constants.EventStatusPlanned),
	).From(eventTable).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	return r.storage.QueryRow(ctx, query, args...).
		Scan(&stats.TotalEvents, &stats.CompletedEvents, &stats.PlannedEvents)
}

func (r *DashboardRepository) GetMonthlyRevenue(ctx context.Context) (decimal.Decimal, error) {
	query, args, err := sq.Select("COALESCE(SUM(total_cost), 0)").
		From(eventTable).
		Where(sq.Eq{"status": constants.EventStatusCompleted}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var revenue decimal.Decimal
	err = r.storage.QueryRow(ctx, query, args...).Scan(&revenue)
	return revenue, err
}

// GetMonthlyCosts counts fixed-salary base pay only. Freelancer fees and
// bonuses are intentionally excluded here; the finance screen has the
// broader view.
func (r *DashboardRepository) GetMonthlyCosts(ctx context.Context) (decimal.Decimal, error) {
	query, args, err := sq.Select("COALESCE(SUM(fixed_salary), 0)").
		From(employeeTable).
		Where(sq.Eq{"type": constants.EmployeeTypeFixed}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var costs decimal.Decimal
	err = r.storage.QueryRow(ctx, query, args...).Scan(&costs)
	return costs, err
}
