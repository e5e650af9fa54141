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

const equipmentTable = "equipment"
const equipmentFields = "id, name, category, dimensions, weight, total_quantity, available_quantity, maintenance_quantity, unavailable_quantity, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, q Querier, e *entities.Equipment) error
	UpdateEquipment(ctx context.Context, id string, e entities.Equipment) error
	UpdateQuantities(ctx context.Context, q Querier, id string, rollup types.EquipmentRollup) error
	DeleteEquipment(ctx context.Context, q Querier, id string) error
	ListEquipmentIDs(ctx context.Context) ([]string, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	builder := sq.Select(equipmentFields).
		From(equipmentTable).
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(equipmentTable).
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"category": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if category, ok := filter.Filter["category"]; ok {
		builder = builder.Where(sq.Eq{"category": category})
		countBuilder = countBuilder.Where(sq.Eq{"category": category})
	}

	order := "name ASC"
	for field, dir := range filter.Sort {
		if field == "name" || field == "category" || field == "created_at" {
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

	var list []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &e.Dimensions, &e.Weight,
			&e.TotalQuantity, &e.AvailableQuantity, &e.MaintenanceQuantity, &e.UnavailableQuantity,
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

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentFields, equipmentTable)

	var e entities.Equipment
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Category, &e.Dimensions, &e.Weight,
		&e.TotalQuantity, &e.AvailableQuantity, &e.MaintenanceQuantity, &e.UnavailableQuantity,
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

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, q Querier, e *entities.Equipment) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, name, category, dimensions, weight, total_quantity, available_quantity, maintenance_quantity, unavailable_quantity)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, equipmentTable)

	_, err := q.Exec(ctx, query,
		e.ID, e.Name, e.Category, e.Dimensions, e.Weight,
		e.TotalQuantity, e.AvailableQuantity, e.MaintenanceQuantity, e.UnavailableQuantity,
	)
	return err
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, e entities.Equipment) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET name = $1, category = $2, dimensions = $3, weight = $4, updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
    `, equipmentTable)

	result, err := r.storage.Exec(ctx, query, e.Name, e.Category, e.Dimensions, e.Weight, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateQuantities overwrites the cached counters with the recomputed
// rollup. The cache is advisory; it never wins over the unit set.
func (r *EquipmentRepository) UpdateQuantities(ctx context.Context, q Querier, id string, rollup types.EquipmentRollup) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET total_quantity = $1, available_quantity = $2, maintenance_quantity = $3, unavailable_quantity = $4, updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
    `, equipmentTable)

	result, err := q.Exec(ctx, query,
		rollup.Total, rollup.Available, rollup.InMaintenance, rollup.Unavailable, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, q Querier, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) ListEquipmentIDs(ctx context.Context) ([]string, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id FROM %s", equipmentTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
