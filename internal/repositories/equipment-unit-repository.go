package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-system/internal/entities"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
)

const equipmentUnitTable = "equipment_units"
const equipmentUnitFields = "id, equipment_id, unit_identifier, status, current_event_id, created_at, updated_at"

type EquipmentUnitRepositoryInterface interface {
	ListUnits(ctx context.Context, q Querier, equipmentID string) ([]entities.EquipmentUnit, error)
	FindUnit(ctx context.Context, q Querier, id string) (*entities.EquipmentUnit, error)
	InsertUnits(ctx context.Context, q Querier, units []entities.EquipmentUnit) error
	UpdateUnitStatus(ctx context.Context, q Querier, id string, status string, currentEventID *string) error
	UpdateUnitIdentifier(ctx context.Context, id string, identifier string) error
	DeleteUnit(ctx context.Context, q Querier, id string) error
	DeleteUnitsByEquipment(ctx context.Context, q Querier, equipmentID string) error
	ReleaseUnitsByEvent(ctx context.Context, q Querier, eventID string) ([]string, error)
}

type EquipmentUnitRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentUnitRepository(storage *pgxpool.Pool) EquipmentUnitRepositoryInterface {
	return &EquipmentUnitRepository{storage: storage}
}

func (r *EquipmentUnitRepository) ListUnits(ctx context.Context, q Querier, equipmentID string) ([]entities.EquipmentUnit, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE equipment_id = $1
		ORDER BY unit_identifier
	`, equipmentUnitFields, equipmentUnitTable)

	rows, err := q.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUnits(rows)
}

func scanUnits(rows pgx.Rows) ([]entities.EquipmentUnit, error) {
	var units []entities.EquipmentUnit
	for rows.Next() {
		var u entities.EquipmentUnit
		if err := rows.Scan(
			&u.ID, &u.EquipmentID, &u.UnitIdentifier, &u.Status, &u.CurrentEventID,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *EquipmentUnitRepository) FindUnit(ctx context.Context, q Querier, id string) (*entities.EquipmentUnit, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentUnitFields, equipmentUnitTable)

	var u entities.EquipmentUnit
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.EquipmentID, &u.UnitIdentifier, &u.Status, &u.CurrentEventID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *EquipmentUnitRepository) InsertUnits(ctx context.Context, q Querier, units []entities.EquipmentUnit) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, equipment_id, unit_identifier, status)
        VALUES ($1, $2, $3, $4)
    `, equipmentUnitTable)

	for _, u := range units {
		if _, err := q.Exec(ctx, query, u.ID, u.EquipmentID, u.UnitIdentifier, u.Status); err != nil {
			return err
		}
	}
	return nil
}

func (r *EquipmentUnitRepository) UpdateUnitStatus(ctx context.Context, q Querier, id string, status string, currentEventID *string) error {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1, current_event_id = $2, updated_at = CURRENT_TIMESTAMP
        WHERE id = $3
    `, equipmentUnitTable)

	result, err := q.Exec(ctx, query, status, currentEventID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentUnitRepository) UpdateUnitIdentifier(ctx context.Context, id string, identifier string) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET unit_identifier = $1, updated_at = CURRENT_TIMESTAMP
        WHERE id = $2
    `, equipmentUnitTable)

	result, err := r.storage.Exec(ctx, query, identifier, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentUnitRepository) DeleteUnit(ctx context.Context, q Querier, id string) error {
	result, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentUnitTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentUnitRepository) DeleteUnitsByEquipment(ctx context.Context, q Querier, equipmentID string) error {
	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE equipment_id = $1", equipmentUnitTable), equipmentID)
	return err
}

// ReleaseUnitsByEvent frees every unit committed to the event and returns the
// distinct equipment ids that need a counter recompute afterwards.
func (r *EquipmentUnitRepository) ReleaseUnitsByEvent(ctx context.Context, q Querier, eventID string) ([]string, error) {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = '%s', current_event_id = NULL, updated_at = CURRENT_TIMESTAMP
        WHERE current_event_id = $1
        RETURNING equipment_id
    `, equipmentUnitTable, constants.UnitStatusAvailable)

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var equipmentIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			equipmentIDs = append(equipmentIDs, id)
		}
	}
	return equipmentIDs, rows.Err()
}
