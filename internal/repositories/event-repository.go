package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-system/internal/entities"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

const eventTable = "events"
const eventFields = "id, client_name, event_location, setup_date, setup_time, event_date, total_cost, status, notes, created_at, updated_at"

type EventRepositoryInterface interface {
	GetEvents(ctx context.Context, filter types.Filter) ([]entities.Event, uint64, error)
	GetEventsBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error)
	FindEvent(ctx context.Context, id string) (*entities.Event, error)
	CreateEvent(ctx context.Context, q Querier, e *entities.Event) error
	UpdateEvent(ctx context.Context, q Querier, id string, e entities.Event) error
	DeleteEvent(ctx context.Context, q Querier, id string) error

	ListEquipmentItems(ctx context.Context, eventID string) ([]entities.EventEquipmentItem, error)
	InsertEquipmentItems(ctx context.Context, q Querier, items []entities.EventEquipmentItem) error
	DeleteEquipmentItems(ctx context.Context, q Querier, eventID string) error
}

type EventRepository struct {
	storage *pgxpool.Pool
}

func NewEventRepository(storage *pgxpool.Pool) EventRepositoryInterface {
	return &EventRepository{storage: storage}
}

func (r *EventRepository) GetEvents(ctx context.Context, filter types.Filter) ([]entities.Event, uint64, error) {
	builder := sq.Select(eventFields).
		From(eventTable).
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").
		From(eventTable).
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"client_name": pattern},
			sq.ILike{"event_location": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if status, ok := filter.Filter["status"]; ok {
		builder = builder.Where(sq.Eq{"status": status})
		countBuilder = countBuilder.Where(sq.Eq{"status": status})
	}

	order := "event_date DESC"
	for field, dir := range filter.Sort {
		if field == "event_date" || field == "setup_date" || field == "client_name" || field == "created_at" {
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

	list, err := scanEvents(rows)
	if err != nil {
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

// GetEventsBetween backs the calendar view: every event whose setup date or
// event date falls in the window.
func (r *EventRepository) GetEventsBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE (event_date >= $1 AND event_date <= $2)
		   OR (setup_date >= $1 AND setup_date <= $2)
		ORDER BY event_date
	`, eventFields, eventTable)

	rows, err := r.storage.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]entities.Event, error) {
	var list []entities.Event
	for rows.Next() {
		var e entities.Event
		if err := rows.Scan(
			&e.ID, &e.ClientName, &e.EventLocation, &e.SetupDate, &e.SetupTime, &e.EventDate,
			&e.TotalCost, &e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EventRepository) FindEvent(ctx context.Context, id string) (*entities.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", eventFields, eventTable)

	var e entities.Event
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ClientName, &e.EventLocation, &e.SetupDate, &e.SetupTime, &e.EventDate,
		&e.TotalCost, &e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, q Querier, e *entities.Event) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, client_name, event_location, setup_date, setup_time, event_date, total_cost, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, eventTable)

	_, err := q.Exec(ctx, query,
		e.ID, e.ClientName, e.EventLocation, e.SetupDate, e.SetupTime, e.EventDate,
		e.TotalCost, e.Status, e.Notes,
	)
	return err
}

func (r *EventRepository) UpdateEvent(ctx context.Context, q Querier, id string, e entities.Event) error {
	if q == nil {
		q = r.storage
	}
	query := fmt.Sprintf(`
        UPDATE %s
        SET client_name = $1, event_location = $2, setup_date = $3, setup_time = $4, event_date = $5, total_cost = $6, status = $7, notes = $8, updated_at = CURRENT_TIMESTAMP
        WHERE id = $9
    `, eventTable)

	result, err := q.Exec(ctx, query,
		e.ClientName, e.EventLocation, e.SetupDate, e.SetupTime, e.EventDate,
		e.TotalCost, e.Status, e.Notes, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, q Querier, id string) error {
	result, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", eventTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const eventEquipmentItemTable = "event_equipment_items"

func (r *EventRepository) ListEquipmentItems(ctx context.Context, eventID string) ([]entities.EventEquipmentItem, error) {
	query := fmt.Sprintf(`
		SELECT i.id, i.event_id, i.equipment_id, i.quantity, i.created_at, i.updated_at, eq.name
		FROM %s i
			JOIN equipment eq ON i.equipment_id = eq.id
		WHERE i.event_id = $1
		ORDER BY eq.name
	`, eventEquipmentItemTable)

	rows, err := r.storage.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.EventEquipmentItem
	for rows.Next() {
		var i entities.EventEquipmentItem
		if err := rows.Scan(
			&i.ID, &i.EventID, &i.EquipmentID, &i.Quantity, &i.CreatedAt, &i.UpdatedAt, &i.EquipmentName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *EventRepository) InsertEquipmentItems(ctx context.Context, q Querier, items []entities.EventEquipmentItem) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (id, event_id, equipment_id, quantity)
        VALUES ($1, $2, $3, $4)
    `, eventEquipmentItemTable)

	for _, i := range items {
		if _, err := q.Exec(ctx, query, i.ID, i.EventID, i.EquipmentID, i.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *EventRepository) DeleteEquipmentItems(ctx context.Context, q Querier, eventID string) error {
	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE event_id = $1", eventEquipmentItemTable), eventID)
	return err
}
