package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
	"rental-system/pkg/utils"
)

type EventServiceInterface interface {
	GetEvents(ctx context.Context, filter types.Filter) ([]dto.EventDTO, uint64, error)
	GetCalendar(ctx context.Context, from, to string) (map[string][]dto.EventDTO, error)
	FindEvent(ctx context.Context, id string) (*dto.EventDTO, error)
	CreateEvent(ctx context.Context, payload dto.CreateEventDTO) (*dto.EventDTO, error)
	UpdateEvent(ctx context.Context, id string, payload dto.UpdateEventDTO) (*dto.EventDTO, error)
	ReplaceEquipmentItems(ctx context.Context, id string, items []dto.EventEquipmentItemDTO) (*dto.EventDTO, error)
	DeleteEvent(ctx context.Context, id string) error
}

type EventService struct {
	eventRepository     repositories.EventRepositoryInterface
	unitRepository      repositories.EquipmentUnitRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	txManager           repositories.TxManagerInterface
	cache               repositories.CacheRepositoryInterface
	logger              *zap.Logger
}

func NewEventService(
	eventRepository repositories.EventRepositoryInterface,
	unitRepository repositories.EquipmentUnitRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) EventServiceInterface {
	return &EventService{
		eventRepository:     eventRepository,
		unitRepository:      unitRepository,
		equipmentRepository: equipmentRepository,
		txManager:           txManager,
		cache:               cache,
		logger:              logger,
	}
}

func mapEventItem(it entities.EventEquipmentItem) dto.EventEquipmentItemResponseDTO {
	return dto.EventEquipmentItemResponseDTO{
		ID:            it.ID,
		EquipmentID:   it.EquipmentID,
		EquipmentName: it.EquipmentName,
		Quantity:      it.Quantity,
	}
}

func mapEvent(e entities.Event) dto.EventDTO {
	out := dto.EventDTO{
		ID:            e.ID,
		ClientName:    e.ClientName,
		EventLocation: e.EventLocation,
		SetupDate:     e.SetupDate.Format(dateLayout),
		SetupTime:     utils.SafeDeref(e.SetupTime),
		EventDate:     e.EventDate.Format(dateLayout),
		TotalCost:     e.TotalCost,
		Status:        e.Status,
		Notes:         utils.SafeDeref(e.Notes),
		CreatedAt:     formatTime(e.CreatedAt),
		UpdatedAt:     formatTime(e.UpdatedAt),
	}
	for _, it := range e.EquipmentItems {
		out.EquipmentItems = append(out.EquipmentItems, mapEventItem(it))
	}
	return out
}

func (s *EventService) GetEvents(ctx context.Context, filter types.Filter) ([]dto.EventDTO, uint64, error) {
	list, total, err := s.eventRepository.GetEvents(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EventDTO, 0, len(list))
	for _, e := range list {
		out = append(out, mapEvent(e))
	}
	return out, total, nil
}

// GetCalendar groups events by event date for the calendar view. The range
// defaults to the current month when either bound is missing.
func (s *EventService) GetCalendar(ctx context.Context, from, to string) (map[string][]dto.EventDTO, error) {
	var fromDate, toDate time.Time
	if from == "" || to == "" {
		now := time.Now()
		fromDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		toDate = fromDate.AddDate(0, 1, -1)
	} else {
		var err error
		if fromDate, err = time.Parse(dateLayout, from); err != nil {
			return nil, apperrors.NewValidationError("invalid range start %q", from)
		}
		if toDate, err = time.Parse(dateLayout, to); err != nil {
			return nil, apperrors.NewValidationError("invalid range end %q", to)
		}
	}
	if toDate.Before(fromDate) {
		return nil, apperrors.NewValidationError("range end %s precedes start %s", to, from)
	}

	events, err := s.eventRepository.GetEventsBetween(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]dto.EventDTO)
	for _, e := range events {
		day := e.EventDate.Format(dateLayout)
		grouped[day] = append(grouped[day], mapEvent(e))
	}
	return grouped, nil
}

func (s *EventService) FindEvent(ctx context.Context, id string) (*dto.EventDTO, error) {
	return s.loadEvent(ctx, id)
}

func (s *EventService) loadEvent(ctx context.Context, id string) (*dto.EventDTO, error) {
	event, err := s.eventRepository.FindEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.eventRepository.ListEquipmentItems(ctx, id)
	if err != nil {
		return nil, err
	}
	event.EquipmentItems = items

	result := mapEvent(*event)
	return &result, nil
}

func (s *EventService) buildItems(eventID string, items []dto.EventEquipmentItemDTO) []entities.EventEquipmentItem {
	out := make([]entities.EventEquipmentItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.EventEquipmentItem{
			ID:          uuid.New().String(),
			EventID:     eventID,
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
		})
	}
	return out
}

// checkItemAvailability verifies each requested line against the cached
// availability counter before booking it.
func (s *EventService) checkItemAvailability(ctx context.Context, items []dto.EventEquipmentItemDTO) error {
	for _, it := range items {
		equipment, err := s.equipmentRepository.FindEquipment(ctx, it.EquipmentID)
		if err != nil {
			return err
		}
		if it.Quantity > equipment.AvailableQuantity {
			return apperrors.NewPreconditionFailed(
				"only %d of %q available, %d requested",
				equipment.AvailableQuantity, equipment.Name, it.Quantity)
		}
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, payload dto.CreateEventDTO) (*dto.EventDTO, error) {
	setupDate, err := time.Parse(dateLayout, payload.SetupDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid setup date %q", payload.SetupDate)
	}
	eventDate, err := time.Parse(dateLayout, payload.EventDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid event date %q", payload.EventDate)
	}
	if err := s.checkItemAvailability(ctx, payload.EquipmentItems); err != nil {
		return nil, err
	}

	event := entities.Event{
		ID:            uuid.New().String(),
		ClientName:    payload.ClientName,
		EventLocation: payload.EventLocation,
		SetupDate:     setupDate,
		EventDate:     eventDate,
		TotalCost:     payload.TotalCost,
		Status:        constants.EventStatusPlanned,
	}
	if payload.SetupTime.Valid {
		event.SetupTime = &payload.SetupTime.String
	}
	if payload.Notes.Valid {
		event.Notes = &payload.Notes.String
	}

	items := s.buildItems(event.ID, payload.EquipmentItems)

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.eventRepository.CreateEvent(ctx, tx, &event); err != nil {
			return err
		}
		return s.eventRepository.InsertEquipmentItems(ctx, tx, items)
	})
	if err != nil {
		s.logger.Error("failed to create event", zap.String("client", payload.ClientName), zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx)
	return s.loadEvent(ctx, event.ID)
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, payload dto.UpdateEventDTO) (*dto.EventDTO, error) {
	current, err := s.eventRepository.FindEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.ClientName != nil {
		current.ClientName = *payload.ClientName
	}
	if payload.EventLocation != nil {
		current.EventLocation = *payload.EventLocation
	}
	if payload.SetupDate != nil {
		setupDate, err := time.Parse(dateLayout, *payload.SetupDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid setup date %q", *payload.SetupDate)
		}
		current.SetupDate = setupDate
	}
	if payload.SetupTime.Valid {
		current.SetupTime = &payload.SetupTime.String
	}
	if payload.EventDate != nil {
		eventDate, err := time.Parse(dateLayout, *payload.EventDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid event date %q", *payload.EventDate)
		}
		current.EventDate = eventDate
	}
	if payload.TotalCost != nil {
		current.TotalCost = *payload.TotalCost
	}
	if payload.Notes.Valid {
		current.Notes = &payload.Notes.String
	}

	statusChanged := payload.Status != nil && *payload.Status != current.Status
	if payload.Status != nil {
		current.Status = *payload.Status
	}

	// Closing or cancelling the booking frees its units; the affected
	// equipment counters are recomputed in the same transaction.
	releasing := statusChanged &&
		(current.Status == constants.EventStatusCompleted || current.Status == constants.EventStatusCancelled)

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.eventRepository.UpdateEvent(ctx, tx, id, *current); err != nil {
			return err
		}
		if !releasing {
			return nil
		}
		equipmentIDs, err := s.unitRepository.ReleaseUnitsByEvent(ctx, tx, id)
		if err != nil {
			return err
		}
		return s.recountEquipmentIn(ctx, tx, equipmentIDs)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)
	return s.loadEvent(ctx, id)
}

// ReplaceEquipmentItems swaps the full line item set of an event.
func (s *EventService) ReplaceEquipmentItems(ctx context.Context, id string, items []dto.EventEquipmentItemDTO) (*dto.EventDTO, error) {
	if _, err := s.eventRepository.FindEvent(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkItemAvailability(ctx, items); err != nil {
		return nil, err
	}

	newItems := s.buildItems(id, items)
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.eventRepository.DeleteEquipmentItems(ctx, tx, id); err != nil {
			return err
		}
		return s.eventRepository.InsertEquipmentItems(ctx, tx, newItems)
	})
	if err != nil {
		return nil, err
	}
	return s.loadEvent(ctx, id)
}

// DeleteEvent drops the booking, its line items, and releases any unit still
// committed to it, all in one transaction.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.eventRepository.FindEvent(ctx, id); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipmentIDs, err := s.unitRepository.ReleaseUnitsByEvent(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.recountEquipmentIn(ctx, tx, equipmentIDs); err != nil {
			return err
		}
		if err := s.eventRepository.DeleteEquipmentItems(ctx, tx, id); err != nil {
			return err
		}
		return s.eventRepository.DeleteEvent(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

func (s *EventService) recountEquipmentIn(ctx context.Context, tx pgx.Tx, equipmentIDs []string) error {
	for _, equipmentID := range equipmentIDs {
		units, err := s.unitRepository.ListUnits(ctx, tx, equipmentID)
		if err != nil {
			return err
		}
		rollup, err := ComputeEquipmentRollup(units)
		if err != nil {
			return err
		}
		if err := s.equipmentRepository.UpdateQuantities(ctx, tx, equipmentID, rollup); err != nil {
			return err
		}
	}
	return nil
}

func (s *EventService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("failed to drop dashboard cache", zap.Error(err))
	}
}
