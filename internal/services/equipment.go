package services

import (
	"context"
	"fmt"
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
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id string) error
	AddUnit(ctx context.Context, equipmentID string) (*dto.EquipmentDTO, error)
	UpdateUnitStatus(ctx context.Context, unitID string, payload dto.UpdateUnitStatusDTO) (*dto.EquipmentDTO, error)
	UpdateUnitIdentifier(ctx context.Context, unitID string, payload dto.UpdateUnitIdentifierDTO) error
	DeleteUnit(ctx context.Context, unitID string) error
	RecountEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	RecountAllEquipment(ctx context.Context) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	unitRepository      repositories.EquipmentUnitRepositoryInterface
	txManager           repositories.TxManagerInterface
	cache               repositories.CacheRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	unitRepository repositories.EquipmentUnitRepositoryInterface,
	txManager repositories.TxManagerInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		unitRepository:      unitRepository,
		txManager:           txManager,
		cache:               cache,
		logger:              logger,
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func mapUnit(u entities.EquipmentUnit) dto.EquipmentUnitDTO {
	return dto.EquipmentUnitDTO{
		ID:             u.ID,
		EquipmentID:    u.EquipmentID,
		UnitIdentifier: u.UnitIdentifier,
		Status:         u.Status,
		CurrentEventID: u.CurrentEventID,
	}
}

func mapEquipment(e entities.Equipment) dto.EquipmentDTO {
	out := dto.EquipmentDTO{
		ID:                  e.ID,
		Name:                e.Name,
		Category:            e.Category,
		Dimensions:          e.Dimensions,
		Weight:              e.Weight,
		TotalQuantity:       e.TotalQuantity,
		AvailableQuantity:   e.AvailableQuantity,
		MaintenanceQuantity: e.MaintenanceQuantity,
		UnavailableQuantity: e.UnavailableQuantity,
		CreatedAt:           formatTime(e.CreatedAt),
		UpdatedAt:           formatTime(e.UpdatedAt),
	}
	for _, u := range e.Units {
		out.Units = append(out.Units, mapUnit(u))
	}
	return out
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	list, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EquipmentDTO, 0, len(list))
	for _, e := range list {
		out = append(out, mapEquipment(e))
	}
	return out, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	return s.loadEquipment(ctx, id)
}

// loadEquipment returns the catalog row with its unit set attached.
func (s *EquipmentService) loadEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	units, err := s.unitRepository.ListUnits(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	equipment.Units = units

	result := mapEquipment(*equipment)
	return &result, nil
}

// CreateEquipment registers a catalog entry and generates its initial unit
// set in one transaction: the caller's count is the last time a quantity is
// taken at face value, the counters come from the generated units.
func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment := entities.Equipment{
		ID:         uuid.New().String(),
		Name:       payload.Name,
		Category:   payload.Category,
		Dimensions: payload.Dimensions,
		Weight:     payload.Weight,
	}

	units := make([]entities.EquipmentUnit, 0, payload.TotalQuantity)
	for i := 1; i <= payload.TotalQuantity; i++ {
		units = append(units, entities.EquipmentUnit{
			ID:             uuid.New().String(),
			EquipmentID:    equipment.ID,
			UnitIdentifier: fmt.Sprintf("%s #%d", payload.Name, i),
			Status:         constants.UnitStatusAvailable,
		})
	}

	rollup, err := ComputeEquipmentRollup(units)
	if err != nil {
		return nil, err
	}
	equipment.TotalQuantity = rollup.Total
	equipment.AvailableQuantity = rollup.Available
	equipment.MaintenanceQuantity = rollup.InMaintenance
	equipment.UnavailableQuantity = rollup.Unavailable

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.equipmentRepository.CreateEquipment(ctx, tx, &equipment); err != nil {
			return err
		}
		return s.unitRepository.InsertUnits(ctx, tx, units)
	})
	if err != nil {
		s.logger.Error("failed to create equipment", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx)
	return s.loadEquipment(ctx, equipment.ID)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	current, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.Category != nil {
		current.Category = *payload.Category
	}
	if payload.Dimensions != nil {
		current.Dimensions = *payload.Dimensions
	}
	if payload.Weight != nil {
		current.Weight = *payload.Weight
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, id, *current); err != nil {
		return nil, err
	}
	return s.loadEquipment(ctx, id)
}

// DeleteEquipment removes the catalog row and every unit under it, refusing
// while any unit is still committed to an event or leased out.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	units, err := s.unitRepository.ListUnits(ctx, nil, id)
	if err != nil {
		return err
	}
	for _, u := range units {
		if constants.IsUnitInActiveUse(u.Status) {
			return apperrors.NewPreconditionFailed(
				"unit %q is still %s, return it before deleting the equipment", u.UnitIdentifier, u.Status)
		}
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.unitRepository.DeleteUnitsByEquipment(ctx, tx, id); err != nil {
			return err
		}
		return s.equipmentRepository.DeleteEquipment(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

// AddUnit appends one available unit to an existing equipment, continuing
// the generated numbering, and recomputes the counters in the same
// transaction.
func (s *EquipmentService) AddUnit(ctx context.Context, equipmentID string) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	existing, err := s.unitRepository.ListUnits(ctx, nil, equipmentID)
	if err != nil {
		return nil, err
	}

	unit := entities.EquipmentUnit{
		ID:             uuid.New().String(),
		EquipmentID:    equipmentID,
		UnitIdentifier: fmt.Sprintf("%s #%d", equipment.Name, len(existing)+1),
		Status:         constants.UnitStatusAvailable,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.unitRepository.InsertUnits(ctx, tx, []entities.EquipmentUnit{unit}); err != nil {
			return err
		}
		return s.recountInTx(ctx, tx, equipmentID)
	})
	if err != nil {
		s.logger.Error("failed to add unit", zap.String("equipment_id", equipmentID), zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx)
	return s.loadEquipment(ctx, equipmentID)
}

// UpdateUnitStatus moves one unit between states and recomputes the parent's
// cached counters in the same transaction. Leaving in_use_at_event always
// drops the event link.
func (s *EquipmentService) UpdateUnitStatus(ctx context.Context, unitID string, payload dto.UpdateUnitStatusDTO) (*dto.EquipmentDTO, error) {
	unit, err := s.unitRepository.FindUnit(ctx, nil, unitID)
	if err != nil {
		return nil, err
	}

	var eventID *string
	if payload.Status == constants.UnitStatusInUseAtEvent {
		eventID = payload.CurrentEventID
		if eventID == nil {
			eventID = unit.CurrentEventID
		}
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.unitRepository.UpdateUnitStatus(ctx, tx, unitID, payload.Status, eventID); err != nil {
			return err
		}
		return s.recountInTx(ctx, tx, unit.EquipmentID)
	})
	if err != nil {
		s.logger.Error("failed to update unit status",
			zap.String("unit_id", unitID), zap.String("status", payload.Status), zap.Error(err))
		return nil, err
	}

	s.invalidateDashboard(ctx)
	return s.loadEquipment(ctx, unit.EquipmentID)
}

func (s *EquipmentService) UpdateUnitIdentifier(ctx context.Context, unitID string, payload dto.UpdateUnitIdentifierDTO) error {
	return s.unitRepository.UpdateUnitIdentifier(ctx, unitID, payload.UnitIdentifier)
}

// DeleteUnit removes one unit and recomputes the parent's counters. A unit in
// active use is never deleted. When the last unit goes, the catalog row goes
// with it.
func (s *EquipmentService) DeleteUnit(ctx context.Context, unitID string) error {
	unit, err := s.unitRepository.FindUnit(ctx, nil, unitID)
	if err != nil {
		return err
	}
	if constants.IsUnitInActiveUse(unit.Status) {
		return apperrors.NewPreconditionFailed(
			"unit %q is still %s and cannot be deleted", unit.UnitIdentifier, unit.Status)
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.unitRepository.DeleteUnit(ctx, tx, unitID); err != nil {
			return err
		}

		remaining, err := s.unitRepository.ListUnits(ctx, tx, unit.EquipmentID)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return s.equipmentRepository.DeleteEquipment(ctx, tx, unit.EquipmentID)
		}

		rollup, err := ComputeEquipmentRollup(remaining)
		if err != nil {
			return err
		}
		return s.equipmentRepository.UpdateQuantities(ctx, tx, unit.EquipmentID, rollup)
	})
	if err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

func (s *EquipmentService) recountInTx(ctx context.Context, tx pgx.Tx, equipmentID string) error {
	units, err := s.unitRepository.ListUnits(ctx, tx, equipmentID)
	if err != nil {
		return err
	}
	rollup, err := ComputeEquipmentRollup(units)
	if err != nil {
		return err
	}
	return s.equipmentRepository.UpdateQuantities(ctx, tx, equipmentID, rollup)
}

// RecountEquipment rebuilds the cached counters from the unit set on demand,
// repairing any drift left by out-of-band writes.
func (s *EquipmentService) RecountEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	if _, err := s.equipmentRepository.FindEquipment(ctx, id); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.recountInTx(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}
	return s.loadEquipment(ctx, id)
}

func (s *EquipmentService) RecountAllEquipment(ctx context.Context) error {
	ids, err := s.equipmentRepository.ListEquipmentIDs(ctx)
	if err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		for _, id := range ids {
			if err := s.recountInTx(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *EquipmentService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("failed to drop dashboard cache", zap.Error(err))
	}
}
