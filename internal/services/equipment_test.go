package services

import (
	"context"
	"sort"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/internal/repositories"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeEquipmentRepo struct {
	equipment map[string]*entities.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{equipment: make(map[string]*entities.Equipment)}
}

func (r *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	var out []entities.Equipment
	for _, e := range r.equipment {
		out = append(out, *e)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	e, ok := r.equipment[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEquipmentRepo) CreateEquipment(ctx context.Context, q repositories.Querier, e *entities.Equipment) error {
	copied := *e
	r.equipment[e.ID] = &copied
	return nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id string, e entities.Equipment) error {
	if _, ok := r.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	copied := e
	r.equipment[id] = &copied
	return nil
}

func (r *fakeEquipmentRepo) UpdateQuantities(ctx context.Context, q repositories.Querier, id string, rollup types.EquipmentRollup) error {
	e, ok := r.equipment[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.TotalQuantity = rollup.Total
	e.AvailableQuantity = rollup.Available
	e.MaintenanceQuantity = rollup.InMaintenance
	e.UnavailableQuantity = rollup.Unavailable
	return nil
}

func (r *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, q repositories.Querier, id string) error {
	if _, ok := r.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.equipment, id)
	return nil
}

func (r *fakeEquipmentRepo) ListEquipmentIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for id := range r.equipment {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeUnitRepo struct {
	units map[string]*entities.EquipmentUnit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[string]*entities.EquipmentUnit)}
}

func (r *fakeUnitRepo) ListUnits(ctx context.Context, q repositories.Querier, equipmentID string) ([]entities.EquipmentUnit, error) {
	var out []entities.EquipmentUnit
	for _, u := range r.units {
		if u.EquipmentID == equipmentID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitIdentifier < out[j].UnitIdentifier })
	return out, nil
}

func (r *fakeUnitRepo) FindUnit(ctx context.Context, q repositories.Querier, id string) (*entities.EquipmentUnit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUnitRepo) InsertUnits(ctx context.Context, q repositories.Querier, units []entities.EquipmentUnit) error {
	for _, u := range units {
		copied := u
		r.units[u.ID] = &copied
	}
	return nil
}

func (r *fakeUnitRepo) UpdateUnitStatus(ctx context.Context, q repositories.Querier, id string, status string, currentEventID *string) error {
	u, ok := r.units[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Status = status
	u.CurrentEventID = currentEventID
	return nil
}

func (r *fakeUnitRepo) UpdateUnitIdentifier(ctx context.Context, id string, identifier string) error {
	u, ok := r.units[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.UnitIdentifier = identifier
	return nil
}

func (r *fakeUnitRepo) DeleteUnit(ctx context.Context, q repositories.Querier, id string) error {
	if _, ok := r.units[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.units, id)
	return nil
}

func (r *fakeUnitRepo) DeleteUnitsByEquipment(ctx context.Context, q repositories.Querier, equipmentID string) error {
	for id, u := range r.units {
		if u.EquipmentID == equipmentID {
			delete(r.units, id)
		}
	}
	return nil
}

func (r *fakeUnitRepo) ReleaseUnitsByEvent(ctx context.Context, q repositories.Querier, eventID string) ([]string, error) {
	seen := make(map[string]struct{})
	var equipmentIDs []string
	for _, u := range r.units {
		if u.CurrentEventID != nil && *u.CurrentEventID == eventID {
			u.Status = constants.UnitStatusAvailable
			u.CurrentEventID = nil
			if _, ok := seen[u.EquipmentID]; !ok {
				seen[u.EquipmentID] = struct{}{}
				equipmentIDs = append(equipmentIDs, u.EquipmentID)
			}
		}
	}
	return equipmentIDs, nil
}

func newEquipmentServiceForTest(t *testing.T) (EquipmentServiceInterface, *fakeEquipmentRepo, *fakeUnitRepo) {
	t.Helper()
	equipmentRepo := newFakeEquipmentRepo()
	unitRepo := newFakeUnitRepo()
	svc := NewEquipmentService(equipmentRepo, unitRepo, fakeTxManager{}, nil, zap.NewNop())
	return svc, equipmentRepo, unitRepo
}

func TestCreateEquipmentGeneratesUnits(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)

	created, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:          "Folding table",
		Category:      "Furniture",
		Dimensions:    "180x75",
		Weight:        12.5,
		TotalQuantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, created.TotalQuantity)
	assert.Equal(t, 3, created.AvailableQuantity)
	assert.Len(t, created.Units, 3)
	assert.Equal(t, "Folding table #1", created.Units[0].UnitIdentifier)
	assert.Equal(t, "Folding table #3", created.Units[2].UnitIdentifier)

	stored, err := equipmentRepo.FindEquipment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.TotalQuantity)

	units, _ := unitRepo.ListUnits(context.Background(), nil, created.ID)
	assert.Len(t, units, 3)
}

func TestAddUnitContinuesNumberingAndRecounts(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)

	created, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:          "PA speaker",
		Category:      "Sound",
		Dimensions:    "35x32",
		Weight:        18,
		TotalQuantity: 2,
	})
	require.NoError(t, err)

	res, err := svc.AddUnit(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalQuantity)
	assert.Equal(t, 3, res.AvailableQuantity)
	require.Len(t, res.Units, 3)
	assert.Equal(t, "PA speaker #3", res.Units[2].UnitIdentifier)
	assert.Equal(t, constants.UnitStatusAvailable, res.Units[2].Status)

	stored, err := equipmentRepo.FindEquipment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.TotalQuantity)

	units, _ := unitRepo.ListUnits(context.Background(), nil, created.ID)
	assert.Len(t, units, 3)
}

func seedEquipmentWithUnits(t *testing.T, equipmentRepo *fakeEquipmentRepo, unitRepo *fakeUnitRepo, statuses ...string) string {
	t.Helper()
	equipmentID := "eq-1"
	equipmentRepo.equipment[equipmentID] = &entities.Equipment{
		ID: equipmentID, Name: "PA speaker", Category: "Sound",
	}
	for i, s := range statuses {
		id := string(rune('a' + i))
		unitRepo.units[id] = &entities.EquipmentUnit{
			ID:             id,
			EquipmentID:    equipmentID,
			UnitIdentifier: "PA speaker #" + id,
			Status:         s,
		}
	}
	return equipmentID
}

func TestDeleteUnitRejectsActiveUse(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)
	equipmentID := seedEquipmentWithUnits(t, equipmentRepo, unitRepo,
		constants.UnitStatusLeasedOut, constants.UnitStatusAvailable)

	err := svc.DeleteUnit(context.Background(), "a")
	require.Error(t, err)

	var preconditionErr *apperrors.PreconditionFailedError
	assert.ErrorAs(t, err, &preconditionErr)

	// Nothing was deleted.
	units, _ := unitRepo.ListUnits(context.Background(), nil, equipmentID)
	assert.Len(t, units, 2)
}

func TestDeleteUnitRecomputesCounters(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)
	equipmentID := seedEquipmentWithUnits(t, equipmentRepo, unitRepo,
		constants.UnitStatusAvailable, constants.UnitStatusInMaintenance, constants.UnitStatusAvailable)

	err := svc.DeleteUnit(context.Background(), "a")
	require.NoError(t, err)

	stored, err := equipmentRepo.FindEquipment(context.Background(), equipmentID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TotalQuantity)
	assert.Equal(t, 1, stored.AvailableQuantity)
	assert.Equal(t, 1, stored.MaintenanceQuantity)
	assert.Equal(t, 0, stored.UnavailableQuantity)
}

func TestDeleteLastUnitDeletesEquipment(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)
	equipmentID := seedEquipmentWithUnits(t, equipmentRepo, unitRepo, constants.UnitStatusAvailable)

	err := svc.DeleteUnit(context.Background(), "a")
	require.NoError(t, err)

	_, err = equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	units, _ := unitRepo.ListUnits(context.Background(), nil, equipmentID)
	assert.Empty(t, units)
}

func TestDeleteEquipmentRejectsWhileUnitsInUse(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)
	equipmentID := seedEquipmentWithUnits(t, equipmentRepo, unitRepo,
		constants.UnitStatusAvailable, constants.UnitStatusInUseAtEvent)

	err := svc.DeleteEquipment(context.Background(), equipmentID)
	require.Error(t, err)

	var preconditionErr *apperrors.PreconditionFailedError
	assert.ErrorAs(t, err, &preconditionErr)

	_, err = equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.NoError(t, err)
}

func TestDeleteEquipmentCascadesUnits(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)
	equipmentID := seedEquipmentWithUnits(t, equipmentRepo, unitRepo,
		constants.UnitStatusAvailable, constants.UnitStatusInMaintenance)

	err := svc.DeleteEquipment(context.Background(), equipmentID)
	require.NoError(t, err)

	_, err = equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	units, _ := unitRepo.ListUnits(context.Background(), nil, equipmentID)
	assert.Empty(t, units)
}

func TestUpdateUnitStatusRecomputesAndClearsEvent(t *testing.T) {
	svc, equipmentRepo, unitRepo := newEquipmentServiceForTest(t)
	equipmentID := seedEquipmentWithUnits(t, equipmentRepo, unitRepo,
		constants.UnitStatusAvailable, constants.UnitStatusAvailable)

	eventID := "ev-1"
	unitRepo.units["a"].Status = constants.UnitStatusInUseAtEvent
	unitRepo.units["a"].CurrentEventID = &eventID

	res, err := svc.UpdateUnitStatus(context.Background(), "a", dto.UpdateUnitStatusDTO{
		Status: constants.UnitStatusAvailable,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.AvailableQuantity)
	assert.Equal(t, 0, res.UnavailableQuantity)
	assert.Nil(t, unitRepo.units["a"].CurrentEventID, "leaving in_use_at_event must drop the event link")

	stored, _ := equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.Equal(t, 2, stored.AvailableQuantity)
}
