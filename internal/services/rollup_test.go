package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-system/internal/entities"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

func unitsWithStatuses(statuses ...string) []entities.EquipmentUnit {
	units := make([]entities.EquipmentUnit, 0, len(statuses))
	for i, s := range statuses {
		units = append(units, entities.EquipmentUnit{
			ID:             string(rune('a' + i)),
			UnitIdentifier: "unit",
			Status:         s,
		})
	}
	return units
}

func TestComputeEquipmentRollup(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []string
		expected types.EquipmentRollup
	}{
		{
			name:     "no units yields all zeros",
			statuses: nil,
			expected: types.EquipmentRollup{},
		},
		{
			name:     "single available unit",
			statuses: []string{constants.UnitStatusAvailable},
			expected: types.EquipmentRollup{Available: 1, Total: 1},
		},
		{
			name: "one of each active state",
			statuses: []string{
				constants.UnitStatusAvailable,
				constants.UnitStatusInMaintenance,
				constants.UnitStatusLeasedOut,
			},
			expected: types.EquipmentRollup{Available: 1, InMaintenance: 1, Unavailable: 1, Total: 3},
		},
		{
			name: "event use and lease both count as unavailable",
			statuses: []string{
				constants.UnitStatusInUseAtEvent,
				constants.UnitStatusLeasedOut,
				constants.UnitStatusInUseAtEvent,
			},
			expected: types.EquipmentRollup{Unavailable: 3, Total: 3},
		},
		{
			name: "mixed fleet",
			statuses: []string{
				constants.UnitStatusAvailable,
				constants.UnitStatusAvailable,
				constants.UnitStatusInMaintenance,
				constants.UnitStatusInUseAtEvent,
				constants.UnitStatusLeasedOut,
			},
			expected: types.EquipmentRollup{Available: 2, InMaintenance: 1, Unavailable: 2, Total: 5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rollup, err := ComputeEquipmentRollup(unitsWithStatuses(tc.statuses...))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rollup)

			// The three buckets always partition the unit set.
			assert.Equal(t, rollup.Total, rollup.Available+rollup.InMaintenance+rollup.Unavailable)
		})
	}
}

func TestComputeEquipmentRollupIsDeterministic(t *testing.T) {
	units := unitsWithStatuses(
		constants.UnitStatusAvailable,
		constants.UnitStatusInMaintenance,
		constants.UnitStatusLeasedOut,
	)

	first, err := ComputeEquipmentRollup(units)
	require.NoError(t, err)
	second, err := ComputeEquipmentRollup(units)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeEquipmentRollupRejectsUnknownState(t *testing.T) {
	units := unitsWithStatuses(constants.UnitStatusAvailable, "broken")

	_, err := ComputeEquipmentRollup(units)
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
