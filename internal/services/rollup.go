package services

import (
	"rental-system/internal/entities"
	"rental-system/pkg/constants"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
)

// ComputeEquipmentRollup derives the four counters from the unit set of one
// equipment. Units committed to an event and leased-out units both count as
// unavailable. An empty unit set yields all zeros. A state outside the
// four-value enumeration is rejected before anything is counted.
func ComputeEquipmentRollup(units []entities.EquipmentUnit) (types.EquipmentRollup, error) {
	for _, u := range units {
		if !constants.IsValidUnitStatus(u.Status) {
			return types.EquipmentRollup{}, apperrors.NewValidationError(
				"unknown unit state %q on unit %q", u.Status, u.UnitIdentifier)
		}
	}

	var rollup types.EquipmentRollup
	for _, u := range units {
		switch u.Status {
		case constants.UnitStatusAvailable:
			rollup.Available++
		case constants.UnitStatusInMaintenance:
			rollup.InMaintenance++
		case constants.UnitStatusInUseAtEvent, constants.UnitStatusLeasedOut:
			rollup.Unavailable++
		}
		rollup.Total++
	}
	return rollup, nil
}
