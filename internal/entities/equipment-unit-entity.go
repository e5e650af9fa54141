package entities

import (
	"rental-system/pkg/types"
)

// EquipmentUnit is one physical, individually trackable instance of an
// Equipment catalog entry.
type EquipmentUnit struct {
	ID             string  `json:"id"`
	EquipmentID    string  `json:"equipment_id"`
	UnitIdentifier string  `json:"unit_identifier"`
	Status         string  `json:"status"`
	CurrentEventID *string `json:"current_event_id"`

	types.BaseEntity
}
