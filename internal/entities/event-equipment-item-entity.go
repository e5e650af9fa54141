package entities

import (
	"rental-system/pkg/types"
)

// EventEquipmentItem is one equipment line on an event: which catalog entry
// and how many units of it the booking takes.
type EventEquipmentItem struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	EquipmentID string `json:"equipment_id"`
	Quantity    int    `json:"quantity"`

	types.BaseEntity

	EquipmentName string `db:"-"`
}
