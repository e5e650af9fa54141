package entities

import (
	"rental-system/pkg/types"
)

// Equipment is a catalog entry. The four quantity columns are a cached copy
// of the unit rollup; they are recomputed from equipment_units on every unit
// mutation and never edited directly.
type Equipment struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Dimensions          string  `json:"dimensions"`
	Weight              float64 `json:"weight"`
	TotalQuantity       int     `json:"total_quantity"`
	AvailableQuantity   int     `json:"available_quantity"`
	MaintenanceQuantity int     `json:"maintenance_quantity"`
	UnavailableQuantity int     `json:"unavailable_quantity"`

	types.BaseEntity

	// Loaded alongside the row, not a column.
	Units []EquipmentUnit `db:"-"`
}
