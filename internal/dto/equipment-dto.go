package dto

type CreateEquipmentDTO struct {
	Name       string  `json:"name" validate:"required"`
	Category   string  `json:"category" validate:"required"`
	Dimensions string  `json:"dimensions" validate:"required"`
	Weight     float64 `json:"weight" validate:"gte=0"`

	// The only moment the caller supplies a count; the generated unit set
	// is the source of truth afterwards.
	TotalQuantity int `json:"total_quantity" validate:"required,gte=1"`
}

type UpdateEquipmentDTO struct {
	Name       *string  `json:"name,omitempty"       validate:"omitempty"`
	Category   *string  `json:"category,omitempty"   validate:"omitempty"`
	Dimensions *string  `json:"dimensions,omitempty" validate:"omitempty"`
	Weight     *float64 `json:"weight,omitempty"     validate:"omitempty,gte=0"`
}

type EquipmentUnitDTO struct {
	ID             string  `json:"id"`
	EquipmentID    string  `json:"equipment_id"`
	UnitIdentifier string  `json:"unit_identifier"`
	Status         string  `json:"status"`
	CurrentEventID *string `json:"current_event_id,omitempty"`
}

type EquipmentDTO struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Dimensions          string  `json:"dimensions"`
	Weight              float64 `json:"weight"`
	TotalQuantity       int     `json:"total_quantity"`
	AvailableQuantity   int     `json:"available_quantity"`
	MaintenanceQuantity int     `json:"maintenance_quantity"`
	UnavailableQuantity int     `json:"unavailable_quantity"`

	Units []EquipmentUnitDTO `json:"units,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UpdateUnitStatusDTO struct {
	Status string `json:"status" validate:"required,unit_status"`

	// Only meaningful together with in_use_at_event; ignored otherwise.
	CurrentEventID *string `json:"current_event_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateUnitIdentifierDTO struct {
	UnitIdentifier string `json:"unit_identifier" validate:"required"`
}
