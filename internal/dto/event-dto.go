package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type EventEquipmentItemDTO struct {
	EquipmentID string `json:"equipment_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
}

type CreateEventDTO struct {
	ClientName    string          `json:"client_name" validate:"required"`
	EventLocation string          `json:"event_location" validate:"required"`
	SetupDate     string          `json:"setup_date" validate:"required,datetime=2006-01-02"`
	SetupTime     null.String     `json:"setup_time"`
	EventDate     string          `json:"event_date" validate:"required,datetime=2006-01-02"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Notes         null.String     `json:"notes"`

	EquipmentItems []EventEquipmentItemDTO `json:"equipment_items" validate:"omitempty,dive"`
}

type UpdateEventDTO struct {
	ClientName    *string          `json:"client_name,omitempty"    validate:"omitempty"`
	EventLocation *string          `json:"event_location,omitempty" validate:"omitempty"`
	SetupDate     *string          `json:"setup_date,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	SetupTime     null.String      `json:"setup_time,omitempty"`
	EventDate     *string          `json:"event_date,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	TotalCost     *decimal.Decimal `json:"total_cost,omitempty"`
	Status        *string          `json:"status,omitempty"         validate:"omitempty,event_status"`
	Notes         null.String      `json:"notes,omitempty"`
}

type EventEquipmentItemResponseDTO struct {
	ID            string `json:"id"`
	EquipmentID   string `json:"equipment_id"`
	EquipmentName string `json:"equipment_name"`
	Quantity      int    `json:"quantity"`
}

type EventDTO struct {
	ID            string          `json:"id"`
	ClientName    string          `json:"client_name"`
	EventLocation string          `json:"event_location"`
	SetupDate     string          `json:"setup_date"`
	SetupTime     string          `json:"setup_time,omitempty"`
	EventDate     string          `json:"event_date"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`

	EquipmentItems []EventEquipmentItemResponseDTO `json:"equipment_items,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
