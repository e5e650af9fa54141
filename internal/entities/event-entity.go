package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-system/pkg/types"
)

// Event is a booking: setup and event dates, venue, cost estimate and
// lifecycle status. It owns its equipment line items.
type Event struct {
	ID            string          `json:"id"`
	ClientName    string          `json:"client_name"`
	EventLocation string          `json:"event_location"`
	SetupDate     time.Time       `json:"setup_date"`
	SetupTime     *string         `json:"setup_time"`
	EventDate     time.Time       `json:"event_date"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        string          `json:"status"`
	Notes         *string         `json:"notes"`

	types.BaseEntity

	EquipmentItems []EventEquipmentItem `db:"-"`
}
