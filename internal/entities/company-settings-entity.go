package entities

import (
	"rental-system/pkg/types"
)

// CompanySettings is the single-row company profile edited on the
// settings screen.
type CompanySettings struct {
	ID                   string `json:"id"`
	CompanyName          string `json:"company_name"`
	CNPJ                 string `json:"cnpj"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	NotificationsEnabled bool   `json:"notifications_enabled"`

	types.BaseEntity
}
