package dto

type UpdateCompanySettingsDTO struct {
	CompanyName          *string `json:"company_name,omitempty"  validate:"omitempty"`
	CNPJ                 *string `json:"cnpj,omitempty"          validate:"omitempty"`
	Email                *string `json:"email,omitempty"         validate:"omitempty,email"`
	Phone                *string `json:"phone,omitempty"         validate:"omitempty"`
	Address              *string `json:"address,omitempty"       validate:"omitempty"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
}

type CompanySettingsDTO struct {
	ID                   string `json:"id"`
	CompanyName          string `json:"company_name"`
	CNPJ                 string `json:"cnpj"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	UpdatedAt            string `json:"updated_at"`
}
