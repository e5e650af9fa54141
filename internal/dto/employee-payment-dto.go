package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateEmployeePaymentDTO struct {
	EmployeeID  string          `json:"employee_id" validate:"required,uuid"`
	PaymentDate string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description null.String     `json:"description"`
	ReceiptURL  null.String     `json:"receipt_url"`
}

type EmployeePaymentDTO struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	PaymentDate  string          `json:"payment_date"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	ReceiptURL   string          `json:"receipt_url,omitempty"`

	CreatedAt string `json:"created_at"`
}
