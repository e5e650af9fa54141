package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-system/pkg/types"
)

// EmployeePayment is a dated disbursement to an employee. ReceiptURL is a
// plain reference string; storing the file itself is not this service's job.
type EmployeePayment struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	PaymentDate time.Time       `json:"payment_date"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	ReceiptURL  *string         `json:"receipt_url"`

	types.BaseEntity

	EmployeeName string `db:"-"`
}
