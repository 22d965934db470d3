package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BillPaid      = "PAID"
	BillPending   = "PENDING"
	BillCancelled = "CANCELLED"
)

// Bill carries money as decimals with cent precision. "Overdue" is derived
// from dueDate against the current date and never stored.
type Bill struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BillID        string             `json:"billId" bson:"billId"`
	PatientID     string             `json:"patientId" bson:"patientId"`
	PatientName   string             `json:"patientName" bson:"patientName"`
	DentistID     string             `json:"dentistId" bson:"dentistId"`
	DentistName   string             `json:"dentistName" bson:"dentistName"`
	BillDate      string             `json:"billDate" bson:"billDate"`
	AmountDue     decimal.Decimal    `json:"amountDue" bson:"amountDue"`
	AmountPaid    decimal.Decimal    `json:"amountPaid" bson:"amountPaid"`
	DueDate       string             `json:"dueDate" bson:"dueDate"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Overdue reports whether the bill is past due on the given date. ISO dates
// compare correctly as strings.
func (b *Bill) Overdue(today string) bool {
	return b.PaymentStatus != BillPaid && b.DueDate != "" && b.DueDate < today
}

func (b Bill) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.PatientID, validation.Required),
		validation.Field(&b.BillDate, validation.Date("2006-01-02")),
		validation.Field(&b.DueDate, validation.Date("2006-01-02")),
		validation.Field(&b.PaymentStatus, validation.Required, validation.In(
			BillPaid, BillPending, BillCancelled)),
		validation.Field(&b.AmountDue, validation.By(nonNegativeAmount)),
		validation.Field(&b.AmountPaid, validation.By(nonNegativeAmount)),
	)
}

func nonNegativeAmount(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_amount", "must be a decimal amount")
	}
	if amount.IsNegative() {
		return validation.NewError("validation_amount_negative", "must not be negative")
	}
	return nil
}
