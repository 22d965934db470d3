package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FinanceRevenue = "REVENUE"
	FinanceExpense = "EXPENSE"
)

type ClinicFinance struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TransactionDate string             `json:"transactionDate" bson:"transactionDate"`
	Category        string             `json:"category" bson:"category"`
	Type            string             `json:"type" bson:"type"`
	Amount          decimal.Decimal    `json:"amount" bson:"amount"`
	VendorName      string             `json:"vendorName" bson:"vendorName"`
	Description     string             `json:"description" bson:"description"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (f ClinicFinance) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.TransactionDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&f.Category, validation.Required, validation.In(FinanceRevenue, FinanceExpense)),
		validation.Field(&f.Type, validation.Required),
		validation.Field(&f.Amount, validation.By(nonNegativeAmount)),
	)
}

// FinanceSummary is the revenue/expense/profit roll-up over a date range.
type FinanceSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Profit       decimal.Decimal `json:"profit"`
}
