package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillOverdueDerivation(t *testing.T) {
	today := "2026-06-15"

	tests := []struct {
		name    string
		bill    Bill
		overdue bool
	}{
		{"pending past due", Bill{PaymentStatus: BillPending, DueDate: "2026-06-14"}, true},
		{"pending due today", Bill{PaymentStatus: BillPending, DueDate: "2026-06-15"}, false},
		{"pending future due", Bill{PaymentStatus: BillPending, DueDate: "2026-07-01"}, false},
		{"paid past due", Bill{PaymentStatus: BillPaid, DueDate: "2026-01-01"}, false},
		{"cancelled past due", Bill{PaymentStatus: BillCancelled, DueDate: "2026-01-01"}, true},
		{"no due date", Bill{PaymentStatus: BillPending}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overdue, tc.bill.Overdue(today))
		})
	}
}

func TestNewPageResponseComputesTotalPages(t *testing.T) {
	resp := NewPageResponse([]Bill{}, 0, 10, 25)
	assert.Equal(t, int64(3), resp.TotalPages)
	assert.Equal(t, int64(25), resp.TotalElements)

	resp = NewPageResponse([]Bill{}, 2, 10, 20)
	assert.Equal(t, int64(2), resp.TotalPages)

	resp = NewPageResponse([]Bill{}, 0, 10, 0)
	assert.Equal(t, int64(0), resp.TotalPages)
}

func TestBillValidateRejectsNegativeAmounts(t *testing.T) {
	b := Bill{
		PatientID:     "p1",
		PaymentStatus: BillPending,
		AmountDue:     decimal.NewFromInt(-10),
	}
	assert.Error(t, b.Validate())
}

func TestBillValidateRejectsUnknownStatus(t *testing.T) {
	b := Bill{PatientID: "p1", PaymentStatus: "SETTLED"}
	assert.Error(t, b.Validate())
}
