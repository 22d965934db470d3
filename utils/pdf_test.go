package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NavidentClinic/models"
)

func TestBillPdfProducesPdfDocument(t *testing.T) {
	bill := &models.Bill{
		BillID:        "BILL-042",
		PatientName:   "Jane Doe",
		DentistName:   "Dr Smith",
		AmountDue:     decimal.RequireFromString("200.50"),
		AmountPaid:    decimal.RequireFromString("0"),
		PaymentStatus: models.BillPending,
	}

	data, err := BillPdf(bill)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPatientPdfProducesPdfDocument(t *testing.T) {
	patient := &models.Patient{
		FirstName:   "John",
		LastName:    "Roe",
		Email:       "john@example.com",
		Allergies:   []string{"penicillin", "latex"},
		DateOfBirth: "1990-04-01",
	}

	data, err := PatientPdf(patient)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCurrencyFormatsWithTwoDecimals(t *testing.T) {
	assert.Equal(t, "$200.50", currency(decimal.RequireFromString("200.5")))
	assert.Equal(t, "$0.00", currency(decimal.Zero))
}
