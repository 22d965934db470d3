package utils

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
)

func TestBillsToExcelWritesHeaderAndRows(t *testing.T) {
	bills := []models.Bill{
		{
			ID:            primitive.NewObjectID(),
			BillID:        "BILL-001",
			PatientName:   "Jane Doe",
			DentistName:   "Dr Smith",
			BillDate:      "2026-01-15",
			DueDate:       "2026-02-15",
			AmountDue:     decimal.RequireFromString("150.00"),
			AmountPaid:    decimal.RequireFromString("50.00"),
			PaymentStatus: models.BillPending,
		},
	}

	data, err := BillsToExcel(bills)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bills")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bill#", rows[0][1])
	assert.Equal(t, "BILL-001", rows[1][1])
	assert.Equal(t, "Jane Doe", rows[1][2])
	assert.Equal(t, "150", rows[1][6])
}

func TestPatientsToExcelHandlesMissingAddress(t *testing.T) {
	patients := []models.Patient{
		{ID: primitive.NewObjectID(), FirstName: "John", LastName: "Roe", Email: "john@example.com"},
	}

	data, err := PatientsToExcel(patients)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Patients")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "John Roe", rows[1][1])
}

func TestFinanceToExcelEmptyList(t *testing.T) {
	data, err := FinanceToExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Finance")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Category", rows[0][2])
}
