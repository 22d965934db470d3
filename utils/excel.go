package utils

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"NavidentClinic/models"
)

/*
* Excel export helpers. Each entity export writes a single sheet with a
* header row followed by one row per record, columns sized to the widest
* value so the file opens readable without manual resizing.
 */

func writeSimpleExcel(sheetName string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}
	if err := sizeColumns(f, sheetName, headers, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sizeColumns(f *excelize.File, sheetName string, headers []string, rows [][]interface{}) error {
	for i, h := range headers {
		width := len(h)
		for _, row := range rows {
			if i < len(row) {
				if n := len(fmt.Sprint(row[i])); n > width {
					width = n
				}
			}
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)+2); err != nil {
			return err
		}
	}
	return nil
}

func AppointmentsToExcel(list []models.Appointment) ([]byte, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, ap := range list {
		rows = append(rows, []interface{}{
			ap.ID.Hex(), ap.PatientName, ap.DentistName,
			ap.AppointmentDate, ap.AppointmentTime, ap.Status, ap.Notes,
		})
	}
	return writeSimpleExcel("Appointments",
		[]string{"ID", "Patient", "Dentist", "Date", "Time", "Status", "Notes"}, rows)
}

func PatientsToExcel(list []models.Patient) ([]byte, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, p := range list {
		city := ""
		if p.Address != nil {
			city = p.Address.City
		}
		rows = append(rows, []interface{}{
			p.ID.Hex(), p.FirstName + " " + p.LastName, p.Email, p.MobileNumber,
			p.Gender, p.DateOfBirth, p.BloodGroup, city,
		})
	}
	return writeSimpleExcel("Patients",
		[]string{"ID", "Name", "Email", "Mobile", "Gender", "DOB", "Blood Group", "City"}, rows)
}

func BillsToExcel(list []models.Bill) ([]byte, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, b := range list {
		rows = append(rows, []interface{}{
			b.ID.Hex(), b.BillID, b.PatientName, b.DentistName,
			b.BillDate, b.DueDate, b.AmountDue.String(), b.AmountPaid.String(), b.PaymentStatus,
		})
	}
	return writeSimpleExcel("Bills",
		[]string{"ID", "Bill#", "Patient", "Dentist", "Bill Date", "Due Date", "Amount Due", "Amount Paid", "Status"}, rows)
}

func DentistsToExcel(list []models.Dentist) ([]byte, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, d := range list {
		rows = append(rows, []interface{}{
			d.ID.Hex(), d.FirstName, d.LastName, d.LicenseNumber, d.Email,
			d.MobileNumber, strings.Join(d.Specializations, ", "), d.Active,
		})
	}
	return writeSimpleExcel("Dentists",
		[]string{"ID", "First Name", "Last Name", "License#", "Email", "Mobile", "Specializations", "Active"}, rows)
}

func PrescriptionsToExcel(list []models.Prescription) ([]byte, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, p := range list {
		rows = append(rows, []interface{}{
			p.ID.Hex(), p.PatientName, p.DentistName, p.PrescriptionDate,
			p.Diagnosis, p.Medications, p.Status,
		})
	}
	return writeSimpleExcel("Prescriptions",
		[]string{"ID", "Patient", "Dentist", "Date", "Diagnosis", "Medications", "Status"}, rows)
}

func InsuranceToExcel(list []models.Insurance) ([]byte, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, ins := range list {
		rows = append(rows, []interface{}{
			ins.ID.Hex(), ins.PatientID, ins.AgencyName, ins.PolicyNumber,
			ins.PolicyEndDate, ins.Status, ins.ClaimAmount.String(), ins.ApprovedClaimAmount.String(),
		})
	}
	return writeSimpleExcel("Insurance",
		[]string{"ID", "Patient", "Agency", "Policy#", "Policy End", "Status", "Claim Amount", "Approved Amount"}, rows)
}

func FinanceToExcel(list []models.ClinicFinance) ([]byte, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, t := range list {
		rows = append(rows, []interface{}{
			t.ID.Hex(), t.TransactionDate, t.Category, t.Type,
			t.Amount.String(), t.VendorName, t.Description, t.Status,
		})
	}
	return writeSimpleExcel("Finance",
		[]string{"ID", "Date", "Category", "Type", "Amount", "Vendor", "Description", "Status"}, rows)
}
