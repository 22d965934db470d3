package utils

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"NavidentClinic/models"
)

/*
* PDF export helpers. Every document is a title followed by a two column
* key/value table, keys on a gray band.
 */

func buildDocumentPdf(title string, rows [][2]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 200)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFillColor(128, 128, 128)
		pdf.CellFormat(60, 9, row[0], "1", 0, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 9, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func currency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func PatientPdf(p *models.Patient) ([]byte, error) {
	return buildDocumentPdf("Patient Summary", [][2]string{
		{"Full Name", p.FirstName + " " + p.LastName},
		{"Email", p.Email},
		{"Mobile", p.MobileNumber},
		{"Gender", p.Gender},
		{"DOB", p.DateOfBirth},
		{"Blood Group", p.BloodGroup},
		{"Allergies", strings.Join(p.Allergies, ", ")},
	})
}

func BillPdf(b *models.Bill) ([]byte, error) {
	return buildDocumentPdf("Bill #"+b.BillID, [][2]string{
		{"Patient", b.PatientName},
		{"Dentist", b.DentistName},
		{"Amount Due", currency(b.AmountDue)},
		{"Amount Paid", currency(b.AmountPaid)},
		{"Status", b.PaymentStatus},
	})
}

func DentistPdf(d *models.Dentist) ([]byte, error) {
	active := "NO"
	if d.Active {
		active = "YES"
	}
	return buildDocumentPdf("Dentist Info", [][2]string{
		{"Name", d.FirstName + " " + d.LastName},
		{"License", d.LicenseNumber},
		{"Email", d.Email},
		{"Mobile", d.MobileNumber},
		{"Specializations", strings.Join(d.Specializations, ", ")},
		{"Active", active},
	})
}

func PrescriptionPdf(p *models.Prescription) ([]byte, error) {
	return buildDocumentPdf("Prescription", [][2]string{
		{"Patient", p.PatientName},
		{"Dentist", p.DentistName},
		{"Diagnosis", p.Diagnosis},
		{"Medications", p.Medications},
		{"Status", p.Status},
	})
}
