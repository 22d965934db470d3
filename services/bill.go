package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type BillStore interface {
	FindByID(ctx context.Context, id string) (*models.Bill, error)
	Insert(ctx context.Context, b *models.Bill) error
	Replace(ctx context.Context, b *models.Bill) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Bill, int64, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error)
	FindByDentistID(ctx context.Context, dentistID string) ([]models.Bill, error)
	FindByPaymentStatus(ctx context.Context, status string) ([]models.Bill, error)
	FindOverdue(ctx context.Context, today string) ([]models.Bill, error)
	Search(ctx context.Context, query string) ([]models.Bill, error)
}

type BillService struct {
	bills    BillStore
	patients PatientLookup
	dentists DentistLookup
}

func NewBillService(bills BillStore, patients PatientLookup, dentists DentistLookup) *BillService {
	return &BillService{bills: bills, patients: patients, dentists: dentists}
}

// allowedTransition reports whether a bill may move from one payment status
// to another. A cancelled bill is terminal; re-stating the current status is
// a no-op and always allowed.
func allowedTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case models.BillPending:
		return to == models.BillPaid || to == models.BillCancelled
	case models.BillPaid:
		return to == models.BillCancelled
	default:
		return false
	}
}

func (s *BillService) Create(ctx context.Context, in *models.Bill) (*models.Bill, error) {
	if in.PaymentStatus == "" {
		in.PaymentStatus = models.BillPending
	}
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}

	patient, err := s.patients.FindByID(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, utils.NotFound("Patient", "id", in.PatientID)
	}
	in.PatientName = patient.FirstName + " " + patient.LastName

	if in.DentistID != "" {
		dentist, err := s.dentists.FindByID(ctx, in.DentistID)
		if err != nil {
			return nil, err
		}
		if dentist == nil {
			return nil, utils.NotFound("Dentist", "id", in.DentistID)
		}
		in.DentistName = dentist.FirstName + " " + dentist.LastName
	}

	if in.BillID == "" {
		in.BillID = "BILL-" + uuid.NewString()[:8]
	}
	if in.BillDate == "" {
		in.BillDate = utils.Today()
	}
	in.ID = primitive.ObjectID{}
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()

	if err := s.bills.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("Bill created:", in.BillID, "for", in.PatientName)
	return in, nil
}

func (s *BillService) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	b, err := s.bills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFound("Bill", "id", id)
	}
	return b, nil
}

/*
* Update changes the amounts and payment status of an existing bill. Only
* legal status transitions are accepted; everything out of CANCELLED is
* rejected.
 */
func (s *BillService) Update(ctx context.Context, id string, in *models.Bill) (*models.Bill, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = existing.PaymentStatus
	}
	switch in.PaymentStatus {
	case models.BillPaid, models.BillPending, models.BillCancelled:
	default:
		return nil, utils.InvalidArgument("Unknown payment status: " + in.PaymentStatus)
	}
	if !allowedTransition(existing.PaymentStatus, in.PaymentStatus) {
		return nil, utils.InvalidState(
			"Cannot change bill status from " + existing.PaymentStatus + " to " + in.PaymentStatus)
	}
	if in.AmountDue.IsNegative() || in.AmountPaid.IsNegative() {
		return nil, utils.InvalidArgument("Bill amounts must not be negative")
	}

	existing.AmountDue = in.AmountDue
	existing.AmountPaid = in.AmountPaid
	existing.PaymentStatus = in.PaymentStatus
	existing.UpdatedAt = time.Now()

	if err := s.bills.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *BillService) Delete(ctx context.Context, id string) error {
	deleted, err := s.bills.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Bill", "id", id)
	}
	log.Println("Bill deleted:", id)
	return nil
}

func (s *BillService) GetPage(ctx context.Context, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	bills, total, err := s.bills.FindPage(ctx, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	resp := models.NewPageResponse(bills, page, size, total)
	return &resp, nil
}

func (s *BillService) GetByPatient(ctx context.Context, patientID string) ([]models.Bill, error) {
	return s.bills.FindByPatientID(ctx, patientID)
}

func (s *BillService) GetByDentist(ctx context.Context, dentistID string) ([]models.Bill, error) {
	return s.bills.FindByDentistID(ctx, dentistID)
}

func (s *BillService) GetByStatus(ctx context.Context, status string) ([]models.Bill, error) {
	return s.bills.FindByPaymentStatus(ctx, status)
}

func (s *BillService) GetPending(ctx context.Context) ([]models.Bill, error) {
	return s.bills.FindByPaymentStatus(ctx, models.BillPending)
}

// GetOverdue derives the overdue set from today's date; the flag is never
// stored on the record.
func (s *BillService) GetOverdue(ctx context.Context) ([]models.Bill, error) {
	return s.bills.FindOverdue(ctx, utils.Today())
}

func (s *BillService) Search(ctx context.Context, query string) ([]models.Bill, error) {
	return s.bills.Search(ctx, query)
}

func (s *BillService) ExportExcel(ctx context.Context, patientID string) ([]byte, error) {
	bills, err := s.bills.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.BillsToExcel(bills)
}

func (s *BillService) ExportPdf(ctx context.Context, id string) ([]byte, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.BillPdf(b)
}
