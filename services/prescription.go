package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type PrescriptionStore interface {
	FindByID(ctx context.Context, id string) (*models.Prescription, error)
	Insert(ctx context.Context, p *models.Prescription) error
	Replace(ctx context.Context, p *models.Prescription) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Prescription, int64, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindByDentistID(ctx context.Context, dentistID string) ([]models.Prescription, error)
	FindByStatus(ctx context.Context, status string) ([]models.Prescription, error)
	FindByDateBetween(ctx context.Context, start, end string) ([]models.Prescription, error)
	FindRequiringFollowUp(ctx context.Context) ([]models.Prescription, error)
	Search(ctx context.Context, query string) ([]models.Prescription, error)
}

type PrescriptionService struct {
	prescriptions PrescriptionStore
	patients      PatientLookup
	dentists      DentistLookup
}

func NewPrescriptionService(prescriptions PrescriptionStore, patients PatientLookup, dentists DentistLookup) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions, patients: patients, dentists: dentists}
}

func (s *PrescriptionService) snapshotNames(ctx context.Context, p *models.Prescription) error {
	patient, err := s.patients.FindByID(ctx, p.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return utils.NotFound("Patient", "id", p.PatientID)
	}
	dentist, err := s.dentists.FindByID(ctx, p.DentistID)
	if err != nil {
		return err
	}
	if dentist == nil {
		return utils.NotFound("Dentist", "id", p.DentistID)
	}
	p.PatientName = patient.FirstName + " " + patient.LastName
	p.DentistName = dentist.FirstName + " " + dentist.LastName
	return nil
}

func (s *PrescriptionService) Create(ctx context.Context, in *models.Prescription) (*models.Prescription, error) {
	if in.Status == "" {
		in.Status = models.PrescriptionActive
	}
	if in.PrescriptionDate == "" {
		in.PrescriptionDate = utils.Today()
	}
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	if err := s.snapshotNames(ctx, in); err != nil {
		return nil, err
	}

	in.ID = primitive.ObjectID{}
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()
	if err := s.prescriptions.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("Prescription created for", in.PatientName)
	return in, nil
}

func (s *PrescriptionService) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	p, err := s.prescriptions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Prescription", "id", id)
	}
	return p, nil
}

func (s *PrescriptionService) Update(ctx context.Context, id string, in *models.Prescription) (*models.Prescription, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Diagnosis = in.Diagnosis
	existing.Medications = in.Medications
	existing.Notes = in.Notes
	existing.RequiresFollowUp = in.RequiresFollowUp
	existing.Status = in.Status
	existing.UpdatedAt = time.Now()

	if err := s.prescriptions.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PrescriptionService) UpdateStatus(ctx context.Context, id, status string) (*models.Prescription, error) {
	switch status {
	case models.PrescriptionActive, models.PrescriptionCompleted, models.PrescriptionExpired:
	default:
		return nil, utils.InvalidArgument("Unknown prescription status: " + status)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Status = status
	existing.UpdatedAt = time.Now()
	if err := s.prescriptions.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PrescriptionService) Delete(ctx context.Context, id string) error {
	deleted, err := s.prescriptions.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Prescription", "id", id)
	}
	log.Println("Prescription deleted:", id)
	return nil
}

func (s *PrescriptionService) GetPage(ctx context.Context, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	prescriptions, total, err := s.prescriptions.FindPage(ctx, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if prescriptions == nil {
		prescriptions = []models.Prescription{}
	}
	resp := models.NewPageResponse(prescriptions, page, size, total)
	return &resp, nil
}

func (s *PrescriptionService) GetByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return s.prescriptions.FindByPatientID(ctx, patientID)
}

func (s *PrescriptionService) GetByDentist(ctx context.Context, dentistID string) ([]models.Prescription, error) {
	return s.prescriptions.FindByDentistID(ctx, dentistID)
}

func (s *PrescriptionService) GetActive(ctx context.Context) ([]models.Prescription, error) {
	return s.prescriptions.FindByStatus(ctx, models.PrescriptionActive)
}

func (s *PrescriptionService) GetRequiringFollowUp(ctx context.Context) ([]models.Prescription, error) {
	return s.prescriptions.FindRequiringFollowUp(ctx)
}

func (s *PrescriptionService) Search(ctx context.Context, query string) ([]models.Prescription, error) {
	return s.prescriptions.Search(ctx, query)
}

func (s *PrescriptionService) ExportExcel(ctx context.Context, patientID string) ([]byte, error) {
	prescriptions, err := s.prescriptions.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.PrescriptionsToExcel(prescriptions)
}

func (s *PrescriptionService) ExportExcelRange(ctx context.Context, start, end string) ([]byte, error) {
	prescriptions, err := s.prescriptions.FindByDateBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return utils.PrescriptionsToExcel(prescriptions)
}

func (s *PrescriptionService) ExportPdf(ctx context.Context, id string) ([]byte, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.PrescriptionPdf(p)
}
