package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type AppointmentStore interface {
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	Insert(ctx context.Context, a *models.Appointment) error
	Replace(ctx context.Context, a *models.Appointment) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Appointment, int64, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDentistID(ctx context.Context, dentistID string) ([]models.Appointment, error)
	FindByStatus(ctx context.Context, status string) ([]models.Appointment, error)
	FindByDateBetween(ctx context.Context, start, end string) ([]models.Appointment, error)
	FindUpcoming(ctx context.Context, from string) ([]models.Appointment, error)
	Search(ctx context.Context, query string) ([]models.Appointment, error)
}

// PatientLookup and DentistLookup provide the name snapshots written into
// appointments, prescriptions and bills at create/update time.
type PatientLookup interface {
	FindByID(ctx context.Context, id string) (*models.Patient, error)
}

type DentistLookup interface {
	FindByID(ctx context.Context, id string) (*models.Dentist, error)
}

type AppointmentService struct {
	appointments AppointmentStore
	patients     PatientLookup
	dentists     DentistLookup
}

func NewAppointmentService(appointments AppointmentStore, patients PatientLookup, dentists DentistLookup) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients, dentists: dentists}
}

// snapshotNames resolves the referenced patient and dentist and copies their
// display names onto the appointment. Snapshots are never refreshed later.
func (s *AppointmentService) snapshotNames(ctx context.Context, a *models.Appointment) error {
	patient, err := s.patients.FindByID(ctx, a.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return utils.NotFound("Patient", "id", a.PatientID)
	}
	dentist, err := s.dentists.FindByID(ctx, a.DentistID)
	if err != nil {
		return err
	}
	if dentist == nil {
		return utils.NotFound("Dentist", "id", a.DentistID)
	}
	a.PatientName = patient.FirstName + " " + patient.LastName
	a.DentistName = dentist.FirstName + " " + dentist.LastName
	return nil
}

func (s *AppointmentService) Create(ctx context.Context, in *models.Appointment) (*models.Appointment, error) {
	if in.Status == "" {
		in.Status = models.AppointmentScheduled
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
	if err := s.appointments.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("Appointment created for", in.PatientName, "on", in.AppointmentDate)
	return in, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	a, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, utils.NotFound("Appointment", "id", id)
	}
	return a, nil
}

func (s *AppointmentService) Update(ctx context.Context, id string, in *models.Appointment) (*models.Appointment, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.snapshotNames(ctx, in); err != nil {
		return nil, err
	}

	existing.PatientID = in.PatientID
	existing.PatientName = in.PatientName
	existing.DentistID = in.DentistID
	existing.DentistName = in.DentistName
	existing.AppointmentDate = in.AppointmentDate
	existing.AppointmentTime = in.AppointmentTime
	existing.Status = in.Status
	existing.Notes = in.Notes
	existing.UpdatedAt = time.Now()

	if err := s.appointments.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateStatus moves the appointment to the given status without touching
// the rest of the record.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	switch status {
	case models.AppointmentScheduled, models.AppointmentConfirmed,
		models.AppointmentCompleted, models.AppointmentCancelled:
	default:
		return nil, utils.InvalidArgument("Unknown appointment status: " + status)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Status = status
	existing.UpdatedAt = time.Now()
	if err := s.appointments.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.appointments.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Appointment", "id", id)
	}
	log.Println("Appointment deleted:", id)
	return nil
}

func (s *AppointmentService) GetPage(ctx context.Context, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	appointments, total, err := s.appointments.FindPage(ctx, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	resp := models.NewPageResponse(appointments, page, size, total)
	return &resp, nil
}

func (s *AppointmentService) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.appointments.FindByPatientID(ctx, patientID)
}

func (s *AppointmentService) GetByDentist(ctx context.Context, dentistID string) ([]models.Appointment, error) {
	return s.appointments.FindByDentistID(ctx, dentistID)
}

func (s *AppointmentService) GetByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	return s.appointments.FindByStatus(ctx, status)
}

func (s *AppointmentService) GetByDateRange(ctx context.Context, start, end string) ([]models.Appointment, error) {
	return s.appointments.FindByDateBetween(ctx, start, end)
}

func (s *AppointmentService) GetUpcoming(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.FindUpcoming(ctx, utils.Today())
}

func (s *AppointmentService) Search(ctx context.Context, query string) ([]models.Appointment, error) {
	return s.appointments.Search(ctx, query)
}

func (s *AppointmentService) ExportExcel(ctx context.Context, start, end string) ([]byte, error) {
	appointments, err := s.appointments.FindByDateBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return utils.AppointmentsToExcel(appointments)
}
