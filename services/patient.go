package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type PatientStore interface {
	FindByID(ctx context.Context, id string) (*models.Patient, error)
	Insert(ctx context.Context, p *models.Patient) error
	Replace(ctx context.Context, p *models.Patient) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Patient, int64, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByCity(ctx context.Context, city string) ([]models.Patient, error)
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*models.Patient, error)
	Search(ctx context.Context, query string) ([]models.Patient, error)
}

type PatientService struct {
	patients PatientStore
}

func NewPatientService(patients PatientStore) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) Create(ctx context.Context, in *models.Patient) (*models.Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	in.ID = primitive.ObjectID{}
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()
	if err := s.patients.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("Patient created:", in.FirstName, in.LastName)
	return in, nil
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	p, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Patient", "id", id)
	}
	return p, nil
}

func (s *PatientService) Update(ctx context.Context, id string, in *models.Patient) (*models.Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Email = in.Email
	existing.MobileNumber = in.MobileNumber
	existing.Gender = in.Gender
	existing.BloodGroup = in.BloodGroup
	existing.DateOfBirth = in.DateOfBirth
	existing.Allergies = in.Allergies
	existing.Address = in.Address
	existing.UpdatedAt = time.Now()

	if err := s.patients.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	deleted, err := s.patients.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Patient", "id", id)
	}
	log.Println("Patient deleted:", id)
	return nil
}

func (s *PatientService) GetPage(ctx context.Context, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	patients, total, err := s.patients.FindPage(ctx, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	resp := models.NewPageResponse(patients, page, size, total)
	return &resp, nil
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.patients.FindAll(ctx)
}

func (s *PatientService) GetByCity(ctx context.Context, city string) ([]models.Patient, error) {
	return s.patients.FindByCity(ctx, city)
}

func (s *PatientService) GetByMobile(ctx context.Context, mobileNumber string) (*models.Patient, error) {
	p, err := s.patients.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Patient", "mobileNumber", mobileNumber)
	}
	return p, nil
}

func (s *PatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	return s.patients.Search(ctx, query)
}

func (s *PatientService) ExportExcel(ctx context.Context) ([]byte, error) {
	patients, err := s.patients.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.PatientsToExcel(patients)
}

func (s *PatientService) ExportPdf(ctx context.Context, id string) ([]byte, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.PatientPdf(p)
}
