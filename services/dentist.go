package services

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type DentistStore interface {
	FindByID(ctx context.Context, id string) (*models.Dentist, error)
	Insert(ctx context.Context, d *models.Dentist) error
	Replace(ctx context.Context, d *models.Dentist) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Dentist, int64, error)
	FindAll(ctx context.Context) ([]models.Dentist, error)
	FindByChiefDentistTrue(ctx context.Context) ([]models.Dentist, error)
	FindByActiveTrue(ctx context.Context) ([]models.Dentist, error)
	FindBySpecialization(ctx context.Context, specialization string) ([]models.Dentist, error)
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error)
	ClearChiefExcept(ctx context.Context, keepID primitive.ObjectID) error
	Search(ctx context.Context, query string) ([]models.Dentist, error)
}

/*
* DentistService owns the chief dentist invariant: at most one dentist may
* carry the flag at any time. Writes that touch the flag are serialized
* through the mutex so two concurrent promotions cannot both survive.
 */
type DentistService struct {
	dentists DentistStore
	mu       sync.Mutex
}

func NewDentistService(dentists DentistStore) *DentistService {
	return &DentistService{dentists: dentists}
}

func (s *DentistService) Create(ctx context.Context, in *models.Dentist) (*models.Dentist, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	exists, err := s.dentists.ExistsByLicenseNumber(ctx, in.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.Conflict("Dentist already exists with license number: " + in.LicenseNumber)
	}

	in.ID = primitive.NewObjectID()
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Demotions commit before the new chief is persisted, so a failure in
	// between leaves no chief rather than two.
	if in.ChiefDentist {
		if err := s.dentists.ClearChiefExcept(ctx, in.ID); err != nil {
			return nil, err
		}
		log.Println("Chief dentist set to:", in.FirstName, in.LastName)
	}
	if err := s.dentists.Insert(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (s *DentistService) GetByID(ctx context.Context, id string) (*models.Dentist, error) {
	d, err := s.dentists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, utils.NotFound("Dentist", "id", id)
	}
	return d, nil
}

func (s *DentistService) Update(ctx context.Context, id string, in *models.Dentist) (*models.Dentist, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	promoting := in.ChiefDentist && !existing.ChiefDentist
	if promoting {
		if err := s.dentists.ClearChiefExcept(ctx, existing.ID); err != nil {
			return nil, err
		}
		log.Println("Chief dentist changed to:", in.FirstName, in.LastName)
	}

	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Email = in.Email
	existing.MobileNumber = in.MobileNumber
	existing.Specializations = in.Specializations
	existing.Active = in.Active
	existing.ChiefDentist = in.ChiefDentist
	existing.Qualification = in.Qualification
	existing.ExperienceYears = in.ExperienceYears
	existing.ConsultationFee = in.ConsultationFee
	existing.UpdatedAt = time.Now()

	if err := s.dentists.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DentistService) Delete(ctx context.Context, id string) error {
	deleted, err := s.dentists.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Dentist", "id", id)
	}
	log.Println("Dentist deleted:", id)
	return nil
}

func (s *DentistService) GetPage(ctx context.Context, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	dentists, total, err := s.dentists.FindPage(ctx, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if dentists == nil {
		dentists = []models.Dentist{}
	}
	resp := models.NewPageResponse(dentists, page, size, total)
	return &resp, nil
}

func (s *DentistService) GetAll(ctx context.Context) ([]models.Dentist, error) {
	return s.dentists.FindAll(ctx)
}

func (s *DentistService) GetActive(ctx context.Context) ([]models.Dentist, error) {
	return s.dentists.FindByActiveTrue(ctx)
}

func (s *DentistService) GetBySpecialization(ctx context.Context, specialization string) ([]models.Dentist, error) {
	return s.dentists.FindBySpecialization(ctx, specialization)
}

// GetChief returns the current chief dentist, or a not found error when
// nobody holds the flag.
func (s *DentistService) GetChief(ctx context.Context) (*models.Dentist, error) {
	chiefs, err := s.dentists.FindByChiefDentistTrue(ctx)
	if err != nil {
		return nil, err
	}
	if len(chiefs) == 0 {
		return nil, utils.NotFound("Chief dentist", "chiefDentist", "true")
	}
	if len(chiefs) > 1 {
		log.Println("WARNING: found", len(chiefs), "dentists flagged as chief, returning the first")
	}
	return &chiefs[0], nil
}

func (s *DentistService) Search(ctx context.Context, query string) ([]models.Dentist, error) {
	return s.dentists.Search(ctx, query)
}

func (s *DentistService) ExportExcel(ctx context.Context) ([]byte, error) {
	dentists, err := s.dentists.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.DentistsToExcel(dentists)
}

func (s *DentistService) ExportPdf(ctx context.Context, id string) ([]byte, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.DentistPdf(d)
}
