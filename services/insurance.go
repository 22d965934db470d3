package services

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type InsuranceStore interface {
	FindByID(ctx context.Context, id string) (*models.Insurance, error)
	Insert(ctx context.Context, ins *models.Insurance) error
	Replace(ctx context.Context, ins *models.Insurance) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Insurance, int64, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Insurance, error)
	FindActive(ctx context.Context) ([]models.Insurance, error)
	FindExpiring(ctx context.Context, from, to string) ([]models.Insurance, error)
	Search(ctx context.Context, query string) ([]models.Insurance, error)
}

const expiringSoonWindowDays = 30

type InsuranceService struct {
	insurances InsuranceStore
	patients   PatientLookup
}

func NewInsuranceService(insurances InsuranceStore, patients PatientLookup) *InsuranceService {
	return &InsuranceService{insurances: insurances, patients: patients}
}

func (s *InsuranceService) Create(ctx context.Context, in *models.Insurance) (*models.Insurance, error) {
	if in.Status == "" {
		in.Status = models.InsuranceActive
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

	in.ID = primitive.ObjectID{}
	in.Active = in.Status == models.InsuranceActive
	in.ClaimSubmitted = false
	in.ClaimApproved = false
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()
	if err := s.insurances.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("Insurance policy created:", in.PolicyNumber)
	return in, nil
}

func (s *InsuranceService) GetByID(ctx context.Context, id string) (*models.Insurance, error) {
	ins, err := s.insurances.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, utils.NotFound("Insurance", "id", id)
	}
	return ins, nil
}

func (s *InsuranceService) Update(ctx context.Context, id string, in *models.Insurance) (*models.Insurance, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.AgencyName = in.AgencyName
	existing.PolicyNumber = in.PolicyNumber
	existing.PolicyEndDate = in.PolicyEndDate
	existing.TreatmentDescription = in.TreatmentDescription
	if in.Status != "" {
		existing.Status = in.Status
		existing.Active = in.Status == models.InsuranceActive
	}
	existing.UpdatedAt = time.Now()

	if err := s.insurances.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateStatus changes only the policy status, keeping the Active flag in
// step with it.
func (s *InsuranceService) UpdateStatus(ctx context.Context, id, status string) (*models.Insurance, error) {
	switch status {
	case models.InsuranceActive, models.InsuranceExpired, models.InsuranceClaimed, models.InsuranceApproved:
	default:
		return nil, utils.InvalidArgument("Unknown insurance status: " + status)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Status = status
	existing.Active = status == models.InsuranceActive
	existing.UpdatedAt = time.Now()

	if err := s.insurances.Replace(ctx, existing); err != nil {
		return nil, err
	}
	log.Println("Insurance policy", existing.PolicyNumber, "status set to", status)
	return existing, nil
}

func (s *InsuranceService) Delete(ctx context.Context, id string) error {
	deleted, err := s.insurances.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Insurance", "id", id)
	}
	log.Println("Insurance policy deleted:", id)
	return nil
}

/*
* SubmitClaim records a claim against the policy. A policy holds one claim
* at a time; submitting over a pending or approved claim is rejected.
 */
func (s *InsuranceService) SubmitClaim(ctx context.Context, id string, amount decimal.Decimal, description string) (*models.Insurance, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.ClaimSubmitted {
		return nil, utils.InvalidState("A claim has already been submitted for this policy")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, utils.InvalidArgument("Claim amount must be positive")
	}

	existing.ClaimSubmitted = true
	existing.ClaimApproved = false
	existing.ClaimAmount = amount
	existing.TreatmentDescription = description
	existing.Status = models.InsuranceClaimed
	existing.UpdatedAt = time.Now()

	if err := s.insurances.Replace(ctx, existing); err != nil {
		return nil, err
	}
	log.Println("Claim submitted on policy", existing.PolicyNumber, "for", amount.String())
	return existing, nil
}

// ApproveClaim approves a previously submitted claim, optionally for a
// different amount than requested.
func (s *InsuranceService) ApproveClaim(ctx context.Context, id string, approvedAmount decimal.Decimal) (*models.Insurance, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.ClaimSubmitted {
		return nil, utils.InvalidState("No claim has been submitted for this policy")
	}
	if existing.ClaimApproved {
		return nil, utils.InvalidState("The claim on this policy is already approved")
	}
	if approvedAmount.IsNegative() {
		return nil, utils.InvalidArgument("Approved amount must not be negative")
	}

	existing.ClaimApproved = true
	existing.ApprovedClaimAmount = approvedAmount
	existing.Status = models.InsuranceApproved
	existing.UpdatedAt = time.Now()

	if err := s.insurances.Replace(ctx, existing); err != nil {
		return nil, err
	}
	log.Println("Claim approved on policy", existing.PolicyNumber, "for", approvedAmount.String())
	return existing, nil
}

func (s *InsuranceService) GetPage(ctx context.Context, page, size int64, sortBy, sortDir string) (*models.PageResponse, error) {
	insurances, total, err := s.insurances.FindPage(ctx, page, size, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	if insurances == nil {
		insurances = []models.Insurance{}
	}
	resp := models.NewPageResponse(insurances, page, size, total)
	return &resp, nil
}

func (s *InsuranceService) GetByPatient(ctx context.Context, patientID string) ([]models.Insurance, error) {
	return s.insurances.FindByPatientID(ctx, patientID)
}

func (s *InsuranceService) GetActive(ctx context.Context) ([]models.Insurance, error) {
	return s.insurances.FindActive(ctx)
}

// GetExpiringSoon returns active policies ending within the next 30 days.
func (s *InsuranceService) GetExpiringSoon(ctx context.Context) ([]models.Insurance, error) {
	from := time.Now()
	to := from.AddDate(0, 0, expiringSoonWindowDays)
	return s.insurances.FindExpiring(ctx, from.Format(utils.DateLayout), to.Format(utils.DateLayout))
}

func (s *InsuranceService) Search(ctx context.Context, query string) ([]models.Insurance, error) {
	return s.insurances.Search(ctx, query)
}

func (s *InsuranceService) ExportExcel(ctx context.Context, patientID string) ([]byte, error) {
	insurances, err := s.insurances.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.InsuranceToExcel(insurances)
}
