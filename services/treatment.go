package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/models"
	"NavidentClinic/utils"
)

type TreatmentStore interface {
	FindByID(ctx context.Context, id string) (*models.Treatment, error)
	Insert(ctx context.Context, t *models.Treatment) error
	Replace(ctx context.Context, t *models.Treatment) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]models.Treatment, error)
	FindByCategory(ctx context.Context, category string) ([]models.Treatment, error)
	FindAvailable(ctx context.Context) ([]models.Treatment, error)
	ExistsByTreatmentName(ctx context.Context, name string) (bool, error)
	Search(ctx context.Context, query string) ([]models.Treatment, error)
}

type TreatmentService struct {
	treatments TreatmentStore
}

func NewTreatmentService(treatments TreatmentStore) *TreatmentService {
	return &TreatmentService{treatments: treatments}
}

func (s *TreatmentService) Create(ctx context.Context, in *models.Treatment) (*models.Treatment, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	exists, err := s.treatments.ExistsByTreatmentName(ctx, in.TreatmentName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.Conflict("Treatment already exists with name: " + in.TreatmentName)
	}

	in.ID = primitive.ObjectID{}
	in.CreatedAt = time.Now()
	in.UpdatedAt = time.Now()
	if err := s.treatments.Insert(ctx, in); err != nil {
		return nil, err
	}
	log.Println("Treatment created:", in.TreatmentName)
	return in, nil
}

func (s *TreatmentService) GetByID(ctx context.Context, id string) (*models.Treatment, error) {
	t, err := s.treatments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, utils.NotFound("Treatment", "id", id)
	}
	return t, nil
}

func (s *TreatmentService) Update(ctx context.Context, id string, in *models.Treatment) (*models.Treatment, error) {
	if err := in.Validate(); err != nil {
		return nil, utils.ValidationFailed(err)
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.TreatmentName != existing.TreatmentName {
		exists, err := s.treatments.ExistsByTreatmentName(ctx, in.TreatmentName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.Conflict("Treatment already exists with name: " + in.TreatmentName)
		}
	}

	existing.TreatmentName = in.TreatmentName
	existing.Category = in.Category
	existing.Description = in.Description
	existing.AvailableForBooking = in.AvailableForBooking
	existing.UpdatedAt = time.Now()

	if err := s.treatments.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TreatmentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.treatments.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Treatment", "id", id)
	}
	log.Println("Treatment deleted:", id)
	return nil
}

func (s *TreatmentService) GetAll(ctx context.Context) ([]models.Treatment, error) {
	return s.treatments.FindAll(ctx)
}

func (s *TreatmentService) GetByCategory(ctx context.Context, category string) ([]models.Treatment, error) {
	return s.treatments.FindByCategory(ctx, category)
}

func (s *TreatmentService) GetAvailable(ctx context.Context) ([]models.Treatment, error) {
	return s.treatments.FindAvailable(ctx)
}

func (s *TreatmentService) Search(ctx context.Context, query string) ([]models.Treatment, error) {
	return s.treatments.Search(ctx, query)
}
