package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type TreatmentRepository struct {
	coll *mongo.Collection
}

func NewTreatmentRepository() *TreatmentRepository {
	return &TreatmentRepository{coll: database.OpenCollection("treatments")}
}

func (r *TreatmentRepository) FindByID(ctx context.Context, id string) (*models.Treatment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var t models.Treatment
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

func (r *TreatmentRepository) Insert(ctx context.Context, t *models.Treatment) error {
	id, err := database.InsertOne(ctx, r.coll, t)
	if err != nil {
		return err
	}
	t.ID = id.(primitive.ObjectID)
	return nil
}

func (r *TreatmentRepository) Replace(ctx context.Context, t *models.Treatment) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": t.ID}, t)
}

func (r *TreatmentRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *TreatmentRepository) FindAll(ctx context.Context) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := database.FindAll(ctx, r.coll, bson.M{}, bson.D{{Key: "treatmentName", Value: 1}}, &treatments)
	return treatments, err
}

func (r *TreatmentRepository) FindByCategory(ctx context.Context, category string) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := database.FindAll(ctx, r.coll, bson.M{"category": category},
		bson.D{{Key: "treatmentName", Value: 1}}, &treatments)
	return treatments, err
}

func (r *TreatmentRepository) FindAvailable(ctx context.Context) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := database.FindAll(ctx, r.coll, bson.M{"availableForBooking": true},
		bson.D{{Key: "treatmentName", Value: 1}}, &treatments)
	return treatments, err
}

func (r *TreatmentRepository) ExistsByTreatmentName(ctx context.Context, name string) (bool, error) {
	return database.Exists(ctx, r.coll, bson.M{"treatmentName": name})
}

func (r *TreatmentRepository) Search(ctx context.Context, query string) ([]models.Treatment, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"treatmentName": regex},
		{"category": regex},
		{"description": regex},
	}}
	var treatments []models.Treatment
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "treatmentName", Value: 1}}, &treatments)
	return treatments, err
}
