package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type InsuranceRepository struct {
	coll *mongo.Collection
}

func NewInsuranceRepository() *InsuranceRepository {
	return &InsuranceRepository{coll: database.OpenCollection("insurances")}
}

func (r *InsuranceRepository) FindByID(ctx context.Context, id string) (*models.Insurance, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var ins models.Insurance
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &ins)
	if err != nil || !found {
		return nil, err
	}
	return &ins, nil
}

func (r *InsuranceRepository) Insert(ctx context.Context, ins *models.Insurance) error {
	id, err := database.InsertOne(ctx, r.coll, ins)
	if err != nil {
		return err
	}
	ins.ID = id.(primitive.ObjectID)
	return nil
}

func (r *InsuranceRepository) Replace(ctx context.Context, ins *models.Insurance) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": ins.ID}, ins)
}

func (r *InsuranceRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *InsuranceRepository) FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Insurance, int64, error) {
	var insurances []models.Insurance
	total, err := database.FindPage(ctx, r.coll, bson.M{}, &insurances, page, size, sortBy, sortDir)
	return insurances, total, err
}

func (r *InsuranceRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Insurance, error) {
	var insurances []models.Insurance
	err := database.FindAll(ctx, r.coll, bson.M{"patientId": patientID},
		bson.D{{Key: "policyEndDate", Value: -1}}, &insurances)
	return insurances, err
}

func (r *InsuranceRepository) FindActive(ctx context.Context) ([]models.Insurance, error) {
	var insurances []models.Insurance
	err := database.FindAll(ctx, r.coll, bson.M{"active": true},
		bson.D{{Key: "policyEndDate", Value: 1}}, &insurances)
	return insurances, err
}

// FindExpiring returns active policies whose end date falls in [from, to].
func (r *InsuranceRepository) FindExpiring(ctx context.Context, from, to string) ([]models.Insurance, error) {
	filter := bson.M{
		"active":        true,
		"policyEndDate": bson.M{"$gte": from, "$lte": to},
	}
	var insurances []models.Insurance
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "policyEndDate", Value: 1}}, &insurances)
	return insurances, err
}

func (r *InsuranceRepository) Search(ctx context.Context, query string) ([]models.Insurance, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"agencyName": regex},
		{"policyNumber": regex},
		{"treatmentDescription": regex},
	}}
	var insurances []models.Insurance
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "policyEndDate", Value: -1}}, &insurances)
	return insurances, err
}
