package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type PatientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{coll: database.OpenCollection("patients")}
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var p models.Patient
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) Insert(ctx context.Context, p *models.Patient) error {
	id, err := database.InsertOne(ctx, r.coll, p)
	if err != nil {
		return err
	}
	p.ID = id.(primitive.ObjectID)
	return nil
}

func (r *PatientRepository) Replace(ctx context.Context, p *models.Patient) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": p.ID}, p)
}

func (r *PatientRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *PatientRepository) FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Patient, int64, error) {
	var patients []models.Patient
	total, err := database.FindPage(ctx, r.coll, bson.M{}, &patients, page, size, sortBy, sortDir)
	return patients, total, err
}

func (r *PatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := database.FindAll(ctx, r.coll, bson.M{}, bson.D{{Key: "lastName", Value: 1}}, &patients)
	return patients, err
}

func (r *PatientRepository) FindByCity(ctx context.Context, city string) ([]models.Patient, error) {
	filter := bson.M{"address.city": bson.M{"$regex": primitive.Regex{Pattern: "^" + city + "$", Options: "i"}}}
	var patients []models.Patient
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "lastName", Value: 1}}, &patients)
	return patients, err
}

func (r *PatientRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*models.Patient, error) {
	var p models.Patient
	found, err := database.FindOne(ctx, r.coll, bson.M{"mobileNumber": mobileNumber}, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"firstName": regex},
		{"lastName": regex},
		{"email": regex},
		{"mobileNumber": regex},
	}}
	var patients []models.Patient
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "lastName", Value: 1}}, &patients)
	return patients, err
}
