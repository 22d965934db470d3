package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type PrescriptionRepository struct {
	coll *mongo.Collection
}

func NewPrescriptionRepository() *PrescriptionRepository {
	return &PrescriptionRepository{coll: database.OpenCollection("prescriptions")}
}

func (r *PrescriptionRepository) FindByID(ctx context.Context, id string) (*models.Prescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var p models.Prescription
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (r *PrescriptionRepository) Insert(ctx context.Context, p *models.Prescription) error {
	id, err := database.InsertOne(ctx, r.coll, p)
	if err != nil {
		return err
	}
	p.ID = id.(primitive.ObjectID)
	return nil
}

func (r *PrescriptionRepository) Replace(ctx context.Context, p *models.Prescription) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": p.ID}, p)
}

func (r *PrescriptionRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *PrescriptionRepository) FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Prescription, int64, error) {
	var prescriptions []models.Prescription
	total, err := database.FindPage(ctx, r.coll, bson.M{}, &prescriptions, page, size, sortBy, sortDir)
	return prescriptions, total, err
}

func (r *PrescriptionRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := database.FindAll(ctx, r.coll, bson.M{"patientId": patientID},
		bson.D{{Key: "prescriptionDate", Value: -1}}, &prescriptions)
	return prescriptions, err
}

func (r *PrescriptionRepository) FindByDentistID(ctx context.Context, dentistID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := database.FindAll(ctx, r.coll, bson.M{"dentistId": dentistID},
		bson.D{{Key: "prescriptionDate", Value: -1}}, &prescriptions)
	return prescriptions, err
}

func (r *PrescriptionRepository) FindByStatus(ctx context.Context, status string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := database.FindAll(ctx, r.coll, bson.M{"status": status},
		bson.D{{Key: "prescriptionDate", Value: -1}}, &prescriptions)
	return prescriptions, err
}

func (r *PrescriptionRepository) FindByDateBetween(ctx context.Context, start, end string) ([]models.Prescription, error) {
	filter := bson.M{"prescriptionDate": bson.M{"$gte": start, "$lte": end}}
	var prescriptions []models.Prescription
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "prescriptionDate", Value: -1}}, &prescriptions)
	return prescriptions, err
}

func (r *PrescriptionRepository) FindRequiringFollowUp(ctx context.Context) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := database.FindAll(ctx, r.coll, bson.M{"requiresFollowUp": true},
		bson.D{{Key: "prescriptionDate", Value: -1}}, &prescriptions)
	return prescriptions, err
}

func (r *PrescriptionRepository) Search(ctx context.Context, query string) ([]models.Prescription, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"patientName": regex},
		{"dentistName": regex},
		{"diagnosis": regex},
		{"medications": regex},
	}}
	var prescriptions []models.Prescription
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "prescriptionDate", Value: -1}}, &prescriptions)
	return prescriptions, err
}
