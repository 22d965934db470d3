package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type DentistRepository struct {
	coll *mongo.Collection
}

func NewDentistRepository() *DentistRepository {
	return &DentistRepository{coll: database.OpenCollection("dentists")}
}

func (r *DentistRepository) FindByID(ctx context.Context, id string) (*models.Dentist, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var d models.Dentist
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &d)
	if err != nil || !found {
		return nil, err
	}
	return &d, nil
}

func (r *DentistRepository) Insert(ctx context.Context, d *models.Dentist) error {
	id, err := database.InsertOne(ctx, r.coll, d)
	if err != nil {
		return err
	}
	d.ID = id.(primitive.ObjectID)
	return nil
}

func (r *DentistRepository) Replace(ctx context.Context, d *models.Dentist) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": d.ID}, d)
}

func (r *DentistRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *DentistRepository) FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Dentist, int64, error) {
	var dentists []models.Dentist
	total, err := database.FindPage(ctx, r.coll, bson.M{}, &dentists, page, size, sortBy, sortDir)
	return dentists, total, err
}

func (r *DentistRepository) FindAll(ctx context.Context) ([]models.Dentist, error) {
	var dentists []models.Dentist
	err := database.FindAll(ctx, r.coll, bson.M{}, bson.D{{Key: "lastName", Value: 1}}, &dentists)
	return dentists, err
}

func (r *DentistRepository) FindByChiefDentistTrue(ctx context.Context) ([]models.Dentist, error) {
	var dentists []models.Dentist
	err := database.FindAll(ctx, r.coll, bson.M{"chiefDentist": true}, nil, &dentists)
	return dentists, err
}

func (r *DentistRepository) FindByActiveTrue(ctx context.Context) ([]models.Dentist, error) {
	var dentists []models.Dentist
	err := database.FindAll(ctx, r.coll, bson.M{"active": true}, bson.D{{Key: "lastName", Value: 1}}, &dentists)
	return dentists, err
}

func (r *DentistRepository) FindBySpecialization(ctx context.Context, specialization string) ([]models.Dentist, error) {
	filter := bson.M{"specializations": bson.M{
		"$regex": primitive.Regex{Pattern: "^" + specialization + "$", Options: "i"},
	}}
	var dentists []models.Dentist
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "lastName", Value: 1}}, &dentists)
	return dentists, err
}

func (r *DentistRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error) {
	return database.Exists(ctx, r.coll, bson.M{"licenseNumber": licenseNumber})
}

// ClearChiefExcept unsets the chief flag on every dentist other than keepID.
// Used while promoting so that at most one chief survives the write.
func (r *DentistRepository) ClearChiefExcept(ctx context.Context, keepID primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"chiefDentist": true, "_id": bson.M{"$ne": keepID}},
		bson.M{"$set": bson.M{"chiefDentist": false, "updatedAt": time.Now()}})
	return err
}

func (r *DentistRepository) Search(ctx context.Context, query string) ([]models.Dentist, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"firstName": regex},
		{"lastName": regex},
		{"licenseNumber": regex},
		{"specializations": regex},
	}}
	var dentists []models.Dentist
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "lastName", Value: 1}}, &dentists)
	return dentists, err
}
