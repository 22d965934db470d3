package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type BillRepository struct {
	coll *mongo.Collection
}

func NewBillRepository() *BillRepository {
	return &BillRepository{coll: database.OpenCollection("bills")}
}

func (r *BillRepository) FindByID(ctx context.Context, id string) (*models.Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var b models.Bill
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &b)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

func (r *BillRepository) Insert(ctx context.Context, b *models.Bill) error {
	id, err := database.InsertOne(ctx, r.coll, b)
	if err != nil {
		return err
	}
	b.ID = id.(primitive.ObjectID)
	return nil
}

func (r *BillRepository) Replace(ctx context.Context, b *models.Bill) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": b.ID}, b)
}

func (r *BillRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *BillRepository) FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Bill, int64, error) {
	var bills []models.Bill
	total, err := database.FindPage(ctx, r.coll, bson.M{}, &bills, page, size, sortBy, sortDir)
	return bills, total, err
}

func (r *BillRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error) {
	var bills []models.Bill
	err := database.FindAll(ctx, r.coll, bson.M{"patientId": patientID},
		bson.D{{Key: "billDate", Value: -1}}, &bills)
	return bills, err
}

func (r *BillRepository) FindByDentistID(ctx context.Context, dentistID string) ([]models.Bill, error) {
	var bills []models.Bill
	err := database.FindAll(ctx, r.coll, bson.M{"dentistId": dentistID},
		bson.D{{Key: "billDate", Value: -1}}, &bills)
	return bills, err
}

func (r *BillRepository) FindByPaymentStatus(ctx context.Context, status string) ([]models.Bill, error) {
	var bills []models.Bill
	err := database.FindAll(ctx, r.coll, bson.M{"paymentStatus": status},
		bson.D{{Key: "dueDate", Value: 1}}, &bills)
	return bills, err
}

// FindOverdue returns unpaid bills whose due date is strictly before today.
func (r *BillRepository) FindOverdue(ctx context.Context, today string) ([]models.Bill, error) {
	filter := bson.M{
		"paymentStatus": bson.M{"$ne": models.BillPaid},
		"dueDate":       bson.M{"$lt": today, "$ne": ""},
	}
	var bills []models.Bill
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "dueDate", Value: 1}}, &bills)
	return bills, err
}

func (r *BillRepository) Search(ctx context.Context, query string) ([]models.Bill, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"billId": regex},
		{"patientName": regex},
		{"dentistName": regex},
	}}
	var bills []models.Bill
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "billDate", Value: -1}}, &bills)
	return bills, err
}
