package repositories

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type FinanceRepository struct {
	coll *mongo.Collection
}

func NewFinanceRepository() *FinanceRepository {
	return &FinanceRepository{coll: database.OpenCollection("clinic_finances")}
}

func (r *FinanceRepository) FindByID(ctx context.Context, id string) (*models.ClinicFinance, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var t models.ClinicFinance
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

func (r *FinanceRepository) Insert(ctx context.Context, t *models.ClinicFinance) error {
	id, err := database.InsertOne(ctx, r.coll, t)
	if err != nil {
		return err
	}
	t.ID = id.(primitive.ObjectID)
	return nil
}

func (r *FinanceRepository) InsertMany(ctx context.Context, txns []models.ClinicFinance) error {
	docs := make([]interface{}, 0, len(txns))
	for i := range txns {
		docs = append(docs, txns[i])
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *FinanceRepository) Replace(ctx context.Context, t *models.ClinicFinance) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": t.ID}, t)
}

func (r *FinanceRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

// FindPage supports optional category and type filters on top of pagination.
func (r *FinanceRepository) FindPage(ctx context.Context, category, txnType string, page, size int64, sortBy, sortDir string) ([]models.ClinicFinance, int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if txnType != "" {
		filter["type"] = txnType
	}
	var txns []models.ClinicFinance
	total, err := database.FindPage(ctx, r.coll, filter, &txns, page, size, sortBy, sortDir)
	return txns, total, err
}

func (r *FinanceRepository) FindByDateRange(ctx context.Context, start, end string) ([]models.ClinicFinance, error) {
	filter := bson.M{"transactionDate": bson.M{"$gte": start, "$lte": end}}
	var txns []models.ClinicFinance
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "transactionDate", Value: 1}}, &txns)
	return txns, err
}

func (r *FinanceRepository) FindByCategory(ctx context.Context, category string) ([]models.ClinicFinance, error) {
	var txns []models.ClinicFinance
	err := database.FindAll(ctx, r.coll, bson.M{"category": category},
		bson.D{{Key: "transactionDate", Value: -1}}, &txns)
	return txns, err
}

func (r *FinanceRepository) FindByType(ctx context.Context, txnType string) ([]models.ClinicFinance, error) {
	var txns []models.ClinicFinance
	err := database.FindAll(ctx, r.coll, bson.M{"type": txnType},
		bson.D{{Key: "transactionDate", Value: -1}}, &txns)
	return txns, err
}

func (r *FinanceRepository) Search(ctx context.Context, query string) ([]models.ClinicFinance, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"description": regex},
		{"vendorName": regex},
		{"type": regex},
	}}
	var txns []models.ClinicFinance
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "transactionDate", Value: -1}}, &txns)
	return txns, err
}

// Distinct returns the sorted distinct string values of a field.
func (r *FinanceRepository) Distinct(ctx context.Context, field string) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}
