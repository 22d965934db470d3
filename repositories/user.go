package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{coll: database.OpenCollection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var u models.User
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	found, err := database.FindOne(ctx, r.coll, bson.M{"username": username}, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return database.Exists(ctx, r.coll, bson.M{"username": username})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return database.Exists(ctx, r.coll, bson.M{"email": email})
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	id, err := database.InsertOne(ctx, r.coll, u)
	if err != nil {
		return err
	}
	u.ID = id.(primitive.ObjectID)
	return nil
}

func (r *UserRepository) Replace(ctx context.Context, u *models.User) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": u.ID}, u)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *UserRepository) FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.User, int64, error) {
	var users []models.User
	total, err := database.FindPage(ctx, r.coll, bson.M{}, &users, page, size, sortBy, sortDir)
	return users, total, err
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := database.FindAll(ctx, r.coll, bson.M{}, bson.D{{Key: "username", Value: 1}}, &users)
	return users, err
}

func (r *UserRepository) Search(ctx context.Context, query string) ([]models.User, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"username": regex},
		{"email": regex},
		{"firstName": regex},
		{"lastName": regex},
	}}
	var users []models.User
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "username", Value: 1}}, &users)
	return users, err
}
