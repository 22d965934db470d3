package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"NavidentClinic/database"
	"NavidentClinic/models"
)

type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{coll: database.OpenCollection("appointments")}
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var a models.Appointment
	found, err := database.FindOne(ctx, r.coll, bson.M{"_id": oid}, &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Insert(ctx context.Context, a *models.Appointment) error {
	id, err := database.InsertOne(ctx, r.coll, a)
	if err != nil {
		return err
	}
	a.ID = id.(primitive.ObjectID)
	return nil
}

func (r *AppointmentRepository) Replace(ctx context.Context, a *models.Appointment) error {
	return database.ReplaceOne(ctx, r.coll, bson.M{"_id": a.ID}, a)
}

func (r *AppointmentRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := database.DeleteOne(ctx, r.coll, bson.M{"_id": oid})
	return n > 0, err
}

func (r *AppointmentRepository) FindPage(ctx context.Context, page, size int64, sortBy, sortDir string) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	total, err := database.FindPage(ctx, r.coll, bson.M{}, &appointments, page, size, sortBy, sortDir)
	return appointments, total, err
}

func (r *AppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.FindAll(ctx, r.coll, bson.M{"patientId": patientID},
		bson.D{{Key: "appointmentDate", Value: -1}}, &appointments)
	return appointments, err
}

func (r *AppointmentRepository) FindByDentistID(ctx context.Context, dentistID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.FindAll(ctx, r.coll, bson.M{"dentistId": dentistID},
		bson.D{{Key: "appointmentDate", Value: -1}}, &appointments)
	return appointments, err
}

func (r *AppointmentRepository) FindByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.FindAll(ctx, r.coll, bson.M{"status": status},
		bson.D{{Key: "appointmentDate", Value: 1}}, &appointments)
	return appointments, err
}

func (r *AppointmentRepository) FindByDateBetween(ctx context.Context, start, end string) ([]models.Appointment, error) {
	filter := bson.M{"appointmentDate": bson.M{"$gte": start, "$lte": end}}
	var appointments []models.Appointment
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "appointmentDate", Value: 1}}, &appointments)
	return appointments, err
}

// FindUpcoming returns non-cancelled appointments scheduled from the given
// date onwards, earliest first.
func (r *AppointmentRepository) FindUpcoming(ctx context.Context, from string) ([]models.Appointment, error) {
	filter := bson.M{
		"appointmentDate": bson.M{"$gte": from},
		"status":          bson.M{"$ne": models.AppointmentCancelled},
	}
	var appointments []models.Appointment
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "appointmentDate", Value: 1}}, &appointments)
	return appointments, err
}

func (r *AppointmentRepository) Search(ctx context.Context, query string) ([]models.Appointment, error) {
	regex := bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	filter := bson.M{"$or": []bson.M{
		{"patientName": regex},
		{"dentistName": regex},
		{"notes": regex},
	}}
	var appointments []models.Appointment
	err := database.FindAll(ctx, r.coll, filter, bson.D{{Key: "appointmentDate", Value: -1}}, &appointments)
	return appointments, err
}
