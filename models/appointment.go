package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment keeps patientName/dentistName as snapshots taken at write time;
// they are not refreshed when the referenced record is renamed.
type Appointment struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID       string             `json:"patientId" bson:"patientId"`
	PatientName     string             `json:"patientName" bson:"patientName"`
	DentistID       string             `json:"dentistId" bson:"dentistId"`
	DentistName     string             `json:"dentistName" bson:"dentistName"`
	AppointmentDate string             `json:"appointmentDate" bson:"appointmentDate"`
	AppointmentTime string             `json:"appointmentTime" bson:"appointmentTime"`
	Status          string             `json:"status" bson:"status"`
	Notes           string             `json:"notes" bson:"notes"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (a Appointment) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.PatientID, validation.Required),
		validation.Field(&a.DentistID, validation.Required),
		validation.Field(&a.AppointmentDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&a.Status, validation.Required, validation.In(
			AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled)),
	)
}
