package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PrescriptionActive    = "ACTIVE"
	PrescriptionCompleted = "COMPLETED"
	PrescriptionExpired   = "EXPIRED"
)

type Prescription struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID        string             `json:"patientId" bson:"patientId"`
	PatientName      string             `json:"patientName" bson:"patientName"`
	DentistID        string             `json:"dentistId" bson:"dentistId"`
	DentistName      string             `json:"dentistName" bson:"dentistName"`
	PrescriptionDate string             `json:"prescriptionDate" bson:"prescriptionDate"`
	Diagnosis        string             `json:"diagnosis" bson:"diagnosis"`
	Medications      string             `json:"medications" bson:"medications"`
	Notes            string             `json:"notes" bson:"notes"`
	RequiresFollowUp bool               `json:"requiresFollowUp" bson:"requiresFollowUp"`
	Status           string             `json:"status" bson:"status"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (p Prescription) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.PatientID, validation.Required),
		validation.Field(&p.DentistID, validation.Required),
		validation.Field(&p.PrescriptionDate, validation.Date("2006-01-02")),
		validation.Field(&p.Status, validation.Required, validation.In(
			PrescriptionActive, PrescriptionCompleted, PrescriptionExpired)),
	)
}
