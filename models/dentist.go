package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dentist is a consultant dentist. At most one record may carry
// chiefDentist=true at any time; the service layer enforces this.
type Dentist struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName       string             `json:"firstName" bson:"firstName"`
	LastName        string             `json:"lastName" bson:"lastName"`
	LicenseNumber   string             `json:"licenseNumber" bson:"licenseNumber"`
	Email           string             `json:"email" bson:"email"`
	MobileNumber    string             `json:"mobileNumber" bson:"mobileNumber"`
	Specializations []string           `json:"specializations" bson:"specializations"`
	Active          bool               `json:"active" bson:"active"`
	ChiefDentist    bool               `json:"chiefDentist" bson:"chiefDentist"`
	Qualification   string             `json:"qualification" bson:"qualification"`
	ExperienceYears int                `json:"experienceYears" bson:"experienceYears"`
	ConsultationFee string             `json:"consultationFee" bson:"consultationFee"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (d Dentist) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.FirstName, validation.Required),
		validation.Field(&d.LastName, validation.Required),
		validation.Field(&d.LicenseNumber, validation.Required),
		validation.Field(&d.Email, is.EmailFormat),
		validation.Field(&d.ExperienceYears, validation.Min(0)),
	)
}
