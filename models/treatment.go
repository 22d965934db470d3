package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Treatment struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TreatmentName       string             `json:"treatmentName" bson:"treatmentName"`
	Category            string             `json:"category" bson:"category"`
	Description         string             `json:"description" bson:"description"`
	AvailableForBooking bool               `json:"availableForBooking" bson:"availableForBooking"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (t Treatment) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TreatmentName, validation.Required),
		validation.Field(&t.Category, validation.Required),
	)
}
