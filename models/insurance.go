package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InsuranceActive   = "ACTIVE"
	InsuranceExpired  = "EXPIRED"
	InsuranceClaimed  = "CLAIMED"
	InsuranceApproved = "APPROVED"
)

type Insurance struct {
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID            string             `json:"patientId" bson:"patientId"`
	AgencyName           string             `json:"agencyName" bson:"agencyName"`
	PolicyNumber         string             `json:"policyNumber" bson:"policyNumber"`
	PolicyEndDate        string             `json:"policyEndDate" bson:"policyEndDate"`
	Active               bool               `json:"active" bson:"active"`
	ClaimSubmitted       bool               `json:"claimSubmitted" bson:"claimSubmitted"`
	ClaimApproved        bool               `json:"claimApproved" bson:"claimApproved"`
	ClaimAmount          decimal.Decimal    `json:"claimAmount" bson:"claimAmount"`
	ApprovedClaimAmount  decimal.Decimal    `json:"approvedClaimAmount" bson:"approvedClaimAmount"`
	Status               string             `json:"status" bson:"status"`
	TreatmentDescription string             `json:"treatmentDescription" bson:"treatmentDescription"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (i Insurance) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PatientID, validation.Required),
		validation.Field(&i.AgencyName, validation.Required),
		validation.Field(&i.PolicyNumber, validation.Required),
		validation.Field(&i.PolicyEndDate, validation.Date("2006-01-02")),
		validation.Field(&i.Status, validation.In(
			InsuranceActive, InsuranceExpired, InsuranceClaimed, InsuranceApproved)),
	)
}
