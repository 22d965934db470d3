package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"NavidentClinic/role"
)

// User is a staff account. The password field holds the bcrypt hash in the
// database and is stripped from responses by the service layer.
type User struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username           string             `json:"username" bson:"username"`
	Password           string             `json:"password,omitempty" bson:"password"`
	Email              string             `json:"email" bson:"email"`
	FirstName          string             `json:"firstName" bson:"firstName"`
	LastName           string             `json:"lastName" bson:"lastName"`
	Role               string             `json:"role" bson:"role"`
	Active             bool               `json:"active" bson:"active"`
	Locked             bool               `json:"locked" bson:"locked"`
	CredentialsExpired bool               `json:"credentialsExpired" bson:"credentialsExpired"`
	AccountExpired     bool               `json:"accountExpired" bson:"accountExpired"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Usable reports whether the account may authenticate at all.
func (u *User) Usable() bool {
	return u.Active && !u.Locked && !u.CredentialsExpired && !u.AccountExpired
}

func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&u.Email, validation.Required, is.EmailFormat),
		validation.Field(&u.Role, validation.Required, validation.In(
			role.Administrator, role.ChiefDentist, role.ClinicAssistant, role.PrintingOnly)),
	)
}
