package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserRole enumerates the roles a user can hold. Every user holds exactly one.
type UserRole string

const (
	RoleClient     UserRole = "client"
	RoleFreelancer UserRole = "freelancer"
	RoleAdmin      UserRole = "admin"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleFreelancer, RoleAdmin:
		return true
	}
	return false
}

// FreelancerStartingConnects is the credit balance granted to freelancer
// accounts on signup.
const FreelancerStartingConnects = 60

// User represents a user in the authentication system. PasswordHash is empty
// for social-only accounts. VerificationToken and PasswordResetToken are
// single-use: they are cleared when consumed and overwritten when reissued.
type User struct {
	ID                 bson.ObjectID `bson:"_id,omitempty"`
	Email              string        `bson:"email"`
	PasswordHash       string        `bson:"password_hash,omitempty"`
	Name               string        `bson:"name"`
	Role               UserRole      `bson:"role"`
	ImageURL           string        `bson:"image_url,omitempty"`
	Connects           *int          `bson:"connects,omitempty"`
	EmailVerified      bool          `bson:"email_verified"`
	VerificationToken  string        `bson:"verification_token,omitempty"`
	PasswordResetToken string        `bson:"password_reset_token,omitempty"`
	GoogleID           string        `bson:"google_id,omitempty"`
	AppleID            string        `bson:"apple_id,omitempty"`
	TwoFactorEnabled   bool          `bson:"two_factor_enabled"`
	CreatedAt          time.Time     `bson:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at"`
}
