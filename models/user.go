package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// The three roles a user can hold.
const (
	RoleCourtAdmin   = "Court Admin"
	RoleCircuitClerk = "Circuit Clerk"
	RoleChiefJustice = "Chief Justice"
)

// User holds the structure for the users collection in mongo. CircuitCourt
// is only meaningful for Circuit Clerks; Email is optional and only used for
// notifications.
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Username     string             `json:"username" bson:"username"`
	Password     string             `json:"password,omitempty" bson:"password"`
	Role         string             `json:"role" bson:"role"`
	CircuitCourt string             `json:"circuitCourt,omitempty" bson:"circuitCourt,omitempty"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
}

// ValidRole reports whether role is one of the three allowed roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCourtAdmin, RoleCircuitClerk, RoleChiefJustice:
		return true
	}
	return false
}
