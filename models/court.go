package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Court holds the structure for the courts collection in mongo, the registry
// of court names clerks can belong to.
type Court struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}
