package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the "users" collection. The store assigns the
// identifier; timestamps are set once at insert and refreshed on writes.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
