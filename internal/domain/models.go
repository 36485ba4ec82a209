package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

// StatusRequested marks a user who asked for a role change.
const StatusRequested = "Requested"

// Party is the identity embedded in rooms and bookings. Correlation across
// collections is by email, not by foreign key.
type Party struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp *time.Time         `bson:"time,omitempty" json:"time,omitempty"`
}

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Guests      int                `bson:"guests,omitempty" json:"guests,omitempty"`
	Bedrooms    int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Host        Party              `bson:"host,omitempty" json:"host,omitempty"`
	Booked      bool               `bson:"booked" json:"booked"`
}

// RoomImage is the projection served by the gallery route.
type RoomImage struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}

type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Guest      Party              `bson:"guest" json:"guest"`
	Host       Party              `bson:"host" json:"host"`
	RoomID     primitive.ObjectID `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	Time       time.Time          `bson:"time" json:"time"`
}

// RoomPage is the paginated rooms listing response.
type RoomPage struct {
	Result      []Room `json:"result"`
	TotalResult int64  `json:"totalResult"`
}

// Raw store outcomes echoed to clients, mirroring the driver result shapes
// the web frontend already consumes.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
