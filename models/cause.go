package models

import "time"

// Cause is the canonical cause shape. The backend assigns ID and the
// timestamps; create/update payloads never carry them.
type Cause struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Goal        float64   `bson:"goal" json:"goal"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateCause struct {
	Title       string  `bson:"title" json:"title"`
	Goal        float64 `bson:"goal" json:"goal"`
	Category    string  `bson:"category" json:"category"`
	Description string  `bson:"description" json:"description"`
	ImageURL    string  `bson:"imageUrl" json:"imageUrl"`
}
