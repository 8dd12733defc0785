package models

import "time"

type Event struct {
	ID               string    `bson:"_id,omitempty" json:"id,omitempty"`
	Title            string    `bson:"title" json:"title"`
	ShortDescription string    `bson:"shortDescription" json:"shortDescription"`
	Category         string    `bson:"category" json:"category"`
	Description      string    `bson:"description" json:"description"`
	ImageURL         string    `bson:"imageUrl" json:"imageUrl"`
	Date             string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time             string    `bson:"time" json:"time"` // HH:MM
	EndTime          string    `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Location         string    `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateEvent struct {
	Title            string `bson:"title" json:"title"`
	ShortDescription string `bson:"shortDescription" json:"shortDescription"`
	Category         string `bson:"category" json:"category"`
	Description      string `bson:"description" json:"description"`
	ImageURL         string `bson:"imageUrl" json:"imageUrl"`
	Date             string `bson:"date" json:"date"`
	Time             string `bson:"time" json:"time"`
	EndTime          string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Location         string `bson:"location,omitempty" json:"location,omitempty"`
}
