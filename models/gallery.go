package models

import "time"

type GalleryItem struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	Src         string    `bson:"src" json:"src"`
	Alt         string    `bson:"alt" json:"alt"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

type CreateGalleryItem struct {
	Src         string `bson:"src" json:"src"`
	Alt         string `bson:"alt" json:"alt"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}
