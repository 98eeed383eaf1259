package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GalleryImage struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Category  string             `json:"category" bson:"category"`
	URL       string             `json:"url" bson:"url"`
	Filename  string             `json:"filename" bson:"filename"`
	Size      int64              `json:"size" bson:"size"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

func NewGalleryImage(title, category, url, filename string, size int64) *GalleryImage {
	if category == "" {
		category = "general"
	}
	return &GalleryImage{
		Title:     title,
		Category:  category,
		URL:       url,
		Filename:  filename,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
}
