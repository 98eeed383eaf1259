package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PackageStatus string

const (
	PackageStatusActive   PackageStatus = "active"
	PackageStatusInactive PackageStatus = "inactive"
)

func (s PackageStatus) IsValid() bool {
	return s == PackageStatusActive || s == PackageStatusInactive
}

// ItineraryDay is one entry of a package's day-wise plan.
type ItineraryDay struct {
	Day           int      `json:"day" bson:"day"`
	Title         string   `json:"title" bson:"title"`
	Description   string   `json:"description" bson:"description"`
	Activities    []string `json:"activities" bson:"activities"`
	Accommodation string   `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	Image         string   `json:"image,omitempty" bson:"image,omitempty"`
}

type Package struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    string             `json:"duration" bson:"duration"`
	Price       float64            `json:"price" bson:"price"`
	GroupSize   string             `json:"groupSize" bson:"groupSize"`
	Image       string             `json:"image" bson:"image"`
	Images      []string           `json:"images" bson:"images"`
	Highlights  []string           `json:"highlights" bson:"highlights"`
	Itinerary   []ItineraryDay     `json:"itinerary" bson:"itinerary"`
	Inclusions  []string           `json:"inclusions" bson:"inclusions"`
	Exclusions  []string           `json:"exclusions" bson:"exclusions"`
	Category    string             `json:"category" bson:"category"`
	Status      PackageStatus      `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PackageCreateRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Duration    string         `json:"duration" binding:"required"`
	Price       float64        `json:"price" binding:"required"`
	GroupSize   string         `json:"groupSize" binding:"required"`
	Image       string         `json:"image"`
	Images      []string       `json:"images"`
	Highlights  []string       `json:"highlights"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Inclusions  []string       `json:"inclusions"`
	Exclusions  []string       `json:"exclusions"`
	Category    string         `json:"category"`
}

type PackageUpdateRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Duration    *string         `json:"duration"`
	Price       *float64        `json:"price"`
	GroupSize   *string         `json:"groupSize"`
	Image       *string         `json:"image"`
	Images      *[]string       `json:"images"`
	Highlights  *[]string       `json:"highlights"`
	Itinerary   *[]ItineraryDay `json:"itinerary"`
	Inclusions  *[]string       `json:"inclusions"`
	Exclusions  *[]string       `json:"exclusions"`
	Category    *string         `json:"category"`
	Status      *PackageStatus  `json:"status"`
}

// Updates builds the $set document from the non-nil fields.
func (r *PackageUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Duration != nil {
		updates["duration"] = *r.Duration
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.GroupSize != nil {
		updates["groupSize"] = *r.GroupSize
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.Images != nil {
		updates["images"] = *r.Images
	}
	if r.Highlights != nil {
		updates["highlights"] = *r.Highlights
	}
	if r.Itinerary != nil {
		updates["itinerary"] = *r.Itinerary
	}
	if r.Inclusions != nil {
		updates["inclusions"] = *r.Inclusions
	}
	if r.Exclusions != nil {
		updates["exclusions"] = *r.Exclusions
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	return updates
}

func NewPackage(req *PackageCreateRequest) *Package {
	now := time.Now().UTC()
	category := req.Category
	if category == "" {
		category = "standard"
	}
	return &Package{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		GroupSize:   req.GroupSize,
		Image:       req.Image,
		Images:      req.Images,
		Highlights:  req.Highlights,
		Itinerary:   req.Itinerary,
		Inclusions:  req.Inclusions,
		Exclusions:  req.Exclusions,
		Category:    category,
		Status:      PackageStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
