package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestimonialStatus string

const (
	TestimonialStatusPending  TestimonialStatus = "pending"
	TestimonialStatusApproved TestimonialStatus = "approved"
)

func (s TestimonialStatus) IsValid() bool {
	return s == TestimonialStatusPending || s == TestimonialStatusApproved
}

type Testimonial struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	Location     string             `json:"location" bson:"location"`
	Rating       int                `json:"rating" bson:"rating"`
	Review       string             `json:"review" bson:"review"`
	PackageName  string             `json:"packageName" bson:"packageName"`
	Date         string             `json:"date" bson:"date"`
	Images       []string           `json:"images" bson:"images"`
	Status       TestimonialStatus  `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

type TestimonialCreateRequest struct {
	CustomerName string   `json:"customerName" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Rating       int      `json:"rating" binding:"required,min=1,max=5"`
	Review       string   `json:"review" binding:"required"`
	PackageName  string   `json:"packageName" binding:"required"`
	Date         string   `json:"date"`
	Images       []string `json:"images"`
}

func NewTestimonial(req *TestimonialCreateRequest) *Testimonial {
	return &Testimonial{
		CustomerName: req.CustomerName,
		Location:     req.Location,
		Rating:       req.Rating,
		Review:       req.Review,
		PackageName:  req.PackageName,
		Date:         req.Date,
		Images:       req.Images,
		Status:       TestimonialStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}
