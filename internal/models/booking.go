package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type BookingType string

const (
	BookingTypePackage BookingType = "package"
	BookingTypeCab     BookingType = "cab"
)

type Booking struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName    string             `json:"customerName" bson:"customerName"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone" bson:"phone"`
	PackageID       string             `json:"packageId,omitempty" bson:"packageId,omitempty"`
	PackageTitle    string             `json:"packageTitle" bson:"packageTitle"`
	TravelDate      time.Time          `json:"travelDate" bson:"travelDate"`
	Travelers       int                `json:"travelers" bson:"travelers"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
	Status          BookingStatus      `json:"status" bson:"status"`
	SpecialRequests string             `json:"specialRequests" bson:"specialRequests"`
	BookingType     BookingType        `json:"bookingType" bson:"bookingType"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

type BookingCreateRequest struct {
	CustomerName    string    `json:"customerName" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Phone           string    `json:"phone" binding:"required"`
	PackageID       string    `json:"packageId"`
	PackageTitle    string    `json:"packageTitle" binding:"required"`
	TravelDate      time.Time `json:"travelDate" binding:"required"`
	Travelers       int       `json:"travelers" binding:"required,min=1"`
	TotalAmount     float64   `json:"totalAmount"`
	SpecialRequests string    `json:"specialRequests"`
	BookingType     string    `json:"bookingType"`
}

func NewBooking(req *BookingCreateRequest) *Booking {
	bookingType := BookingType(req.BookingType)
	if bookingType != BookingTypeCab {
		bookingType = BookingTypePackage
	}
	return &Booking{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		PackageID:       req.PackageID,
		PackageTitle:    req.PackageTitle,
		TravelDate:      req.TravelDate,
		Travelers:       req.Travelers,
		TotalAmount:     req.TotalAmount,
		Status:          BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
		BookingType:     bookingType,
		CreatedAt:       time.Now().UTC(),
	}
}
