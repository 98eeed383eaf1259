package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripType string

const (
	TripTypeOneway    TripType = "oneway"
	TripTypeRoundtrip TripType = "roundtrip"
	TripTypeLocal     TripType = "local"
)

func (t TripType) IsValid() bool {
	return t == TripTypeOneway || t == TripTypeRoundtrip || t == TripTypeLocal
}

type CabBooking struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName    string             `json:"customerName" bson:"customerName"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone" bson:"phone"`
	PickupLocation  string             `json:"pickupLocation" bson:"pickupLocation"`
	DropLocation    string             `json:"dropLocation" bson:"dropLocation"`
	PickupDate      time.Time          `json:"pickupDate" bson:"pickupDate"`
	PickupTime      string             `json:"pickupTime" bson:"pickupTime"`
	ReturnDate      *time.Time         `json:"returnDate,omitempty" bson:"returnDate,omitempty"`
	ReturnTime      string             `json:"returnTime,omitempty" bson:"returnTime,omitempty"`
	TripType        TripType           `json:"tripType" bson:"tripType"`
	VehicleType     string             `json:"vehicleType" bson:"vehicleType"`
	Passengers      int                `json:"passengers" bson:"passengers"`
	SpecialRequests string             `json:"specialRequests" bson:"specialRequests"`
	Status          BookingStatus      `json:"status" bson:"status"`
	EstimatedCost   float64            `json:"estimatedCost" bson:"estimatedCost"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

type CabBookingCreateRequest struct {
	CustomerName    string     `json:"customerName" binding:"required"`
	Email           string     `json:"email" binding:"required,email"`
	Phone           string     `json:"phone" binding:"required"`
	PickupLocation  string     `json:"pickupLocation" binding:"required"`
	DropLocation    string     `json:"dropLocation"`
	PickupDate      time.Time  `json:"pickupDate" binding:"required"`
	PickupTime      string     `json:"pickupTime" binding:"required"`
	ReturnDate      *time.Time `json:"returnDate"`
	ReturnTime      string     `json:"returnTime"`
	TripType        TripType   `json:"tripType" binding:"required"`
	VehicleType     string     `json:"vehicleType" binding:"required"`
	Passengers      int        `json:"passengers" binding:"required,min=1"`
	SpecialRequests string     `json:"specialRequests"`
}

func NewCabBooking(req *CabBookingCreateRequest) *CabBooking {
	return &CabBooking{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		PickupLocation:  req.PickupLocation,
		DropLocation:    req.DropLocation,
		PickupDate:      req.PickupDate,
		PickupTime:      req.PickupTime,
		ReturnDate:      req.ReturnDate,
		ReturnTime:      req.ReturnTime,
		TripType:        req.TripType,
		VehicleType:     req.VehicleType,
		Passengers:      req.Passengers,
		SpecialRequests: req.SpecialRequests,
		Status:          BookingStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}
