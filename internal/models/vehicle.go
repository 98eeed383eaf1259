package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleType string

const (
	VehicleTypeSedan   VehicleType = "sedan"
	VehicleTypeSUV     VehicleType = "suv"
	VehicleTypeTempo   VehicleType = "tempo"
	VehicleTypeBus     VehicleType = "bus"
	VehicleTypeHatch   VehicleType = "hatchback"
	VehicleTypePremium VehicleType = "premium"
)

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeSedan, VehicleTypeSUV, VehicleTypeTempo, VehicleTypeBus, VehicleTypeHatch, VehicleTypePremium:
		return true
	}
	return false
}

type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeCNG      FuelType = "cng"
	FuelTypeElectric FuelType = "electric"
)

type TransmissionType string

const (
	TransmissionManual    TransmissionType = "manual"
	TransmissionAutomatic TransmissionType = "automatic"
)

type VehicleSpecifications struct {
	Seats        int              `json:"seats" bson:"seats"`
	Luggage      int              `json:"luggage" bson:"luggage"`
	FuelType     FuelType         `json:"fuelType" bson:"fuelType"`
	Transmission TransmissionType `json:"transmission" bson:"transmission"`
	Mileage      string           `json:"mileage" bson:"mileage"`
	AC           bool             `json:"ac" bson:"ac"`
}

type Vehicle struct {
	ID             primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	Name           string                `json:"name" bson:"name"`
	Model          string                `json:"model" bson:"model"`
	Type           VehicleType           `json:"type" bson:"type"`
	Description    string                `json:"description" bson:"description"`
	Image          string                `json:"image" bson:"image"`
	Capacity       string                `json:"capacity" bson:"capacity"`
	Price          float64               `json:"price" bson:"price"`
	PriceUnit      string                `json:"priceUnit" bson:"priceUnit"`
	Specifications VehicleSpecifications `json:"specifications" bson:"specifications"`
	Features       []string              `json:"features" bson:"features"`
	Active         bool                  `json:"active" bson:"active"`
	Popular        bool                  `json:"isPopular" bson:"isPopular"`
	SortOrder      int                   `json:"sortOrder" bson:"sortOrder"`
	CreatedAt      time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt" bson:"updatedAt"`
}

type VehicleCreateRequest struct {
	Name           string                `json:"name" binding:"required"`
	Model          string                `json:"model"`
	Type           VehicleType           `json:"type" binding:"required"`
	Description    string                `json:"description"`
	Image          string                `json:"image"`
	Capacity       string                `json:"capacity"`
	Price          float64               `json:"price" binding:"required,gt=0"`
	PriceUnit      string                `json:"priceUnit"`
	Specifications VehicleSpecifications `json:"specifications"`
	Features       []string              `json:"features"`
	Popular        bool                  `json:"isPopular"`
	SortOrder      int                   `json:"sortOrder"`
}

type VehicleUpdateRequest struct {
	Name           *string                `json:"name"`
	Model          *string                `json:"model"`
	Type           *VehicleType           `json:"type"`
	Description    *string                `json:"description"`
	Image          *string                `json:"image"`
	Capacity       *string                `json:"capacity"`
	Price          *float64               `json:"price"`
	PriceUnit      *string                `json:"priceUnit"`
	Specifications *VehicleSpecifications `json:"specifications"`
	Features       *[]string              `json:"features"`
	Active         *bool                  `json:"active"`
	Popular        *bool                  `json:"isPopular"`
	SortOrder      *int                   `json:"sortOrder"`
}

func (r *VehicleUpdateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Model != nil {
		updates["model"] = *r.Model
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Image != nil {
		updates["image"] = *r.Image
	}
	if r.Capacity != nil {
		updates["capacity"] = *r.Capacity
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.PriceUnit != nil {
		updates["priceUnit"] = *r.PriceUnit
	}
	if r.Specifications != nil {
		updates["specifications"] = *r.Specifications
	}
	if r.Features != nil {
		updates["features"] = *r.Features
	}
	if r.Active != nil {
		updates["active"] = *r.Active
	}
	if r.Popular != nil {
		updates["isPopular"] = *r.Popular
	}
	if r.SortOrder != nil {
		updates["sortOrder"] = *r.SortOrder
	}
	if len(updates) > 0 {
		updates["updatedAt"] = time.Now().UTC()
	}
	return updates
}

func NewVehicle(req *VehicleCreateRequest) *Vehicle {
	priceUnit := req.PriceUnit
	if priceUnit == "" {
		priceUnit = "per km"
	}
	now := time.Now().UTC()
	return &Vehicle{
		Name:           req.Name,
		Model:          req.Model,
		Type:           req.Type,
		Description:    req.Description,
		Image:          req.Image,
		Capacity:       req.Capacity,
		Price:          req.Price,
		PriceUnit:      priceUnit,
		Specifications: req.Specifications,
		Features:       req.Features,
		Active:         true,
		Popular:        req.Popular,
		SortOrder:      req.SortOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
