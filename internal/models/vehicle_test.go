package models

import "testing"

func TestNewVehicleDefaults(t *testing.T) {
	vehicle := NewVehicle(&VehicleCreateRequest{
		Name:     "Toyota Innova Crysta",
		Model:    "Premium MPV",
		Type:     VehicleTypeSUV,
		Capacity: "7 passengers",
		Price:    18,
		Popular:  true,
		Specifications: VehicleSpecifications{
			Seats:   7,
			Mileage: "15 kmpl",
		},
	})

	if vehicle.PriceUnit != "per km" {
		t.Errorf("PriceUnit = %q, want %q", vehicle.PriceUnit, "per km")
	}
	if !vehicle.Active {
		t.Error("a new vehicle should be active")
	}
	if !vehicle.Popular {
		t.Error("Popular flag lost on create")
	}
	if vehicle.Specifications.Mileage != "15 kmpl" {
		t.Errorf("Mileage = %q, want the request value", vehicle.Specifications.Mileage)
	}
}

func TestVehicleUpdateRequestPricing(t *testing.T) {
	price := 22.5
	unit := "per day"
	popular := false
	request := &VehicleUpdateRequest{
		Price:     &price,
		PriceUnit: &unit,
		Popular:   &popular,
	}

	updates := request.Updates()
	if updates["price"] != 22.5 {
		t.Errorf("price = %v, want 22.5", updates["price"])
	}
	if updates["priceUnit"] != "per day" {
		t.Errorf("priceUnit = %v, want per day", updates["priceUnit"])
	}
	if updates["isPopular"] != false {
		t.Errorf("isPopular = %v, want false", updates["isPopular"])
	}
	if _, ok := updates["updatedAt"]; !ok {
		t.Error("updatedAt missing from the update document")
	}
}
