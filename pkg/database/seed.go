package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"gmbtravels/internal/models"
	"gmbtravels/internal/utils"
)

// SeedDefaults inserts the default admin account, team members and cab
// fleet when their collections are empty. Safe to run on every startup.
func (m *MongoDB) SeedDefaults(ctx context.Context, bcryptCost int) error {
	if err := m.seedAdmin(ctx, bcryptCost); err != nil {
		return err
	}
	if err := m.seedTeamMembers(ctx, bcryptCost); err != nil {
		return err
	}
	return m.seedVehicles(ctx)
}

func (m *MongoDB) seedAdmin(ctx context.Context, bcryptCost int) error {
	admins := m.Collection("admins")
	count, err := admins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123", bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	_, err = admins.InsertOne(ctx, &models.Admin{
		Username:     "admin",
		Email:        "admin@gmbtravels.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}
	return nil
}

func (m *MongoDB) seedTeamMembers(ctx context.Context, bcryptCost int) error {
	members := m.Collection("team_members")
	count, err := members.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username string
		password string
		name     string
		email    string
		phone    string
		role     models.Role
		active   bool
	}{
		{"rajesh_manager", "rajesh123", "Rajesh Kumar", "rajesh@gmbtravels.com", "+91-9876543210", models.RoleManager, true},
		{"priya_agent", "priya123", "Priya Sharma", "priya@gmbtravels.com", "+91-9876543211", models.RoleAgent, true},
		{"amit_agent", "amit123", "Amit Singh", "amit@gmbtravels.com", "+91-9876543212", models.RoleAgent, false},
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(defaults))
	for _, d := range defaults {
		hash, err := utils.HashPassword(d.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", d.username, err)
		}
		docs = append(docs, &models.TeamMember{
			Username:     d.username,
			PasswordHash: hash,
			Name:         d.name,
			Email:        d.email,
			Phone:        d.phone,
			Role:         d.role,
			Active:       d.active,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if _, err := members.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed team members: %w", err)
	}
	return nil
}

func (m *MongoDB) seedVehicles(ctx context.Context) error {
	vehicles := m.Collection("vehicles")
	count, err := vehicles.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count vehicles: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	fleet := []interface{}{
		&models.Vehicle{
			Name:        "Maruti Swift Dzire",
			Model:       "Compact Sedan",
			Type:        models.VehicleTypeSedan,
			Description: "Comfortable sedan for city rides and airport transfers.",
			Capacity:    "4 Passengers",
			Price:       12,
			PriceUnit:   "per km",
			Specifications: models.VehicleSpecifications{
				Seats: 4, Luggage: 2, FuelType: models.FuelTypePetrol, Transmission: models.TransmissionManual, Mileage: "22 kmpl", AC: true,
			},
			Features:  []string{"AC", "Music System"},
			Active:    true,
			SortOrder: 1,
			CreatedAt: now,
			UpdatedAt: now,
		},
		&models.Vehicle{
			Name:        "Toyota Innova Crysta",
			Model:       "Premium MPV",
			Type:        models.VehicleTypeSUV,
			Description: "Spacious SUV ideal for family trips across the valley.",
			Capacity:    "6-8 Passengers",
			Price:       18,
			PriceUnit:   "per km",
			Specifications: models.VehicleSpecifications{
				Seats: 7, Luggage: 4, FuelType: models.FuelTypeDiesel, Transmission: models.TransmissionManual, Mileage: "15 kmpl", AC: true,
			},
			Features:  []string{"AC", "Music System", "Push Back Seats"},
			Active:    true,
			Popular:   true,
			SortOrder: 2,
			CreatedAt: now,
			UpdatedAt: now,
		},
		&models.Vehicle{
			Name:        "Mahindra Scorpio",
			Model:       "SUV Adventure",
			Type:        models.VehicleTypeSUV,
			Description: "Rugged SUV for mountain roads to Gulmarg and Sonamarg.",
			Capacity:    "7 Passengers",
			Price:       16,
			PriceUnit:   "per km",
			Specifications: models.VehicleSpecifications{
				Seats: 7, Luggage: 3, FuelType: models.FuelTypeDiesel, Transmission: models.TransmissionManual, Mileage: "14 kmpl", AC: true,
			},
			Features:  []string{"AC", "4x4"},
			Active:    true,
			SortOrder: 3,
			CreatedAt: now,
			UpdatedAt: now,
		},
		&models.Vehicle{
			Name:        "Tempo Traveller",
			Model:       "Group Transport",
			Type:        models.VehicleTypeTempo,
			Description: "12-seater for group tours and large families.",
			Capacity:    "12-20 Passengers",
			Price:       25,
			PriceUnit:   "per km",
			Specifications: models.VehicleSpecifications{
				Seats: 12, Luggage: 8, FuelType: models.FuelTypeDiesel, Transmission: models.TransmissionManual, Mileage: "10 kmpl", AC: true,
			},
			Features:  []string{"AC", "Push Back Seats", "Music System"},
			Active:    true,
			SortOrder: 4,
			CreatedAt: now,
			UpdatedAt: now,
		},
		&models.Vehicle{
			Name:        "Maruti Alto",
			Model:       "Budget Hatchback",
			Type:        models.VehicleTypeHatch,
			Description: "Budget hatchback for short local trips.",
			Capacity:    "4 Passengers",
			Price:       10,
			PriceUnit:   "per km",
			Specifications: models.VehicleSpecifications{
				Seats: 4, Luggage: 1, FuelType: models.FuelTypePetrol, Transmission: models.TransmissionManual, Mileage: "24 kmpl", AC: true,
			},
			Features:  []string{"AC"},
			Active:    true,
			SortOrder: 5,
			CreatedAt: now,
			UpdatedAt: now,
		},
		&models.Vehicle{
			Name:        "Toyota Fortuner",
			Model:       "Luxury SUV",
			Type:        models.VehicleTypePremium,
			Description: "Premium SUV for VIP travel and special occasions.",
			Capacity:    "7 Passengers",
			Price:       35,
			PriceUnit:   "per km",
			Specifications: models.VehicleSpecifications{
				Seats: 7, Luggage: 4, FuelType: models.FuelTypeDiesel, Transmission: models.TransmissionAutomatic, Mileage: "12 kmpl", AC: true,
			},
			Features:  []string{"AC", "Leather Seats", "Sunroof"},
			Active:    true,
			Popular:   true,
			SortOrder: 6,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := vehicles.InsertMany(ctx, fleet); err != nil {
		return fmt.Errorf("failed to seed vehicles: %w", err)
	}
	return nil
}
