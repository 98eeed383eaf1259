package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List filters by vehicle type; activeOnly hides retired fleet.
	List(ctx context.Context, vehicleType models.VehicleType, activeOnly bool) ([]*models.Vehicle, error)
}

type PopupRepository interface {
	Create(ctx context.Context, popup *models.Popup) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Popup, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]*models.Popup, error)
	ListActive(ctx context.Context) ([]*models.Popup, error)
}
