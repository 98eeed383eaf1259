package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Package, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List returns packages filtered by status and/or category; empty
	// values mean no filter.
	List(ctx context.Context, status models.PackageStatus, category string) ([]*models.Package, error)

	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.PackageStatus) (int64, error)
}
