package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List filters by status and/or assignee; empty values mean no
	// filter.
	List(ctx context.Context, status models.ClientStatus, assignedTo string) ([]*models.Client, error)

	AddCommunication(ctx context.Context, id primitive.ObjectID, comm *models.Communication) error
	AddFollowUp(ctx context.Context, id primitive.ObjectID, followUp *models.FollowUp) error
	CompleteFollowUp(ctx context.Context, id, followUpID primitive.ObjectID) error
	AddReview(ctx context.Context, id primitive.ObjectID, review *models.ClientReview) error

	CountAll(ctx context.Context) (int64, error)
}
