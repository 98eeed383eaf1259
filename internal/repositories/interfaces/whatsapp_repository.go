package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

type WhatsAppRepository interface {
	SaveMessage(ctx context.Context, message *models.WhatsAppMessage) error
	UpdateMessageStatus(ctx context.Context, id primitive.ObjectID, status models.MessageStatus, externalID, sendError string) error

	// ListConversation returns the thread with one phone number, newest
	// first.
	ListConversation(ctx context.Context, phone string) ([]*models.WhatsAppMessage, error)

	// ListThreads returns the most recent message per phone number.
	ListThreads(ctx context.Context) ([]*models.WhatsAppMessage, error)

	CreateTemplate(ctx context.Context, template *models.WhatsAppTemplate) error
	UpdateTemplate(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	DeleteTemplate(ctx context.Context, id primitive.ObjectID) error
	ListTemplates(ctx context.Context) ([]*models.WhatsAppTemplate, error)
	GetTemplate(ctx context.Context, id primitive.ObjectID) (*models.WhatsAppTemplate, error)

	GetSettings(ctx context.Context) (*models.WhatsAppSettings, error)
	UpdateSettings(ctx context.Context, settings *models.WhatsAppSettings) error
}
