package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
)

type whatsAppRepository struct {
	messages  *mongo.Collection
	templates *mongo.Collection
	settings  *mongo.Collection
}

func NewWhatsAppRepository(db *mongo.Database) interfaces.WhatsAppRepository {
	return &whatsAppRepository{
		messages:  db.Collection("whatsapp_messages"),
		templates: db.Collection("whatsapp_templates"),
		settings:  db.Collection("whatsapp_config"),
	}
}

func (r *whatsAppRepository) SaveMessage(ctx context.Context, message *models.WhatsAppMessage) error {
	message.ID = primitive.NewObjectID()

	_, err := r.messages.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to save whatsapp message: %w", err)
	}
	return nil
}

func (r *whatsAppRepository) UpdateMessageStatus(ctx context.Context, id primitive.ObjectID, status models.MessageStatus, externalID, sendError string) error {
	updates := bson.M{"status": status}
	if externalID != "" {
		updates["externalId"] = externalID
	}
	if sendError != "" {
		updates["error"] = sendError
	}

	result, err := r.messages.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *whatsAppRepository) ListConversation(ctx context.Context, phone string) ([]*models.WhatsAppMessage, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.messages.Find(ctx, bson.M{"phone": phone}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*models.WhatsAppMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

func (r *whatsAppRepository) ListThreads(ctx context.Context) ([]*models.WhatsAppMessage, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$phone"},
			{Key: "latest", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$latest"}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	cursor, err := r.messages.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate threads: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*models.WhatsAppMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode threads: %w", err)
	}
	return messages, nil
}

func (r *whatsAppRepository) CreateTemplate(ctx context.Context, template *models.WhatsAppTemplate) error {
	template.ID = primitive.NewObjectID()

	_, err := r.templates.InsertOne(ctx, template)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

func (r *whatsAppRepository) UpdateTemplate(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now().UTC()

	result, err := r.templates.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *whatsAppRepository) DeleteTemplate(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.templates.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *whatsAppRepository) ListTemplates(ctx context.Context) ([]*models.WhatsAppTemplate, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.templates.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []*models.WhatsAppTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}
	return templates, nil
}

func (r *whatsAppRepository) GetTemplate(ctx context.Context, id primitive.ObjectID) (*models.WhatsAppTemplate, error) {
	var template models.WhatsAppTemplate
	err := r.templates.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &template, nil
}

func (r *whatsAppRepository) GetSettings(ctx context.Context) (*models.WhatsAppSettings, error) {
	var settings models.WhatsAppSettings
	err := r.settings.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to get whatsapp settings: %w", err)
	}

	defaults := models.DefaultWhatsAppSettings()
	if _, err := r.settings.InsertOne(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to insert default whatsapp settings: %w", err)
	}
	return defaults, nil
}

func (r *whatsAppRepository) UpdateSettings(ctx context.Context, settings *models.WhatsAppSettings) error {
	settings.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"enabled":       settings.Enabled,
		"autoReply":     settings.AutoReply,
		"greetingReply": settings.GreetingReply,
		"businessHours": settings.BusinessHours,
		"updatedAt":     settings.UpdatedAt,
	}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.settings.UpdateOne(ctx, bson.M{}, update, opts); err != nil {
		return fmt.Errorf("failed to update whatsapp settings: %w", err)
	}
	return nil
}
