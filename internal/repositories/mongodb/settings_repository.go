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

type siteSettingsRepository struct {
	collection *mongo.Collection
}

func NewSiteSettingsRepository(db *mongo.Database) interfaces.SiteSettingsRepository {
	return &siteSettingsRepository{collection: db.Collection("site_settings")}
}

// Get returns the singleton settings document, inserting the defaults
// on first access.
func (r *siteSettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	defaults := models.DefaultSiteSettings()
	result, err := r.collection.InsertOne(ctx, defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to insert default site settings: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		defaults.ID = oid
	}
	return defaults, nil
}

func (r *siteSettingsRepository) Update(ctx context.Context, updates map[string]interface{}) (*models.SiteSettings, error) {
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}

	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var settings models.SiteSettings
	err := r.collection.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": updates}, opts).Decode(&settings)
	if err != nil {
		return nil, fmt.Errorf("failed to update site settings: %w", err)
	}
	return &settings, nil
}

// Reset drops the stored document and reinstates the defaults.
func (r *siteSettingsRepository) Reset(ctx context.Context) (*models.SiteSettings, error) {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to reset site settings: %w", err)
	}
	return r.Get(ctx)
}

type blogGenerationSettingsRepository struct {
	collection *mongo.Collection
}

func NewBlogGenerationSettingsRepository(db *mongo.Database) interfaces.BlogGenerationSettingsRepository {
	return &blogGenerationSettingsRepository{collection: db.Collection("blog_generation_settings")}
}

func (r *blogGenerationSettingsRepository) Get(ctx context.Context) (*models.BlogGenerationSettings, error) {
	var settings models.BlogGenerationSettings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to get blog generation settings: %w", err)
	}

	defaults := models.DefaultBlogGenerationSettings()
	if _, err := r.collection.InsertOne(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to insert default blog generation settings: %w", err)
	}
	return defaults, nil
}

func (r *blogGenerationSettingsRepository) Update(ctx context.Context, settings *models.BlogGenerationSettings) error {
	settings.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"enabled":         settings.Enabled,
		"frequency":       settings.Frequency,
		"topics":          settings.Topics,
		"defaultCategory": settings.DefaultCategory,
		"defaultTone":     settings.DefaultTone,
		"autoPublish":     settings.AutoPublish,
		"updatedAt":       settings.UpdatedAt,
	}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{}, update, opts); err != nil {
		return fmt.Errorf("failed to update blog generation settings: %w", err)
	}
	return nil
}
