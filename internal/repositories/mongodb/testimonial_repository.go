package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gmbtravels/internal/models"
	"gmbtravels/internal/repositories/interfaces"
)

type testimonialRepository struct {
	collection *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) interfaces.TestimonialRepository {
	return &testimonialRepository{collection: db.Collection("testimonials")}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, testimonial)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&testimonial)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return &testimonial, nil
}

func (r *testimonialRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TestimonialStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update testimonial status: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *testimonialRepository) List(ctx context.Context, status models.TestimonialStatus) ([]*models.Testimonial, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var testimonials []*models.Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	return testimonials, nil
}

func (r *testimonialRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *testimonialRepository) CountByStatus(ctx context.Context, status models.TestimonialStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
