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

type contactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) interfaces.ContactRepository {
	return &contactRepository{collection: db.Collection("contact_inquiries")}
}

func (r *contactRepository) Create(ctx context.Context, inquiry *models.ContactInquiry) error {
	inquiry.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create contact inquiry: %w", err)
	}
	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact inquiry: %w", err)
	}
	return &inquiry, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InquiryStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact inquiry: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, status models.InquiryStatus) ([]*models.ContactInquiry, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []*models.ContactInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode contact inquiries: %w", err)
	}
	return inquiries, nil
}

func (r *contactRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *contactRepository) CountByStatus(ctx context.Context, status models.InquiryStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
