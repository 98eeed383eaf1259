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

type cabBookingRepository struct {
	collection *mongo.Collection
}

func NewCabBookingRepository(db *mongo.Database) interfaces.CabBookingRepository {
	return &cabBookingRepository{collection: db.Collection("cab_bookings")}
}

func (r *cabBookingRepository) Create(ctx context.Context, booking *models.CabBooking) error {
	booking.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create cab booking: %w", err)
	}
	return nil
}

func (r *cabBookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CabBooking, error) {
	var booking models.CabBooking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cab booking: %w", err)
	}
	return &booking, nil
}

func (r *cabBookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update cab booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *cabBookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cab booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *cabBookingRepository) List(ctx context.Context, status models.BookingStatus) ([]*models.CabBooking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list cab bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.CabBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode cab bookings: %w", err)
	}
	return bookings, nil
}

func (r *cabBookingRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *cabBookingRepository) CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
