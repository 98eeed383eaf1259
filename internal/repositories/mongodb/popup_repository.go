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

type popupRepository struct {
	collection *mongo.Collection
}

func NewPopupRepository(db *mongo.Database) interfaces.PopupRepository {
	return &popupRepository{collection: db.Collection("popups")}
}

func (r *popupRepository) Create(ctx context.Context, popup *models.Popup) error {
	popup.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, popup)
	if err != nil {
		return fmt.Errorf("failed to create popup: %w", err)
	}
	return nil
}

func (r *popupRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Popup, error) {
	var popup models.Popup
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&popup)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get popup: %w", err)
	}
	return &popup, nil
}

func (r *popupRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update popup: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *popupRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete popup: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *popupRepository) List(ctx context.Context) ([]*models.Popup, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list popups: %w", err)
	}
	defer cursor.Close(ctx)

	var popups []*models.Popup
	if err := cursor.All(ctx, &popups); err != nil {
		return nil, fmt.Errorf("failed to decode popups: %w", err)
	}
	return popups, nil
}

// ListActive applies the date window filter in the query so expired
// popups never reach the public site.
func (r *popupRepository) ListActive(ctx context.Context) ([]*models.Popup, error) {
	now := time.Now().UTC()
	filter := bson.M{
		"active": true,
		"$and": []bson.M{
			{"$or": []bson.M{
				{"startDate": bson.M{"$exists": false}},
				{"startDate": nil},
				{"startDate": bson.M{"$lte": now}},
			}},
			{"$or": []bson.M{
				{"endDate": bson.M{"$exists": false}},
				{"endDate": nil},
				{"endDate": bson.M{"$gte": now}},
			}},
		},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list active popups: %w", err)
	}
	defer cursor.Close(ctx)

	var popups []*models.Popup
	if err := cursor.All(ctx, &popups); err != nil {
		return nil, fmt.Errorf("failed to decode popups: %w", err)
	}
	return popups, nil
}
