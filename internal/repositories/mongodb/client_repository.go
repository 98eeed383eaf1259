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

type clientRepository struct {
	collection *mongo.Collection
}

func NewClientRepository(db *mongo.Database) interfaces.ClientRepository {
	return &clientRepository{collection: db.Collection("clients")}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	client.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, status models.ClientStatus, assignedTo string) ([]*models.Client, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if assignedTo != "" {
		filter["assignedTo"] = assignedTo
	}

	opts := options.Find().SetSort(bson.M{"updatedAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []*models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, nil
}

// AddCommunication appends the touchpoint and refreshes lastContact.
func (r *clientRepository) AddCommunication(ctx context.Context, id primitive.ObjectID, comm *models.Communication) error {
	comm.ID = primitive.NewObjectID()

	now := time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"communications": comm},
			"$set":  bson.M{"lastContact": now, "updatedAt": now},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to append to communications: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *clientRepository) AddFollowUp(ctx context.Context, id primitive.ObjectID, followUp *models.FollowUp) error {
	followUp.ID = primitive.NewObjectID()

	return r.push(ctx, id, "followUps", followUp)
}

func (r *clientRepository) CompleteFollowUp(ctx context.Context, id, followUpID primitive.ObjectID) error {
	now := time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "followUps._id": followUpID},
		bson.M{"$set": bson.M{
			"followUps.$.status":      models.FollowUpStatusCompleted,
			"followUps.$.completedAt": now,
			"updatedAt":               now,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to complete follow-up: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *clientRepository) AddReview(ctx context.Context, id primitive.ObjectID, review *models.ClientReview) error {
	review.ID = primitive.NewObjectID()

	return r.push(ctx, id, "reviews", review)
}

func (r *clientRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *clientRepository) push(ctx context.Context, id primitive.ObjectID, field string, value interface{}) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{field: value},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", field, err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}
