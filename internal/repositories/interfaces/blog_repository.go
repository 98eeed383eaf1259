package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List filters by status; empty means all posts.
	List(ctx context.Context, status models.BlogStatus) ([]*models.BlogPost, error)

	// ListPublished returns published posts, newest first, optionally
	// filtered by category and tag. Limit is clamped by the caller.
	ListPublished(ctx context.Context, category, tag string, limit int64) ([]*models.BlogPost, error)

	// SlugExists reports whether any post already uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// IncrementViews bumps the view counter for one published post.
	IncrementViews(ctx context.Context, id primitive.ObjectID) error

	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.BlogStatus) (int64, error)
}
