package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TestimonialStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, status models.TestimonialStatus) ([]*models.Testimonial, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.TestimonialStatus) (int64, error)
}

type ContactRepository interface {
	Create(ctx context.Context, inquiry *models.ContactInquiry) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ContactInquiry, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InquiryStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, status models.InquiryStatus) ([]*models.ContactInquiry, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.InquiryStatus) (int64, error)
}

type GalleryRepository interface {
	Create(ctx context.Context, image *models.GalleryImage) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, category string) ([]*models.GalleryImage, error)
}
