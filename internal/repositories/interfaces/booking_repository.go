package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, status models.BookingStatus) ([]*models.Booking, error)
	ListRecent(ctx context.Context, limit int64) ([]*models.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
}

type CabBookingRepository interface {
	Create(ctx context.Context, booking *models.CabBooking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CabBooking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, status models.BookingStatus) ([]*models.CabBooking, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
}
