package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/LakshayPahal/Swift-Cab/internal/data/entity"
	"github.com/LakshayPahal/Swift-Cab/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const bookingCollection = "bookings"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByCode(ctx context.Context, code string) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error)
}

type bookingRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewBookingRepository(db *database.DB, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		col: db.Collection(bookingCollection),
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	res, err := r.col.InsertOne(ctx, booking)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingCode, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	// Newest first
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*entity.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids cannot match any document
		return nil, nil
	}

	var booking entity.Booking
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByCode(ctx context.Context, code string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.col.FindOne(ctx, bson.M{"bookingId": code}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by code",
			zap.Error(err),
			zap.String("booking_code", code),
		)
		return nil, fmt.Errorf("find booking by code %s: %w", code, err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": nowUTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking entity.Booking
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update booking %s status: %w", id, err)
	}

	return &booking, nil
}
