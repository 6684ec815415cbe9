package repository

import (
	"time"

	"github.com/LakshayPahal/Swift-Cab/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
	}
}

// Mongo stores timestamps with millisecond precision; truncate up front so
// round-tripped documents compare equal.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
