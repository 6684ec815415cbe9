package response

import (
	"time"

	"github.com/LakshayPahal/Swift-Cab/internal/data/entity"
)

type BookingResponse struct {
	ID             string               `json:"id"`
	BookingID      string               `json:"bookingId"`
	PickupLocation string               `json:"pickupLocation"`
	DropLocation   string               `json:"dropLocation"`
	Date           string               `json:"date"`
	Time           string               `json:"time"`
	CabType        entity.CabType       `json:"cabType"`
	Status         entity.BookingStatus `json:"status"`
	Fare           float64              `json:"fare"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID.Hex(),
		BookingID:      b.BookingCode,
		PickupLocation: b.PickupLocation,
		DropLocation:   b.DropLocation,
		Date:           b.Date,
		Time:           b.Time,
		CabType:        b.CabType,
		Status:         b.Status,
		Fare:           b.Fare,
		CreatedAt:      b.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
