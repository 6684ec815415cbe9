package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/LakshayPahal/Swift-Cab/internal/data/entity"
	"github.com/LakshayPahal/Swift-Cab/internal/dto/request"
	"github.com/LakshayPahal/Swift-Cab/internal/dto/response"
	"github.com/LakshayPahal/Swift-Cab/pkg/utils"
)

// ErrInvalidInput marks form input rejected before any network call.
var ErrInvalidInput = errors.New("invalid booking input")

// Store caches the last fetched booking list and applies the record returned
// by each mutation locally, so no re-fetch is needed. Concurrent writers on
// other clients are not reconciled; the API's last write wins.
type Store struct {
	api       *Client
	estimator entity.DistanceEstimator

	mu       sync.RWMutex
	bookings []*response.BookingResponse
}

func NewStore(api *Client, estimator entity.DistanceEstimator) *Store {
	return &Store{
		api:       api,
		estimator: estimator,
	}
}

// Fetch replaces the cached list with the server's, newest first.
func (s *Store) Fetch(ctx context.Context) error {
	bookings, err := s.api.ListBookings(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()
	return nil
}

// Bookings returns a snapshot of the cached list.
func (s *Store) Bookings() []*response.BookingResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*response.BookingResponse, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// ByID returns the cached booking with the given id, or nil.
func (s *Store) ByID(id string) *response.BookingResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Create validates the form input locally, books the ride and prepends the
// created record to the cache. Validation failures never reach the network.
func (s *Store) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	past, err := entity.DateInPast(req.Date, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}
	if past {
		return nil, fmt.Errorf("%w: cannot book for a past date", ErrInvalidInput)
	}

	booking, err := s.api.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.bookings = append([]*response.BookingResponse{booking}, s.bookings...)
	s.mu.Unlock()
	return booking, nil
}

// Cancel cancels the ride and swaps the returned record into the cache.
func (s *Store) Cancel(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, err := s.api.CancelBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	s.replace(booking)
	return booking, nil
}

// SetStatus updates the ride status and swaps the returned record into the
// cache. Unknown statuses are rejected before any network call.
func (s *Store) SetStatus(ctx context.Context, id, status string) (*response.BookingResponse, error) {
	if !entity.BookingStatus(status).Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}

	booking, err := s.api.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.replace(booking)
	return booking, nil
}

// Get fetches one booking from the API and swaps it into the cache.
func (s *Store) Get(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, err := s.api.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	s.replace(booking)
	return booking, nil
}

func (s *Store) replace(booking *response.BookingResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == booking.ID {
			s.bookings[i] = booking
			return
		}
	}
}

// FareEstimate itemizes a quoted fare with two-decimal display strings.
type FareEstimate struct {
	BaseFare       string
	DistanceCharge string
	TotalFare      string
	Distance       float64
}

// EstimateFare quotes a fare for display before booking. The estimate uses
// its own drawn distance, so the fare stored at creation will differ.
func (s *Store) EstimateFare(ctx context.Context, cabType, pickup, drop string) (*FareEstimate, error) {
	miles, err := s.estimator.Estimate(ctx, pickup, drop)
	if err != nil {
		return nil, fmt.Errorf("estimate distance: %w", err)
	}

	breakdown, err := entity.CalculateFare(entity.CabType(cabType), miles)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	return &FareEstimate{
		BaseFare:       fmt.Sprintf("%.2f", breakdown.BaseFare),
		DistanceCharge: fmt.Sprintf("%.2f", breakdown.DistanceCharge),
		TotalFare:      fmt.Sprintf("%.2f", breakdown.Total),
		Distance:       breakdown.Distance,
	}, nil
}
