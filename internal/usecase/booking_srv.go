package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/LakshayPahal/Swift-Cab/internal/data/entity"
	"github.com/LakshayPahal/Swift-Cab/internal/data/repository"
	"github.com/LakshayPahal/Swift-Cab/internal/dto/request"
	"github.com/LakshayPahal/Swift-Cab/internal/dto/response"
	"github.com/LakshayPahal/Swift-Cab/pkg/utils"

	"go.uber.org/zap"
)

// How many times to re-roll a colliding booking code before giving up.
const maxCodeAttempts = 5

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	List(ctx context.Context) ([]*response.BookingResponse, error)
	Get(ctx context.Context, id string) (*response.BookingResponse, error)
	Cancel(ctx context.Context, id string) (*response.BookingResponse, error)
	SetStatus(ctx context.Context, id string, status string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo     repository.BookingRepository
	distance entity.DistanceEstimator
	log      *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, distance entity.DistanceEstimator, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		distance: distance,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, newValidationError("validation failed: "+utils.FormatValidationErrors(errs), errs)
	}

	past, err := entity.DateInPast(req.Date, time.Now())
	if err != nil {
		return nil, newValidationError("invalid date format, expected YYYY-MM-DD", nil)
	}
	if past {
		return nil, newValidationError("cannot book for a past date", nil)
	}

	miles, err := s.distance.Estimate(ctx, req.PickupLocation, req.DropLocation)
	if err != nil {
		s.log.Error("Failed to estimate ride distance", zap.Error(err))
		return nil, fmt.Errorf("estimate distance: %w", err)
	}

	fare, err := entity.CalculateFare(entity.CabType(req.CabType), miles)
	if err != nil {
		return nil, newValidationError(err.Error(), nil)
	}

	code, err := s.uniqueBookingCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	booking := &entity.Booking{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingCode:    code,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		Date:           req.Date,
		Time:           req.Time,
		CabType:        entity.CabType(req.CabType),
		Status:         entity.BookingStatusPending,
		Fare:           fare.Total,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.Hex()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("cab_type", string(booking.CabType)),
		zap.Float64("distance_miles", miles),
		zap.Float64("fare", booking.Fare),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) List(ctx context.Context) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return response.BookingToResponse(booking), nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if booking.Status == entity.BookingStatusCompleted {
		return nil, fmt.Errorf("cannot cancel a completed ride: %w", ErrInvalidTransition)
	}

	// Re-cancelling is a no-op success
	if booking.Status == entity.BookingStatusCancelled {
		return response.BookingToResponse(booking), nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, entity.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", id),
		zap.String("booking_code", updated.BookingCode),
	)

	return response.BookingToResponse(updated), nil
}

func (s *bookingService) SetStatus(ctx context.Context, id string, status string) (*response.BookingResponse, error) {
	newStatus := entity.BookingStatus(status)
	if !newStatus.Valid() {
		return nil, newValidationError(fmt.Sprintf("invalid status %q", status), nil)
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("set booking status: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	// Terminal statuses never change; re-setting the same one is a no-op.
	if booking.Status.Terminal() {
		if booking.Status == newStatus {
			return response.BookingToResponse(booking), nil
		}
		return nil, fmt.Errorf("cannot change status of a %s ride: %w", booking.Status, ErrInvalidTransition)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, fmt.Errorf("set booking status: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("status", status),
	)

	return response.BookingToResponse(updated), nil
}

// uniqueBookingCode re-rolls the short code until it is unused.
func (s *bookingService) uniqueBookingCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := utils.GenerateBookingCode()
		existing, err := s.repo.FindByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check booking code: %w", err)
		}
		if existing == nil {
			return code, nil
		}
		s.log.Warn("Booking code collision, retrying", zap.String("booking_code", code))
	}
	return "", fmt.Errorf("could not generate a unique booking code after %d attempts", maxCodeAttempts)
}
