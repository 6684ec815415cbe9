package usecase

import (
	"github.com/LakshayPahal/Swift-Cab/internal/data/entity"
	"github.com/LakshayPahal/Swift-Cab/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo.Booking, entity.NewRandomDistance(), log),
	}
}
