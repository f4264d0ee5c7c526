package service

import (
	"context"
	"errors"

	bookingserrors "cardoctor/internal/bookings/errors"
	"cardoctor/internal/bookings/repository"
	apperrors "cardoctor/pkg/errors"
	"cardoctor/pkg/events"
	"cardoctor/pkg/logger"
	"cardoctor/pkg/model"
)

type BookingService interface {
	List(ctx context.Context, email string) ([]model.Booking, error)
	GetByID(ctx context.Context, id string) (model.Booking, error)
	Create(ctx context.Context, booking model.Booking) (*model.InsertResult, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher events.Publisher
	log       *logger.Logger
}

// NewBookingService wires the repository and an optional event publisher.
// A nil publisher disables event emission entirely.
func NewBookingService(repo repository.BookingRepository, publisher events.Publisher, log *logger.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) List(ctx context.Context, email string) ([]model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx, email)
	if err != nil {
		s.log.Error("Failed to list bookings", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.log.Error("Failed to retrieve booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	return booking, nil
}

func (s *bookingService) Create(ctx context.Context, booking model.Booking) (*model.InsertResult, error) {
	result, err := s.repo.Insert(ctx, booking)
	if err != nil {
		s.log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.log.Info("Booking created", "id", result.InsertedID, "email", booking.Email())
	s.publish(ctx, events.BookingEvent{
		Type:      events.BookingCreated,
		BookingID: result.InsertedID,
		Email:     booking.Email(),
		Status:    booking.Status(),
	})
	return result, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.UpdateResult, error) {
	result, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.log.Error("Failed to update booking status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	s.log.Info("Booking status updated", "id", id, "status", status, "matched", result.MatchedCount)
	if result.MatchedCount > 0 {
		s.publish(ctx, events.BookingEvent{
			Type:      events.BookingStatusChanged,
			BookingID: id,
			Status:    status,
		})
	}
	return result, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.log.Error("Failed to delete booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete booking", err)
	}

	s.log.Info("Booking deleted", "id", id, "deleted", result.DeletedCount)
	if result.DeletedCount > 0 {
		s.publish(ctx, events.BookingEvent{
			Type:      events.BookingDeleted,
			BookingID: id,
		})
	}
	return result, nil
}

// publish emits a booking event when a publisher is configured. Failures are
// logged and swallowed: event delivery never affects the client response.
func (s *bookingService) publish(ctx context.Context, event events.BookingEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		s.log.Warn("Failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}
