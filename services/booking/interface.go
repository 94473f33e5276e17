package booking

import (
	"context"
	"time"

	contentRepo "serviciohogar/database/repository/content"
	"serviciohogar/models"

	"github.com/go-redis/redis/v8"
)

// BookingSessionService drives the booking wizard: a redis-backed session
// advanced one step at a time through service selection, diagnosis,
// scheduling and confirmation, with a price quote recomputed on every
// relevant change.
type BookingSessionService interface {
	Start(ctx context.Context) (*models.BookingSessionView, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSessionView, error)
	SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSessionView, error)
	SubmitAnswer(ctx context.Context, sessionID, questionID string, answer models.Answer) (*models.BookingSessionView, error)
	Advance(ctx context.Context, sessionID string) (*models.BookingSessionView, error)
	Retreat(ctx context.Context, sessionID string) (*models.BookingSessionView, error)
	SelectSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingSessionView, error)
	SetContact(ctx context.Context, sessionID string, contact models.BookingContact) (*models.BookingSessionView, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingSessionView, error)
	Cancel(ctx context.Context, sessionID string) error
	AvailableServices(ctx context.Context) ([]models.ServiceItem, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Repo  contentRepo.ContentRepository
	Cache *redis.Client
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
