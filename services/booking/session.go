// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"serviciohogar/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionKeyPrefix = "booking:sess:"
	sessionTTL       = 30 * time.Minute
)

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// buildView assembles the wire representation: the session, the step's
// supporting catalogs, and the always-current quote.
func (s *DefaultBookingSessionService) buildView(ctx context.Context, session *models.BookingSession, urgency *models.UrgencyNotice) (*models.BookingSessionView, error) {
	cfg, err := s.Repo.SiteConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}

	var selected *models.ServiceItem
	if session.ServiceID != "" {
		services, err := s.Repo.Services(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load services: %w", err)
		}
		for i := range services {
			if services[i].ID == session.ServiceID {
				selected = &services[i]
				break
			}
		}
	}

	view := &models.BookingSessionView{
		Session: *session,
		Quote:   ComputeQuote(selected, session.Answers, cfg.Pricing),
		Urgency: urgency,
	}

	switch session.Step {
	case models.StepService:
		services, err := s.Repo.Services(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load services: %w", err)
		}
		view.Services = services
	case models.StepDiagnose:
		view.Questions = QuestionsFor(session.ServiceID)
	case models.StepSchedule:
		view.Dates = DateOptions(s.now())
		view.Slots = Slots()
	case models.StepSubmitted:
		if selected != nil {
			handoff := BuildHandoff(*session, *selected, view.Quote, cfg.Contact)
			view.Handoff = &handoff
		}
	}
	return view, nil
}

// Start creates a new session on the service-selection step.
func (s *DefaultBookingSessionService) Start(ctx context.Context) (*models.BookingSessionView, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
		Answers:   make(map[string]models.Answer),
		CreatedAt: s.now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// Get returns the current session state.
func (s *DefaultBookingSessionService) Get(ctx context.Context, sessionID string) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// SelectService records the chosen service, resets any previous answers,
// and moves the session onto the diagnosis step.
func (s *DefaultBookingSessionService) SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepService {
		return nil, ErrInvalidTransition
	}

	services, err := s.Repo.Services(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	known := false
	for _, svc := range services {
		if svc.ID == serviceID {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrUnknownService
	}

	session.ServiceID = serviceID
	session.Answers = make(map[string]models.Answer)
	session.Urgent = false
	session.Step = models.StepDiagnose

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// SubmitAnswer validates and records one diagnostic answer. An affirmative
// answer to an urgent-flagged question marks the session urgent and attaches
// a warning with a phone deep link; the user may dismiss it and continue.
func (s *DefaultBookingSessionService) SubmitAnswer(ctx context.Context, sessionID, questionID string, answer models.Answer) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDiagnose {
		return nil, ErrInvalidTransition
	}

	question, ok := findQuestion(session.ServiceID, questionID)
	if !ok {
		return nil, ErrUnknownQuestion
	}
	if err := ValidateAnswer(question, answer); err != nil {
		return nil, err
	}

	session.Answers[questionID] = answer
	session.Urgent = HasUrgentAnswer(session.ServiceID, session.Answers)

	var urgency *models.UrgencyNotice
	if question.Urgent && answer.IsYes() {
		cfg, err := s.Repo.SiteConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load site config: %w", err)
		}
		urgency = &models.UrgencyNotice{
			Message:  "Por seguridad, te recomendamos llamar inmediatamente para este tipo de problema.",
			CallLink: "tel:" + cfg.Contact.Phone,
		}
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, urgency)
}

// Advance moves the session forward one step, enforcing the step guards:
// leaving service selection needs a service, leaving scheduling needs a
// date and a slot. The diagnosis step never blocks; unanswered questions
// are simply not counted.
func (s *DefaultBookingSessionService) Advance(ctx context.Context, sessionID string) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepService:
		if session.ServiceID == "" {
			return nil, ErrInvalidTransition
		}
		session.Step = models.StepDiagnose
	case models.StepDiagnose:
		session.Step = models.StepSchedule
	case models.StepSchedule:
		if session.Date == "" || session.TimeSlot == "" {
			return nil, ErrInvalidTransition
		}
		session.Step = models.StepConfirm
	default:
		// Confirmation is an explicit action, and a submitted session is final.
		return nil, ErrInvalidTransition
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// Retreat moves the session back one step. Submission is not reversible.
func (s *DefaultBookingSessionService) Retreat(ctx context.Context, sessionID string) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepDiagnose:
		session.Step = models.StepService
	case models.StepSchedule:
		session.Step = models.StepDiagnose
	case models.StepConfirm:
		session.Step = models.StepSchedule
	default:
		return nil, ErrInvalidTransition
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// SelectSchedule records the chosen appointment day and time slot. The day
// must be one of the three offered candidates.
func (s *DefaultBookingSessionService) SelectSchedule(ctx context.Context, sessionID, date, slot string) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSchedule {
		return nil, ErrInvalidTransition
	}
	if !validSchedule(s.now(), date, slot) {
		return nil, ErrInvalidSchedule
	}

	session.Date = date
	session.TimeSlot = slot

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// SetContact records the customer's name and phone on the confirm step.
func (s *DefaultBookingSessionService) SetContact(ctx context.Context, sessionID string, contact models.BookingContact) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm {
		return nil, ErrInvalidTransition
	}

	session.Contact = contact

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// Confirm finalizes the booking: the session becomes submitted and the view
// carries the WhatsApp handoff. The session stays in the cache until its
// TTL so the handoff link can be fetched again; only a new session restarts
// the wizard.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID string) (*models.BookingSessionView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm {
		return nil, ErrInvalidTransition
	}

	session.Step = models.StepSubmitted

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(ctx, session, nil)
}

// Cancel discards the session.
func (s *DefaultBookingSessionService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// AvailableServices returns the bookable service catalog.
func (s *DefaultBookingSessionService) AvailableServices(ctx context.Context) ([]models.ServiceItem, error) {
	return s.Repo.Services(ctx)
}
