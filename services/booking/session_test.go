package booking

import (
	"context"
	"testing"
	"time"

	contentRepo "serviciohogar/database/repository/content"
	"serviciohogar/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo serves the bundled defaults; only the methods the booking
// service touches are implemented.
type stubRepo struct {
	contentRepo.ContentRepository
}

func (stubRepo) Services(ctx context.Context) ([]models.ServiceItem, error) {
	return contentRepo.DefaultServices(), nil
}

func (stubRepo) SiteConfig(ctx context.Context) (models.SiteConfig, error) {
	return contentRepo.DefaultSiteConfig(), nil
}

func newTestService(t *testing.T) *DefaultBookingSessionService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultBookingSessionService{
		Repo:  stubRepo{},
		Cache: client,
		Now:   func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) },
	}
}

func TestWizardHappyPath(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID
	require.NotEmpty(t, id)
	assert.Equal(t, models.StepService, view.Session.Step)
	assert.Len(t, view.Services, 5)
	assert.Zero(t, view.Quote.Min)

	view, err = svc.SelectService(ctx, id, "1")
	require.NoError(t, err)
	assert.Equal(t, models.StepDiagnose, view.Session.Step)
	require.Len(t, view.Questions, 3)
	assert.Equal(t, 90.0, view.Quote.Min)
	assert.Equal(t, 117.0, view.Quote.Max)

	view, err = svc.SubmitAnswer(ctx, id, "q_leak", models.BoolAnswer(true))
	require.NoError(t, err)
	require.NotNil(t, view.Urgency)
	assert.Equal(t, "tel:+34 602 698 605", view.Urgency.CallLink)
	assert.True(t, view.Session.Urgent)
	assert.Equal(t, 135.0, view.Quote.Min)
	assert.Equal(t, 176.0, view.Quote.Max)

	view, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, view.Session.Step)
	require.Len(t, view.Dates, 3)
	assert.Equal(t, "2026-09-01", view.Dates[0].Date)

	view, err = svc.SelectSchedule(ctx, id, view.Dates[0].Date, models.SlotMorning)
	require.NoError(t, err)

	view, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, view.Session.Step)

	view, err = svc.SetContact(ctx, id, models.BookingContact{Name: "Maria", Phone: "600123456"})
	require.NoError(t, err)

	view, err = svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSubmitted, view.Session.Step)
	require.NotNil(t, view.Handoff)
	assert.Contains(t, view.Handoff.WhatsAppURL, "https://wa.me/34602698605?text=")
	assert.Contains(t, view.Handoff.Message, "135€ - 176€")

	// The handoff can be fetched again while the session lives.
	view, err = svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, view.Handoff)
}

func TestAdvanceGuards(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID

	// Step 1: no service chosen yet.
	_, err = svc.Advance(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.SelectService(ctx, id, "2")
	require.NoError(t, err)

	// Diagnosis never blocks, even with nothing answered.
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	// Step 3: date and slot are both required.
	_, err = svc.Advance(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.SelectSchedule(ctx, id, "2026-09-02", models.SlotAfternoon)
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
}

func TestSelectServiceValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID

	_, err = svc.SelectService(ctx, id, "99")
	assert.ErrorIs(t, err, ErrUnknownService)

	// Selecting is a step-1 action.
	_, err = svc.SelectService(ctx, id, "1")
	require.NoError(t, err)
	_, err = svc.SelectService(ctx, id, "2")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReselectingServiceResetsAnswers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID

	_, err = svc.SelectService(ctx, id, "5")
	require.NoError(t, err)
	view, err = svc.SubmitAnswer(ctx, id, "q_gas_smell", models.BoolAnswer(true))
	require.NoError(t, err)
	assert.True(t, view.Session.Urgent)

	// Go back and pick a different service: answers and urgency reset.
	_, err = svc.Retreat(ctx, id)
	require.NoError(t, err)
	view, err = svc.SelectService(ctx, id, "4")
	require.NoError(t, err)
	assert.Empty(t, view.Session.Answers)
	assert.False(t, view.Session.Urgent)
	assert.Equal(t, 35.0+70.0, view.Quote.Min)
}

func TestSubmitAnswerValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID
	_, err = svc.SelectService(ctx, id, "1")
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, id, "q_gas_smell", models.BoolAnswer(true))
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	_, err = svc.SubmitAnswer(ctx, id, "q_leak", models.ChoiceAnswer("yes"))
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	_, err = svc.SubmitAnswer(ctx, id, "q_location", models.ChoiceAnswer("Attic"))
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	view, err = svc.SubmitAnswer(ctx, id, "q_location", models.ChoiceAnswer("Bathroom"))
	require.NoError(t, err)
	assert.Nil(t, view.Urgency, "select answers never trigger the urgency notice")
}

func TestScheduleValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID
	_, err = svc.SelectService(ctx, id, "3")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.SelectSchedule(ctx, id, "2026-09-05", models.SlotMorning)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = svc.SelectSchedule(ctx, id, "2026-09-01", "dawn")
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestSubmittedSessionIsFinal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID
	_, err = svc.SelectService(ctx, id, "1")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectSchedule(ctx, id, "2026-09-01", models.SlotMorning)
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, id)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Retreat(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Confirm(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelAndExpiry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx)
	require.NoError(t, err)
	id := view.Session.SessionID

	require.NoError(t, svc.Cancel(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Get(ctx, "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
