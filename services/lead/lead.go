package lead

import (
	"context"
	"errors"
	"time"

	contentRepo "serviciohogar/database/repository/content"
	"serviciohogar/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidPhone is returned when a phone number has fewer than nine
	// digits once formatting is stripped.
	ErrInvalidPhone = errors.New("phone number must contain at least 9 digits")
	// ErrLeadNotFound is returned when no lead matches the id.
	ErrLeadNotFound = errors.New("lead not found")
)

// ContactForm is a contact-page submission.
type ContactForm struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// LeadService captures callback requests and contact-form submissions and
// exposes them to the admin panel.
type LeadService interface {
	RequestCallback(ctx context.Context, phone string) (*models.Lead, error)
	SubmitContact(ctx context.Context, form ContactForm) (*models.Lead, error)
	List(ctx context.Context) ([]models.Lead, error)
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// DefaultLeadService implements LeadService over the content repository.
type DefaultLeadService struct {
	Repo contentRepo.ContentRepository
	Now  func() time.Time
}

func (s *DefaultLeadService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 9
}

// RequestCallback records a "we call you back" request for the given phone.
func (s *DefaultLeadService) RequestCallback(ctx context.Context, phone string) (*models.Lead, error) {
	if !validPhone(phone) {
		return nil, ErrInvalidPhone
	}
	lead := models.Lead{
		ID:          uuid.New().String(),
		Source:      models.LeadSourceCallback,
		Phone:       phone,
		Status:      models.LeadStatusPending,
		RequestedAt: s.now(),
	}
	if err := s.append(ctx, lead); err != nil {
		return nil, err
	}
	zap.L().Info("callback requested", zap.String("leadID", lead.ID))
	return &lead, nil
}

// SubmitContact stores a contact-form submission as a pending lead.
func (s *DefaultLeadService) SubmitContact(ctx context.Context, form ContactForm) (*models.Lead, error) {
	if !validPhone(form.Phone) {
		return nil, ErrInvalidPhone
	}
	lead := models.Lead{
		ID:          uuid.New().String(),
		Source:      models.LeadSourceContact,
		Name:        form.Name,
		Phone:       form.Phone,
		ServiceType: form.ServiceType,
		Message:     form.Message,
		Status:      models.LeadStatusPending,
		RequestedAt: s.now(),
	}
	if err := s.append(ctx, lead); err != nil {
		return nil, err
	}
	zap.L().Info("contact form received", zap.String("leadID", lead.ID))
	return &lead, nil
}

func (s *DefaultLeadService) append(ctx context.Context, lead models.Lead) error {
	leads, err := s.Repo.Leads(ctx)
	if err != nil {
		return err
	}
	leads = append([]models.Lead{lead}, leads...)
	return s.Repo.SaveLeads(ctx, leads)
}

// List returns every stored lead, newest first.
func (s *DefaultLeadService) List(ctx context.Context) ([]models.Lead, error) {
	return s.Repo.Leads(ctx)
}

// MarkDone flips a pending lead to done.
func (s *DefaultLeadService) MarkDone(ctx context.Context, id string) error {
	leads, err := s.Repo.Leads(ctx)
	if err != nil {
		return err
	}
	for i := range leads {
		if leads[i].ID == id {
			leads[i].Status = models.LeadStatusDone
			return s.Repo.SaveLeads(ctx, leads)
		}
	}
	return ErrLeadNotFound
}

// Delete removes a lead by id.
func (s *DefaultLeadService) Delete(ctx context.Context, id string) error {
	leads, err := s.Repo.Leads(ctx)
	if err != nil {
		return err
	}
	kept := leads[:0]
	for _, l := range leads {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(leads) {
		return ErrLeadNotFound
	}
	return s.Repo.SaveLeads(ctx, kept)
}
