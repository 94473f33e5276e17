package models

import "time"

// Lead sources.
const (
	LeadSourceCallback = "callback" // "we call you back" widget
	LeadSourceContact  = "contact"  // contact form
)

// Lead statuses.
const (
	LeadStatusPending = "pending"
	LeadStatusDone    = "done"
)

// Lead is a prospective customer's callback request or contact-form
// submission, captured with phone number and timestamp.
type Lead struct {
	ID          string    `json:"id" bson:"id"`
	Source      string    `json:"source" bson:"source"`
	Name        string    `json:"name,omitempty" bson:"name,omitempty"`
	Phone       string    `json:"phone" bson:"phone"`
	ServiceType string    `json:"serviceType,omitempty" bson:"serviceType,omitempty"`
	Message     string    `json:"message,omitempty" bson:"message,omitempty"`
	Status      string    `json:"status" bson:"status"`
	RequestedAt time.Time `json:"requestedAt" bson:"requestedAt"`
}
