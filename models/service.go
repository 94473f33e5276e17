package models

// ServiceItem represents one service offered on the site (plumbing,
// electricity, locksmith, HVAC, heaters). The catalog is editable from the
// admin panel; IDs are opaque strings referenced by bookings and questions.
type ServiceItem struct {
	ID          string  `json:"id" bson:"id"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Icon        string  `json:"icon" bson:"icon"`
	ImageURL    string  `json:"imageUrl" bson:"imageUrl"`
	Price       float64 `json:"price" bson:"price"` // base repair price in EUR
}
