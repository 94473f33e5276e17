package models

// FAQItem is one question/answer pair shown on the FAQ section.
type FAQItem struct {
	ID       string `json:"id" bson:"id"`
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}
