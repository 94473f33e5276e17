package models

// ContactInfo holds the business contact channels shown across the site.
type ContactInfo struct {
	Phone    string `json:"phone" bson:"phone"`
	WhatsApp string `json:"whatsapp" bson:"whatsapp"`
	Email    string `json:"email" bson:"email"`
	Address  string `json:"address" bson:"address"`
}

// SocialLinks holds the social profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	Twitter   string `json:"twitter" bson:"twitter"`
}

// PricingConfig holds the flat fees fed into the quote engine.
type PricingConfig struct {
	BaseFee    float64 `json:"baseFee" bson:"baseFee"`       // call-out fee
	UrgencyFee float64 `json:"urgencyFee" bson:"urgencyFee"` // added at most once per booking
	NightFee   float64 `json:"nightFee" bson:"nightFee"`
}

// SiteTexts are the homepage copy overrides editable from the admin panel.
type SiteTexts struct {
	HeroTitle     string `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle  string `json:"heroSubtitle" bson:"heroSubtitle"`
	FooterText    string `json:"footerText" bson:"footerText"`
	Feature1Title string `json:"feature1Title" bson:"feature1Title"`
	Feature1Desc  string `json:"feature1Desc" bson:"feature1Desc"`
	Feature2Title string `json:"feature2Title" bson:"feature2Title"`
	Feature2Desc  string `json:"feature2Desc" bson:"feature2Desc"`
	Feature3Title string `json:"feature3Title" bson:"feature3Title"`
	Feature3Desc  string `json:"feature3Desc" bson:"feature3Desc"`
}

// SiteConfig is the singleton site configuration, read on page load and
// overwritten wholesale by the admin save.
type SiteConfig struct {
	Contact ContactInfo   `json:"contact" bson:"contact"`
	Social  SocialLinks   `json:"social" bson:"social"`
	Pricing PricingConfig `json:"pricing" bson:"pricing"`
	Texts   SiteTexts     `json:"texts" bson:"texts"`
}
