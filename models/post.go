package models

// PostSEO groups the SEO metadata edited alongside a post.
type PostSEO struct {
	MetaTitle       string `json:"metaTitle" bson:"metaTitle"`
	MetaDescription string `json:"metaDescription" bson:"metaDescription"`
	FocusKeyword    string `json:"focusKeyword" bson:"focusKeyword"`
}

// BlogPost is a CMS article. Content is stored as an HTML fragment.
type BlogPost struct {
	ID       string  `json:"id" bson:"id"`
	Title    string  `json:"title" bson:"title"`
	Slug     string  `json:"slug" bson:"slug"`
	Excerpt  string  `json:"excerpt" bson:"excerpt"`
	Content  string  `json:"content" bson:"content"`
	Date     string  `json:"date" bson:"date"` // YYYY-MM-DD
	ImageURL string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	ImageAlt string  `json:"imageAlt,omitempty" bson:"imageAlt,omitempty"`
	Category string  `json:"category" bson:"category"` // Plumbing, Electricity, Locksmith, HVAC, General
	Language string  `json:"language" bson:"language"` // "es" or "en"
	Status   string  `json:"status" bson:"status"`     // "draft" or "published"
	SEO      PostSEO `json:"seo" bson:"seo"`
}

// Published reports whether the post is visible on the public blog.
func (p BlogPost) Published() bool {
	return p.Status == "published"
}

// SEOChecks are the five independent heuristics of the admin SEO scorer.
type SEOChecks struct {
	KeywordInTitle       bool `json:"keywordInTitle"`
	KeywordInDescription bool `json:"keywordInDescription"`
	ContentLength        bool `json:"contentLength"`
	HasSubheading        bool `json:"hasSubheading"`
	HasImageAlt          bool `json:"hasImageAlt"`
}

// SEOReport is the scorer output: 20 points per passing check.
type SEOReport struct {
	Score  int       `json:"score"`
	Checks SEOChecks `json:"checks"`
}

// PostDraft is the structured output of the generative drafting assistant,
// merged into the editor form by the admin UI.
type PostDraft struct {
	SEOTitle        string `json:"seoTitle"`
	MetaDescription string `json:"metaDescription"`
	Slug            string `json:"slug"`
	FocusKeyword    string `json:"focusKeyword"`
	Content         string `json:"content"`
	ImageAlt        string `json:"imageAlt"`
	ImageURL        string `json:"imageUrl,omitempty"`
}
