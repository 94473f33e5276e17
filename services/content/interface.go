package content

import (
	"context"
	"errors"

	contentRepo "serviciohogar/database/repository/content"
	"serviciohogar/models"
)

var (
	// ErrPostNotFound is returned when no post matches the id or slug.
	ErrPostNotFound = errors.New("post not found")
	// ErrInvalidPost is returned when a post is missing required fields.
	ErrInvalidPost = errors.New("post is missing required fields")
)

// ContentService manages the editable site content: blog posts, the
// service catalog, FAQs and the global site configuration.
type ContentService interface {
	// Public surface.
	PublishedPosts(ctx context.Context) ([]models.BlogPost, error)
	PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Services(ctx context.Context) ([]models.ServiceItem, error)
	FAQs(ctx context.Context) ([]models.FAQItem, error)
	SiteConfig(ctx context.Context) (models.SiteConfig, error)
	ZoneDirectory(ctx context.Context) (models.ZoneDirectory, error)

	// Admin surface.
	AllPosts(ctx context.Context) ([]models.BlogPost, error)
	CreatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
	ReplaceServices(ctx context.Context, services []models.ServiceItem) error
	ReplaceFAQs(ctx context.Context, faqs []models.FAQItem) error
	UpdateSiteConfig(ctx context.Context, cfg models.SiteConfig) error
}

// DefaultContentService implements ContentService over the content
// repository.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
	Now  func() string // returns today's date as YYYY-MM-DD; nil uses the clock
}
