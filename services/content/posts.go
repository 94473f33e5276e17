package content

import (
	"context"
	"fmt"
	"time"

	"serviciohogar/models"

	"github.com/google/uuid"
)

func (s *DefaultContentService) today() string {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().Format("2006-01-02")
}

// PublishedPosts returns the posts visible on the public blog, newest first
// in stored order.
func (s *DefaultContentService) PublishedPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.Repo.Posts(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Published() {
			published = append(published, p)
		}
	}
	return published, nil
}

// PostBySlug resolves a published post by its URL slug.
func (s *DefaultContentService) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	posts, err := s.Repo.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug && posts[i].Published() {
			return &posts[i], nil
		}
	}
	return nil, ErrPostNotFound
}

// AllPosts returns every post, drafts included, for the admin panel.
func (s *DefaultContentService) AllPosts(ctx context.Context) ([]models.BlogPost, error) {
	return s.Repo.Posts(ctx)
}

// CreatePost stores a new post. The id and date are assigned here; an empty
// slug is derived from the title and an empty image URL gets a placeholder.
func (s *DefaultContentService) CreatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	if post.Title == "" || post.Content == "" {
		return nil, ErrInvalidPost
	}
	post.ID = uuid.New().String()
	if post.Date == "" {
		post.Date = s.today()
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.ImageURL == "" {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/800/400?random=%d", time.Now().UnixMilli())
	}
	if post.Status == "" {
		post.Status = "draft"
	}

	posts, err := s.Repo.Posts(ctx)
	if err != nil {
		return nil, err
	}
	posts = append([]models.BlogPost{post}, posts...)
	if err := s.Repo.SavePosts(ctx, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces the stored post with the same id.
func (s *DefaultContentService) UpdatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	if post.ID == "" {
		return nil, ErrInvalidPost
	}
	posts, err := s.Repo.Posts(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			found = true
			break
		}
	}
	if !found {
		return nil, ErrPostNotFound
	}
	if err := s.Repo.SavePosts(ctx, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post by id. Deleting an unknown id is not an error.
func (s *DefaultContentService) DeletePost(ctx context.Context, id string) error {
	posts, err := s.Repo.Posts(ctx)
	if err != nil {
		return err
	}
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.Repo.SavePosts(ctx, kept)
}

// Services returns the active service catalog.
func (s *DefaultContentService) Services(ctx context.Context) ([]models.ServiceItem, error) {
	return s.Repo.Services(ctx)
}

// FAQs returns the published FAQ list.
func (s *DefaultContentService) FAQs(ctx context.Context) ([]models.FAQItem, error) {
	return s.Repo.FAQs(ctx)
}

// SiteConfig returns the global site configuration.
func (s *DefaultContentService) SiteConfig(ctx context.Context) (models.SiteConfig, error) {
	return s.Repo.SiteConfig(ctx)
}

// ReplaceServices overwrites the whole service catalog.
func (s *DefaultContentService) ReplaceServices(ctx context.Context, services []models.ServiceItem) error {
	return s.Repo.SaveServices(ctx, services)
}

// ReplaceFAQs overwrites the whole FAQ list.
func (s *DefaultContentService) ReplaceFAQs(ctx context.Context, faqs []models.FAQItem) error {
	return s.Repo.SaveFAQs(ctx, faqs)
}

// UpdateSiteConfig overwrites the global site configuration.
func (s *DefaultContentService) UpdateSiteConfig(ctx context.Context, cfg models.SiteConfig) error {
	return s.Repo.SaveSiteConfig(ctx, cfg)
}
