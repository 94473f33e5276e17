// File: database/repository/content/repo.go
package contentRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"serviciohogar/models"

	"go.uber.org/zap"
)

// ContentRepository exposes the persisted site collections. Reads fall back
// to the bundled defaults when a collection was never written or its stored
// JSON no longer decodes; writes replace the whole collection.
type ContentRepository interface {
	Services(ctx context.Context) ([]models.ServiceItem, error)
	SaveServices(ctx context.Context, services []models.ServiceItem) error

	Posts(ctx context.Context) ([]models.BlogPost, error)
	SavePosts(ctx context.Context, posts []models.BlogPost) error

	FAQs(ctx context.Context) ([]models.FAQItem, error)
	SaveFAQs(ctx context.Context, faqs []models.FAQItem) error

	SiteConfig(ctx context.Context) (models.SiteConfig, error)
	SaveSiteConfig(ctx context.Context, cfg models.SiteConfig) error

	Leads(ctx context.Context) ([]models.Lead, error)
	SaveLeads(ctx context.Context, leads []models.Lead) error

	Credentials(ctx context.Context) (models.AdminCredentials, error)
	SaveCredentials(ctx context.Context, creds models.AdminCredentials) error
}

// Repo implements ContentRepository over a DocumentStore.
type Repo struct {
	Store  DocumentStore
	Logger *zap.Logger
}

// NewRepo creates a content repository over the given store.
func NewRepo(store DocumentStore, logger *zap.Logger) *Repo {
	return &Repo{Store: store, Logger: logger}
}

// load reads and decodes the document under key into out. It reports
// whether the caller should fall back to defaults: a missing key or a
// corrupted document both degrade silently, any other storage error is
// surfaced.
func (r *Repo) load(ctx context.Context, key string, out interface{}) (fallback bool, err error) {
	data, err := r.Store.Read(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		if r.Logger != nil {
			r.Logger.Debug("stored collection is corrupted, using defaults",
				zap.String("key", key), zap.Error(err))
		}
		return true, nil
	}
	return false, nil
}

func (r *Repo) save(ctx context.Context, key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %q: %w", key, err)
	}
	return r.Store.Write(ctx, key, data)
}

func (r *Repo) Services(ctx context.Context) ([]models.ServiceItem, error) {
	var services []models.ServiceItem
	fallback, err := r.load(ctx, KeyServices, &services)
	if err != nil {
		return nil, err
	}
	if fallback {
		return DefaultServices(), nil
	}
	return services, nil
}

func (r *Repo) SaveServices(ctx context.Context, services []models.ServiceItem) error {
	return r.save(ctx, KeyServices, services)
}

func (r *Repo) Posts(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	fallback, err := r.load(ctx, KeyPosts, &posts)
	if err != nil {
		return nil, err
	}
	if fallback {
		return DefaultPosts(), nil
	}
	return posts, nil
}

func (r *Repo) SavePosts(ctx context.Context, posts []models.BlogPost) error {
	return r.save(ctx, KeyPosts, posts)
}

func (r *Repo) FAQs(ctx context.Context) ([]models.FAQItem, error) {
	var faqs []models.FAQItem
	fallback, err := r.load(ctx, KeyFAQs, &faqs)
	if err != nil {
		return nil, err
	}
	if fallback {
		return DefaultFAQs(), nil
	}
	return faqs, nil
}

func (r *Repo) SaveFAQs(ctx context.Context, faqs []models.FAQItem) error {
	return r.save(ctx, KeyFAQs, faqs)
}

func (r *Repo) SiteConfig(ctx context.Context) (models.SiteConfig, error) {
	var cfg models.SiteConfig
	fallback, err := r.load(ctx, KeySiteConfig, &cfg)
	if err != nil {
		return models.SiteConfig{}, err
	}
	if fallback {
		return DefaultSiteConfig(), nil
	}
	return cfg, nil
}

func (r *Repo) SaveSiteConfig(ctx context.Context, cfg models.SiteConfig) error {
	return r.save(ctx, KeySiteConfig, cfg)
}

func (r *Repo) Leads(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	fallback, err := r.load(ctx, KeyLeads, &leads)
	if err != nil {
		return nil, err
	}
	if fallback {
		return []models.Lead{}, nil
	}
	return leads, nil
}

func (r *Repo) SaveLeads(ctx context.Context, leads []models.Lead) error {
	return r.save(ctx, KeyLeads, leads)
}

func (r *Repo) Credentials(ctx context.Context) (models.AdminCredentials, error) {
	var creds models.AdminCredentials
	fallback, err := r.load(ctx, KeyCredentials, &creds)
	if err != nil {
		return models.AdminCredentials{}, err
	}
	if fallback {
		return DefaultCredentials(), nil
	}
	return creds, nil
}

func (r *Repo) SaveCredentials(ctx context.Context, creds models.AdminCredentials) error {
	return r.save(ctx, KeyCredentials, creds)
}
