package content

import (
	"context"
	"testing"

	contentRepo "serviciohogar/database/repository/content"
	"serviciohogar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory ContentRepository for service tests.
type memoryRepo struct {
	services []models.ServiceItem
	posts    []models.BlogPost
	faqs     []models.FAQItem
	cfg      models.SiteConfig
	leads    []models.Lead
	creds    models.AdminCredentials
}

func (r *memoryRepo) Services(ctx context.Context) ([]models.ServiceItem, error) {
	return r.services, nil
}
func (r *memoryRepo) SaveServices(ctx context.Context, services []models.ServiceItem) error {
	r.services = services
	return nil
}
func (r *memoryRepo) Posts(ctx context.Context) ([]models.BlogPost, error) { return r.posts, nil }
func (r *memoryRepo) SavePosts(ctx context.Context, posts []models.BlogPost) error {
	r.posts = posts
	return nil
}
func (r *memoryRepo) FAQs(ctx context.Context) ([]models.FAQItem, error) { return r.faqs, nil }
func (r *memoryRepo) SaveFAQs(ctx context.Context, faqs []models.FAQItem) error {
	r.faqs = faqs
	return nil
}
func (r *memoryRepo) SiteConfig(ctx context.Context) (models.SiteConfig, error) { return r.cfg, nil }
func (r *memoryRepo) SaveSiteConfig(ctx context.Context, cfg models.SiteConfig) error {
	r.cfg = cfg
	return nil
}
func (r *memoryRepo) Leads(ctx context.Context) ([]models.Lead, error) { return r.leads, nil }
func (r *memoryRepo) SaveLeads(ctx context.Context, leads []models.Lead) error {
	r.leads = leads
	return nil
}
func (r *memoryRepo) Credentials(ctx context.Context) (models.AdminCredentials, error) {
	return r.creds, nil
}
func (r *memoryRepo) SaveCredentials(ctx context.Context, creds models.AdminCredentials) error {
	r.creds = creds
	return nil
}

var _ contentRepo.ContentRepository = (*memoryRepo)(nil)

func newTestContentService(repo *memoryRepo) *DefaultContentService {
	return &DefaultContentService{
		Repo: repo,
		Now:  func() string { return "2026-08-31" },
	}
}

func TestCreatePostAssignsDefaults(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestContentService(repo)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, models.BlogPost{
		Title:   "Cómo Elegir un Fontanero",
		Content: "<p>Guía</p>",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2026-08-31", created.Date)
	assert.Equal(t, "cmo-elegir-un-fontanero", created.Slug)
	assert.Contains(t, created.ImageURL, "picsum.photos")
	assert.Equal(t, "draft", created.Status)

	// New posts are prepended.
	second, err := svc.CreatePost(ctx, models.BlogPost{Title: "Otro", Content: "x", Slug: "otro"})
	require.NoError(t, err)
	require.Len(t, repo.posts, 2)
	assert.Equal(t, second.ID, repo.posts[0].ID)
}

func TestCreatePostRejectsIncomplete(t *testing.T) {
	svc := newTestContentService(&memoryRepo{})
	_, err := svc.CreatePost(context.Background(), models.BlogPost{Title: "sin contenido"})
	assert.ErrorIs(t, err, ErrInvalidPost)
}

func TestPublishedFilteringAndSlugLookup(t *testing.T) {
	repo := &memoryRepo{posts: []models.BlogPost{
		{ID: "a", Slug: "publicado", Status: "published", Title: "A"},
		{ID: "b", Slug: "borrador", Status: "draft", Title: "B"},
	}}
	svc := newTestContentService(repo)
	ctx := context.Background()

	published, err := svc.PublishedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "a", published[0].ID)

	post, err := svc.PostBySlug(ctx, "publicado")
	require.NoError(t, err)
	assert.Equal(t, "a", post.ID)

	// Drafts are invisible through the public lookup.
	_, err = svc.PostBySlug(ctx, "borrador")
	assert.ErrorIs(t, err, ErrPostNotFound)

	all, err := svc.AllPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateAndDeletePost(t *testing.T) {
	repo := &memoryRepo{posts: []models.BlogPost{
		{ID: "a", Slug: "uno", Status: "draft", Title: "Uno"},
		{ID: "b", Slug: "dos", Status: "draft", Title: "Dos"},
	}}
	svc := newTestContentService(repo)
	ctx := context.Background()

	updated, err := svc.UpdatePost(ctx, models.BlogPost{ID: "a", Slug: "uno", Status: "published", Title: "Uno v2"})
	require.NoError(t, err)
	assert.Equal(t, "Uno v2", updated.Title)
	assert.Equal(t, "Uno v2", repo.posts[0].Title)

	_, err = svc.UpdatePost(ctx, models.BlogPost{ID: "missing"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	require.NoError(t, svc.DeletePost(ctx, "b"))
	require.Len(t, repo.posts, 1)
	assert.Equal(t, "a", repo.posts[0].ID)

	// Unknown ids are a no-op.
	assert.NoError(t, svc.DeletePost(ctx, "missing"))
}

func TestZoneDirectory(t *testing.T) {
	repo := &memoryRepo{services: contentRepo.DefaultServices()}
	svc := newTestContentService(repo)

	dir, err := svc.ZoneDirectory(context.Background())
	require.NoError(t, err)
	assert.Len(t, dir.Zones, 10)
	assert.Len(t, dir.Services, 5)
	assert.Equal(t, "Eixample", dir.Zones[0].Name)
	assert.Equal(t, "eixample", dir.Zones[0].Slug)
	assert.Equal(t, "sarrià-sant-gervasi", dir.Zones[4].Slug)
}
