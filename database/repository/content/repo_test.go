package contentRepo

import (
	"context"
	"testing"

	"serviciohogar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory DocumentStore used for repository tests.
type memoryStore struct {
	docs map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (s *memoryStore) Read(_ context.Context, key string) ([]byte, error) {
	data, ok := s.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (s *memoryStore) Write(_ context.Context, key string, data []byte) error {
	s.docs[key] = data
	return nil
}

func TestServicesFallsBackToDefaults(t *testing.T) {
	repo := NewRepo(newMemoryStore(), nil)

	services, err := repo.Services(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 5)
	assert.Equal(t, "Fontanería Urgente", services[0].Title)
	assert.Equal(t, 55.0, services[0].Price)
}

func TestServicesRoundTrip(t *testing.T) {
	repo := NewRepo(newMemoryStore(), nil)
	ctx := context.Background()

	custom := []models.ServiceItem{
		{ID: "9", Title: "Persianas", Description: "Reparación de persianas", Icon: "Wrench", Price: 40},
	}
	require.NoError(t, repo.SaveServices(ctx, custom))

	got, err := repo.Services(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestCorruptedDocumentYieldsDefaults(t *testing.T) {
	store := newMemoryStore()
	store.docs[KeyServices] = []byte(`{not valid json`)
	store.docs[KeyFAQs] = []byte(`[{"id": 42}]`) // id has the wrong type
	repo := NewRepo(store, nil)
	ctx := context.Background()

	services, err := repo.Services(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultServices(), services)

	faqs, err := repo.FAQs(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultFAQs(), faqs)
}

func TestSiteConfigRoundTrip(t *testing.T) {
	repo := NewRepo(newMemoryStore(), nil)
	ctx := context.Background()

	cfg, err := repo.SiteConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 35.0, cfg.Pricing.BaseFee)
	assert.Equal(t, 45.0, cfg.Pricing.UrgencyFee)

	cfg.Pricing.BaseFee = 40
	cfg.Texts.HeroTitle = "Urgencias en toda Barcelona"
	require.NoError(t, repo.SaveSiteConfig(ctx, cfg))

	got, err := repo.SiteConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLeadsDefaultToEmpty(t *testing.T) {
	repo := NewRepo(newMemoryStore(), nil)
	ctx := context.Background()

	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)

	leads = append(leads, models.Lead{ID: "l1", Source: models.LeadSourceCallback, Phone: "600123456", Status: models.LeadStatusPending})
	require.NoError(t, repo.SaveLeads(ctx, leads))

	got, err := repo.Leads(ctx)
	require.NoError(t, err)
	assert.Equal(t, leads, got)
}

func TestPostsRoundTripAndDefaults(t *testing.T) {
	repo := NewRepo(newMemoryStore(), nil)
	ctx := context.Background()

	posts, err := repo.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "mantenimiento-aire-acondicionado", posts[0].Slug)

	posts = posts[:1]
	require.NoError(t, repo.SavePosts(ctx, posts))

	got, err := repo.Posts(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}
