package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return g.reply, g.err
}

const validDraftJSON = `{
	"seoTitle": "Fontanero urgente en Barcelona",
	"metaDescription": "Qué hacer ante una fuga",
	"slug": "fontanero-urgente-barcelona",
	"focusKeyword": "fontanero urgente",
	"content": "<h1>Fontanero urgente</h1><h2>Qué hacer</h2>",
	"imageAlt": "Fontanero reparando una tubería"
}`

func TestDraftArticleParsesReply(t *testing.T) {
	svc := &DraftingService{Gen: stubGenerator{reply: validDraftJSON}}

	draft, err := svc.DraftArticle(context.Background(), "fugas de agua", "es")
	require.NoError(t, err)
	assert.Equal(t, "Fontanero urgente en Barcelona", draft.SEOTitle)
	assert.Equal(t, "fontanero-urgente-barcelona", draft.Slug)
	assert.Contains(t, draft.ImageURL, "image.pollinations.ai/prompt/fontanero%20urgente")
	assert.Contains(t, draft.ImageURL, "width=1200&height=630&nologo=true")
}

func TestDraftArticleToleratesCodeFences(t *testing.T) {
	svc := &DraftingService{Gen: stubGenerator{reply: "```json\n" + validDraftJSON + "\n```"}}

	draft, err := svc.DraftArticle(context.Background(), "fugas", "es")
	require.NoError(t, err)
	assert.Equal(t, "fontanero urgente", draft.FocusKeyword)
}

func TestDraftArticleMalformedReply(t *testing.T) {
	cases := []string{
		"no es json",
		`{"seoTitle": "solo título"}`,
		`{"content": "<p>sin título</p>"}`,
		"",
	}
	for _, reply := range cases {
		svc := &DraftingService{Gen: stubGenerator{reply: reply}}
		_, err := svc.DraftArticle(context.Background(), "tema", "es")
		assert.ErrorIs(t, err, ErrMalformedResponse, "reply %q", reply)
	}
}

func TestDraftArticlePropagatesGeneratorError(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := &DraftingService{Gen: stubGenerator{err: boom}}
	_, err := svc.DraftArticle(context.Background(), "tema", "es")
	assert.ErrorIs(t, err, boom)
}

func TestGenerateAltTextFallsBackToPrompt(t *testing.T) {
	svc := &DraftingService{Gen: stubGenerator{err: errors.New("offline")}}
	assert.Equal(t, "caldera moderna", svc.GenerateAltText(context.Background(), "caldera moderna"))

	svc = &DraftingService{Gen: stubGenerator{reply: "   "}}
	assert.Equal(t, "caldera moderna", svc.GenerateAltText(context.Background(), "caldera moderna"))

	svc = &DraftingService{Gen: stubGenerator{reply: " Caldera de gas instalada en cocina "}}
	assert.Equal(t, "Caldera de gas instalada en cocina", svc.GenerateAltText(context.Background(), "caldera"))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://image.pollinations.ai/prompt/home%20repair?width=1200&height=630&nologo=true",
		ImageURL("home repair", 0))
	assert.Contains(t, ImageURL("caldera", 42), "&seed=42")
}
