package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"serviciohogar/models"

	"go.uber.org/zap"
)

// ErrMalformedResponse is returned when the model output cannot be parsed
// into a complete article draft.
var ErrMalformedResponse = errors.New("model response is not a valid article draft")

// DraftingService turns a topic into a ready-to-edit blog article using a
// text generation backend.
type DraftingService struct {
	Gen TextGenerator
}

func articlePrompt(topic, language string) string {
	lang := "Español"
	if language == "en" {
		lang = "Inglés"
	}
	return fmt.Sprintf(`Actúa como un redactor SEO profesional especializado en SEO local para negocios de servicios del hogar.
OBJETIVO: Crear un artículo informativo, útil, original y evergreen, optimizado para Google.
TEMA: %q
IDIOMA: %s.
UBICACIÓN: Barcelona.
NEGOCIO: Servicios hogar 24h.
REQUISITOS: 1 H1, varios H2, keywords en H1/H2/primer párrafo, min 900 palabras.
MENCIÓN SERVICIO: Incluir mención indirecta a asistencia 24h.
Responde ÚNICAMENTE con un objeto JSON con esta forma exacta:
{
  "seoTitle": "Título SEO",
  "metaDescription": "Meta descripción",
  "slug": "url-slug",
  "focusKeyword": "keyword",
  "content": "HTML STRING COMPLETO",
  "imageAlt": "Texto ALT"
}`, topic, lang)
}

// DraftArticle asks the model for a full article on the topic and parses
// its JSON reply. The draft's image URL is derived from the focus keyword.
func (s *DraftingService) DraftArticle(ctx context.Context, topic, language string) (*models.PostDraft, error) {
	raw, err := s.Gen.GenerateContent(ctx, articlePrompt(topic, language))
	if err != nil {
		return nil, err
	}

	draft, err := parseDraft(raw)
	if err != nil {
		zap.L().Warn("discarding unparseable article draft", zap.Error(err))
		return nil, err
	}

	keyword := draft.FocusKeyword
	if keyword == "" {
		keyword = "home repair"
	}
	draft.ImageURL = ImageURL(keyword, 0)
	return draft, nil
}

// parseDraft decodes the model reply, tolerating markdown code fences
// around the JSON object.
func parseDraft(raw string) (*models.PostDraft, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var draft models.PostDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if draft.SEOTitle == "" || draft.Content == "" {
		return nil, ErrMalformedResponse
	}
	return &draft, nil
}

// GenerateAltText asks the model for a short SEO ALT text describing the
// image prompt. On any failure the prompt itself is used, so image
// generation never blocks on the model.
func (s *DraftingService) GenerateAltText(ctx context.Context, prompt string) string {
	raw, err := s.Gen.GenerateContent(ctx, fmt.Sprintf("Genera un texto ALT SEO (max 10 palabras) para: %q", prompt))
	if err != nil {
		zap.L().Warn("alt text generation failed, falling back to prompt", zap.Error(err))
		return prompt
	}
	alt := strings.TrimSpace(raw)
	if alt == "" {
		return prompt
	}
	return alt
}

// ImageURL builds a pollinations.ai URL for a 1200x630 cover image. A
// non-zero seed varies the output between renders of the same prompt.
func ImageURL(prompt string, seed int64) string {
	u := fmt.Sprintf("https://image.pollinations.ai/prompt/%s?width=1200&height=630&nologo=true",
		url.PathEscape(prompt))
	if seed != 0 {
		u += fmt.Sprintf("&seed=%d", seed)
	}
	return u
}
