package content

import (
	"strings"

	"serviciohogar/models"
)

const pointsPerCheck = 20

// ScoreSEO runs the five editor heuristics over a draft and scores 20
// points per passing check. Keyword matching is case-insensitive; the
// keyword checks fail outright when no focus keyword is set.
func ScoreSEO(title, metaDescription, focusKeyword, content, imageAlt string) models.SEOReport {
	keyword := strings.ToLower(strings.TrimSpace(focusKeyword))

	checks := models.SEOChecks{
		ContentLength: len(strings.Fields(content)) > 300,
		HasSubheading: strings.Contains(content, "<h2>") || strings.Contains(content, "H2:"),
		HasImageAlt:   strings.TrimSpace(imageAlt) != "",
	}
	if keyword != "" {
		checks.KeywordInTitle = strings.Contains(strings.ToLower(title), keyword)
		checks.KeywordInDescription = strings.Contains(strings.ToLower(metaDescription), keyword)
	}

	score := 0
	for _, ok := range []bool{
		checks.KeywordInTitle,
		checks.KeywordInDescription,
		checks.ContentLength,
		checks.HasSubheading,
		checks.HasImageAlt,
	} {
		if ok {
			score += pointsPerCheck
		}
	}
	return models.SEOReport{Score: score, Checks: checks}
}

// ScorePost scores a stored post using its own SEO metadata.
func ScorePost(post models.BlogPost) models.SEOReport {
	return ScoreSEO(post.Title, post.SEO.MetaDescription, post.SEO.FocusKeyword, post.Content, post.ImageAlt)
}
