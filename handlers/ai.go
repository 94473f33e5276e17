package handlers

import (
	"errors"
	"net/http"
	"time"

	"serviciohogar/services/intelligence"
	"serviciohogar/utils"

	"github.com/gin-gonic/gin"
)

// AIHandler exposes the article drafting and image generation assistants
// to the admin editor.
type AIHandler struct {
	Drafting *intelligence.DraftingService
}

func NewAIHandler(drafting *intelligence.DraftingService) *AIHandler {
	return &AIHandler{Drafting: drafting}
}

// DraftArticle generates a full article draft for a topic.
func (h *AIHandler) DraftArticle(c *gin.Context) {
	if h.Drafting == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "AI drafting is not configured", "Set GEMINI_API_KEY to enable it.")
		return
	}
	var input struct {
		Topic    string `json:"topic" binding:"required"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	draft, err := h.Drafting.DraftArticle(c.Request.Context(), input.Topic, input.Language)
	if err != nil {
		if errors.Is(err, intelligence.ErrMalformedResponse) {
			utils.JSONError(c, http.StatusBadGateway, "Model returned an unusable draft", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Draft generation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GenerateImage builds a cover image URL and its ALT text for a prompt.
func (h *AIHandler) GenerateImage(c *gin.Context) {
	var input struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	alt := input.Prompt
	if h.Drafting != nil {
		alt = h.Drafting.GenerateAltText(c.Request.Context(), input.Prompt)
	}
	c.JSON(http.StatusOK, gin.H{
		"imageUrl": intelligence.ImageURL(input.Prompt, time.Now().UnixMilli()),
		"imageAlt": alt,
	})
}
