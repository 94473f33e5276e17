package handlers

import (
	"errors"
	"net/http"

	"serviciohogar/models"
	"serviciohogar/services/content"
	"serviciohogar/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the public site content and the admin CMS
// operations over it.
type ContentHandler struct {
	Service content.ContentService
}

func NewContentHandler(service content.ContentService) *ContentHandler {
	return &ContentHandler{Service: service}
}

// GetServices returns the active service catalog.
func (h *ContentHandler) GetServices(c *gin.Context) {
	services, err := h.Service.Services(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetFAQs returns the FAQ list.
func (h *ContentHandler) GetFAQs(c *gin.Context) {
	faqs, err := h.Service.FAQs(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load FAQs", err.Error())
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// GetSiteConfig returns the global site configuration.
func (h *ContentHandler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.Service.SiteConfig(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load site config", err.Error())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetZoneDirectory returns the coverage directory.
func (h *ContentHandler) GetZoneDirectory(c *gin.Context) {
	dir, err := h.Service.ZoneDirectory(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load coverage directory", err.Error())
		return
	}
	c.JSON(http.StatusOK, dir)
}

// GetPublishedPosts returns the public blog listing.
func (h *ContentHandler) GetPublishedPosts(c *gin.Context) {
	posts, err := h.Service.PublishedPosts(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load posts", err.Error())
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostBySlug returns one published post.
func (h *ContentHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.Service.PostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Post not found", c.Param("slug"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load post", err.Error())
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListPosts returns every post, drafts included.
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.Service.AllPosts(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load posts", err.Error())
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost stores a new post.
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid post", err.Error())
		return
	}
	created, err := h.Service.CreatePost(c.Request.Context(), post)
	if err != nil {
		if errors.Is(err, content.ErrInvalidPost) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid post", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create post", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePost replaces an existing post.
func (h *ContentHandler) UpdatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid post", err.Error())
		return
	}
	post.ID = c.Param("id")
	updated, err := h.Service.UpdatePost(c.Request.Context(), post)
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Post not found", post.ID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update post", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePost removes a post.
func (h *ContentHandler) DeletePost(c *gin.Context) {
	if err := h.Service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete post", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ScorePost runs the SEO scorer over submitted draft fields.
func (h *ContentHandler) ScorePost(c *gin.Context) {
	var input struct {
		Title           string `json:"title"`
		MetaDescription string `json:"metaDescription"`
		FocusKeyword    string `json:"focusKeyword"`
		Content         string `json:"content"`
		ImageAlt        string `json:"imageAlt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	report := content.ScoreSEO(input.Title, input.MetaDescription, input.FocusKeyword, input.Content, input.ImageAlt)
	c.JSON(http.StatusOK, report)
}

// FormatContent runs the auto-format helper over raw editor text.
func (h *ContentHandler) FormatContent(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content.AutoFormat(input.Content)})
}

// SaveServices replaces the whole service catalog.
func (h *ContentHandler) SaveServices(c *gin.Context) {
	var services []models.ServiceItem
	if err := c.ShouldBindJSON(&services); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid services", err.Error())
		return
	}
	if err := h.Service.ReplaceServices(c.Request.Context(), services); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// SaveFAQs replaces the whole FAQ list.
func (h *ContentHandler) SaveFAQs(c *gin.Context) {
	var faqs []models.FAQItem
	if err := c.ShouldBindJSON(&faqs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid FAQs", err.Error())
		return
	}
	if err := h.Service.ReplaceFAQs(c.Request.Context(), faqs); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save FAQs", err.Error())
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// SaveSiteConfig replaces the global site configuration.
func (h *ContentHandler) SaveSiteConfig(c *gin.Context) {
	var cfg models.SiteConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid site config", err.Error())
		return
	}
	if err := h.Service.UpdateSiteConfig(c.Request.Context(), cfg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save site config", err.Error())
		return
	}
	c.JSON(http.StatusOK, cfg)
}
