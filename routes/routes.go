package routes

import (
	"net/http"
	"time"

	"serviciohogar/handlers"
	"serviciohogar/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterContentRoutes registers the public content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/services", hb.GetServices)
		api.GET("/faqs", hb.GetFAQs)
		api.GET("/config", hb.GetSiteConfig)
		api.GET("/zones", hb.GetZoneDirectory)
	}

	blog := r.Group("/api/blog")
	{
		blog.GET("/posts", hb.GetPublishedPosts)
		blog.GET("/posts/:slug", hb.GetPostBySlug)
	}
}

// RegisterBookingRoutes sets up the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartBookingSession)
		bookingGroup.GET("/session/:sessionID", hb.GetBookingSession)
		bookingGroup.PUT("/session/:sessionID/service", hb.SelectBookingService)
		bookingGroup.PUT("/session/:sessionID/answer", hb.SubmitBookingAnswer)
		bookingGroup.POST("/session/:sessionID/next", hb.AdvanceBookingSession)
		bookingGroup.POST("/session/:sessionID/back", hb.RetreatBookingSession)
		bookingGroup.PUT("/session/:sessionID/schedule", hb.SelectBookingSchedule)
		bookingGroup.PUT("/session/:sessionID/contact", hb.SetBookingContact)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBookingSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelBookingSession)
	}
}

// RegisterLeadRoutes registers the public lead-capture endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("/callback", hb.RequestCallback)
		api.POST("/contact", hb.SubmitContact)
	}
}

// RegisterAdminRoutes registers the authenticated CMS endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.AdminLogin)

		// Everything below requires a valid session token.
		api.Use(middleware.AdminAuthMiddleware(hb.AuthService))
		api.POST("/logout", hb.AdminLogout)
		api.PUT("/password", hb.AdminChangePassword)

		api.GET("/posts", hb.AdminListPosts)
		api.POST("/posts", hb.AdminCreatePost)
		api.PUT("/posts/:id", hb.AdminUpdatePost)
		api.DELETE("/posts/:id", hb.AdminDeletePost)
		api.POST("/posts/score", hb.AdminScorePost)
		api.POST("/posts/format", hb.AdminFormatContent)

		api.PUT("/services", hb.AdminSaveServices)
		api.PUT("/faqs", hb.AdminSaveFAQs)
		api.PUT("/config", hb.AdminSaveSiteConfig)

		api.GET("/leads", hb.AdminListLeads)
		api.PUT("/leads/:id/done", hb.AdminMarkLeadDone)
		api.DELETE("/leads/:id", hb.AdminDeleteLead)

		api.POST("/ai/draft", hb.AIDraftArticle)
		api.POST("/ai/image", hb.AIGenerateImage)

		api.POST("/uploads", hb.UploadImage)
	}
}

// RegisterHealthRoute registers health and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "ServicioHogar24 API"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterContentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
