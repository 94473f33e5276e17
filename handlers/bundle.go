package handlers

import (
	"serviciohogar/services/admin"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration has a single dependency.
type HandlerBundle struct {
	AuthService admin.AuthService

	// Booking wizard endpoints.
	StartBookingSession   gin.HandlerFunc
	GetBookingSession     gin.HandlerFunc
	SelectBookingService  gin.HandlerFunc
	SubmitBookingAnswer   gin.HandlerFunc
	AdvanceBookingSession gin.HandlerFunc
	RetreatBookingSession gin.HandlerFunc
	SelectBookingSchedule gin.HandlerFunc
	SetBookingContact     gin.HandlerFunc
	ConfirmBookingSession gin.HandlerFunc
	CancelBookingSession  gin.HandlerFunc

	// Public content endpoints.
	GetServices       gin.HandlerFunc
	GetFAQs           gin.HandlerFunc
	GetSiteConfig     gin.HandlerFunc
	GetZoneDirectory  gin.HandlerFunc
	GetPublishedPosts gin.HandlerFunc
	GetPostBySlug     gin.HandlerFunc

	// Lead endpoints.
	RequestCallback gin.HandlerFunc
	SubmitContact   gin.HandlerFunc

	// Admin endpoints.
	AdminLogin          gin.HandlerFunc
	AdminLogout         gin.HandlerFunc
	AdminChangePassword gin.HandlerFunc
	AdminListPosts      gin.HandlerFunc
	AdminCreatePost     gin.HandlerFunc
	AdminUpdatePost     gin.HandlerFunc
	AdminDeletePost     gin.HandlerFunc
	AdminScorePost      gin.HandlerFunc
	AdminFormatContent  gin.HandlerFunc
	AdminSaveServices   gin.HandlerFunc
	AdminSaveFAQs       gin.HandlerFunc
	AdminSaveSiteConfig gin.HandlerFunc
	AdminListLeads      gin.HandlerFunc
	AdminMarkLeadDone   gin.HandlerFunc
	AdminDeleteLead     gin.HandlerFunc

	// AI endpoints.
	AIDraftArticle  gin.HandlerFunc
	AIGenerateImage gin.HandlerFunc

	// Storage endpoints.
	UploadImage gin.HandlerFunc
}
