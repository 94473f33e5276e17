package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serviciohogar/config"
	"serviciohogar/database"
	contentRepo "serviciohogar/database/repository/content"
	"serviciohogar/handlers"
	"serviciohogar/middleware"
	"serviciohogar/routes"
	"serviciohogar/services/admin"
	"serviciohogar/services/booking"
	"serviciohogar/services/content"
	ai "serviciohogar/services/intelligence"
	"serviciohogar/services/lead"
	"serviciohogar/services/storage"
	"serviciohogar/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repository.
	repo := contentRepo.NewRepo(contentRepo.NewMongoDocumentStore(database.Database()), logger)

	// services.
	bookingService := &booking.DefaultBookingSessionService{
		Repo:  repo,
		Cache: utils.GetBookingCacheClient(),
	}
	contentService := &content.DefaultContentService{Repo: repo}
	leadService := &lead.DefaultLeadService{Repo: repo}
	authService := &admin.DefaultAuthService{
		Repo:  repo,
		Cache: utils.GetAuthCacheClient(),
	}

	var draftingService *ai.DraftingService
	if gemini, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey); err != nil {
		logger.Sugar().Warnf("main: AI drafting disabled: %v", err)
	} else {
		draftingService = &ai.DraftingService{Gen: gemini}
	}

	var mediaService storage.MediaService
	if cld, err := storage.NewMediaService(config.AppConfig.CloudinaryURL); err != nil {
		logger.Sugar().Warnf("main: media uploads disabled: %v", err)
	} else {
		mediaService = cld
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	contentHandler := handlers.NewContentHandler(contentService)
	leadHandler := handlers.NewLeadHandler(leadService)
	adminHandler := handlers.NewAdminHandler(authService)
	aiHandler := handlers.NewAIHandler(draftingService)
	storageHandler := handlers.NewStorageHandler(mediaService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,

		// Booking wizard endpoints.
		StartBookingSession:   bookingHandler.StartSession,
		GetBookingSession:     bookingHandler.GetSession,
		SelectBookingService:  bookingHandler.SelectService,
		SubmitBookingAnswer:   bookingHandler.SubmitAnswer,
		AdvanceBookingSession: bookingHandler.Advance,
		RetreatBookingSession: bookingHandler.Retreat,
		SelectBookingSchedule: bookingHandler.SelectSchedule,
		SetBookingContact:     bookingHandler.SetContact,
		ConfirmBookingSession: bookingHandler.Confirm,
		CancelBookingSession:  bookingHandler.Cancel,

		// Public content endpoints.
		GetServices:       contentHandler.GetServices,
		GetFAQs:           contentHandler.GetFAQs,
		GetSiteConfig:     contentHandler.GetSiteConfig,
		GetZoneDirectory:  contentHandler.GetZoneDirectory,
		GetPublishedPosts: contentHandler.GetPublishedPosts,
		GetPostBySlug:     contentHandler.GetPostBySlug,

		// Lead endpoints.
		RequestCallback: leadHandler.RequestCallback,
		SubmitContact:   leadHandler.SubmitContact,

		// Admin endpoints.
		AdminLogin:          adminHandler.Login,
		AdminLogout:         adminHandler.Logout,
		AdminChangePassword: adminHandler.ChangePassword,
		AdminListPosts:      contentHandler.ListPosts,
		AdminCreatePost:     contentHandler.CreatePost,
		AdminUpdatePost:     contentHandler.UpdatePost,
		AdminDeletePost:     contentHandler.DeletePost,
		AdminScorePost:      contentHandler.ScorePost,
		AdminFormatContent:  contentHandler.FormatContent,
		AdminSaveServices:   contentHandler.SaveServices,
		AdminSaveFAQs:       contentHandler.SaveFAQs,
		AdminSaveSiteConfig: contentHandler.SaveSiteConfig,
		AdminListLeads:      leadHandler.ListLeads,
		AdminMarkLeadDone:   leadHandler.MarkLeadDone,
		AdminDeleteLead:     leadHandler.DeleteLead,

		// AI endpoints.
		AIDraftArticle:  aiHandler.DraftArticle,
		AIGenerateImage: aiHandler.GenerateImage,

		// Storage endpoints.
		UploadImage: storageHandler.UploadImage,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
