package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rooseveltjobs/jobboard/internal/config"
	"github.com/rooseveltjobs/jobboard/internal/database"
	"github.com/rooseveltjobs/jobboard/internal/handlers"
	"github.com/rooseveltjobs/jobboard/internal/identity"
	"github.com/rooseveltjobs/jobboard/internal/notify"
	"github.com/rooseveltjobs/jobboard/internal/services"
)

func main() {
	// 1. Environment & Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Error loading configuration: ", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.Database.DSN(), log)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	ctx := context.Background()

	// 3. Notification Collaborator
	// Denials require a delivered notification before the posting is
	// removed, so without a Gmail client they fail instead of deleting
	// silently.
	var notifier notify.Notifier = notify.Disabled{}
	gmailSvc, err := notify.NewGmailService(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile)
	if err != nil {
		log.WithError(err).Warn("Gmail unavailable; posting denials will fail until notifications are configured")
	} else {
		notifier = notify.NewGmailNotifier(gmailSvc, cfg.Google.Sender, log)
		log.Info("Gmail notifier connected")
	}

	// 4. Identity Provider
	provider, err := identity.NewGoogleProvider(ctx, db, cfg.Admin.Emails, log)
	if err != nil {
		log.Fatal("Failed to initialize identity provider: ", err)
	}

	broadcaster := identity.NewBroadcaster()
	events, unsubscribe := broadcaster.Subscribe()
	defer unsubscribe()
	go func() {
		for evt := range events {
			log.WithFields(logrus.Fields{
				"type": evt.Type,
				"uid":  evt.Identity.UID,
				"role": evt.Identity.Role,
			}).Info("auth state changed")
		}
	}()

	// 5. Core Services
	postingService := services.NewPostingService(db, notifier, log)
	applicationService := services.NewApplicationService(db, log)
	favoritesService := services.NewFavoritesService(db, log)

	// 6. Handlers
	postingHandler := handlers.NewPostingHandler(postingService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, postingService)
	favoriteHandler := handlers.NewFavoriteHandler(favoritesService)

	// 7. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Routes
	api := r.Group("/api/v1")
	api.GET("/health", handlers.HealthCheck)

	authed := api.Group("", identity.Authenticate(provider, broadcaster))

	student := authed.Group("", identity.RequireRole(identity.RoleStudent))
	{
		student.GET("/postings", postingHandler.ListVisible)
		student.POST("/postings/:id/applications", applicationHandler.Submit)
		student.POST("/postings/:id/favorite", favoriteHandler.Toggle)
		student.GET("/favorites", favoriteHandler.List)
	}

	employer := authed.Group("", identity.RequireRole(identity.RoleEmployer))
	{
		employer.POST("/postings", postingHandler.Create)
		employer.GET("/employer/postings", postingHandler.ListMine)
		employer.GET("/postings/:id/applications", applicationHandler.ListForPosting)
	}

	admin := authed.Group("/admin", identity.RequireRole(identity.RoleAdmin))
	{
		admin.GET("/postings/pending", postingHandler.ListPending)
		admin.POST("/postings/:id/approve", postingHandler.Approve)
		admin.DELETE("/postings/:id", postingHandler.Deny)
	}

	log.Infof("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
