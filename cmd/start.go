/*
Copyright © 2025 contempsico
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/contempsico/portal-be/config"
	"github.com/contempsico/portal-be/database"
	"github.com/contempsico/portal-be/handler"
	"github.com/contempsico/portal-be/middleware"
	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/repository/memory"
	"github.com/contempsico/portal-be/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the portal server",
	Long:  `Starts the HTTP server backing the internal company portal`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var (
			userRepo         repository.UserRepo
			taskRepo         repository.TaskRepo
			announcementRepo repository.AnnouncementRepo
			eventRepo        repository.EventRepo
			trainingRepo     repository.TrainingRepo
			regulationRepo   repository.RegulationRepo
			linkRepo         repository.LinkRepo
			servicePriceRepo repository.ServicePriceRepo
			psychologistRepo repository.PsychologistRepo
		)

		switch cfg.Storage {
		case config.StorageMemory:
			// Demo mode: everything lives in process and resets on restart.
			store := memory.NewStore(cfg.MockLatency)
			if err := store.Seed(context.Background()); err != nil {
				log.Fatalf("Failed to seed memory store: %v", err)
			}
			userRepo = store
			taskRepo = store
			announcementRepo = store
			eventRepo = store
			trainingRepo = store
			regulationRepo = store
			linkRepo = store
			servicePriceRepo = store
			psychologistRepo = store
		default:
			mongoClient, err := database.ConnectMongo(context.Background(), cfg.MongoURI)
			if err != nil {
				log.Fatalf("Failed to connect to MongoDB: %v", err)
			}
			mongoDb := mongoClient.Database(cfg.MongoDatabase)
			userRepo = repository.NewUserRepo(mongoDb)
			taskRepo = repository.NewTaskRepo(mongoDb)
			announcementRepo = repository.NewAnnouncementRepo(mongoDb)
			eventRepo = repository.NewEventRepo(mongoDb)
			trainingRepo = repository.NewTrainingRepo(mongoDb)
			regulationRepo = repository.NewRegulationRepo(mongoDb)
			linkRepo = repository.NewLinkRepo(mongoDb)
			servicePriceRepo = repository.NewServicePriceRepo(mongoDb)
			psychologistRepo = repository.NewPsychologistRepo(mongoDb)
		}

		// Initialize services
		hub := service.NewNotificationHub()
		userService := service.NewUserService(userRepo)
		taskService := service.NewTaskService(taskRepo, hub)
		announcementService := service.NewAnnouncementService(announcementRepo, hub)
		calendarService := service.NewCalendarService(eventRepo)
		resourceService := service.NewResourceService(trainingRepo, regulationRepo, linkRepo, servicePriceRepo, psychologistRepo)
		reportService := service.NewReportService(taskRepo, userRepo)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler(cfg.AllowedOrigins)
		loginHandler := handler.NewLoginHandler(userService, cfg.JWTSecret, cfg.TokenTTL)
		announcementHandler := handler.NewAnnouncementHandler(announcementService)
		calendarHandler := handler.NewCalendarHandler(calendarService)
		taskHandler := handler.NewTaskHandler(taskService)
		resourceHandler := handler.NewResourceHandler(resourceService)
		reportHandler := handler.NewReportHandler(reportService)
		notificationHandler := handler.NewNotificationHandler(hub)
		userMngHandler := handler.NewUserManageHandler(userService)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/login", loginHandler.HandleLogin)

		// Protected routes
		authRoutes := apiV1.Group("/")
		authRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			authRoutes.GET("/me", loginHandler.HandleMe)
			authRoutes.GET("/me/permissions", loginHandler.HandlePermissions)
			authRoutes.GET("/ws", notificationHandler.HandleWebSocket)

			authRoutes.GET("/announcements", announcementHandler.HandleListAnnouncements)
			authRoutes.POST("/announcements", announcementHandler.HandleCreateAnnouncement)
			authRoutes.PUT("/announcements/:id", announcementHandler.HandleUpdateAnnouncement)
			authRoutes.DELETE("/announcements/:id", announcementHandler.HandleDeleteAnnouncement)

			authRoutes.GET("/calendar/events", calendarHandler.HandleListEvents)
			authRoutes.POST("/calendar/events", calendarHandler.HandleCreateEvent)
			authRoutes.PUT("/calendar/events/:id", calendarHandler.HandleUpdateEvent)
			authRoutes.DELETE("/calendar/events/:id", calendarHandler.HandleDeleteEvent)

			authRoutes.GET("/tasks", taskHandler.HandleListTasks)
			authRoutes.POST("/tasks", taskHandler.HandleCreateTask)
			authRoutes.GET("/tasks/pending-count", taskHandler.HandlePendingCount)
			authRoutes.GET("/tasks/:id", taskHandler.HandleGetTask)
			authRoutes.PUT("/tasks/:id", taskHandler.HandleUpdateTask)
			authRoutes.PATCH("/tasks/:id/status", taskHandler.HandleUpdateTaskStatus)
			authRoutes.PATCH("/tasks/:id/subtasks/:subtaskId", taskHandler.HandleToggleSubtask)
			authRoutes.DELETE("/tasks/:id", taskHandler.HandleDeleteTask)

			authRoutes.GET("/resources/trainings", resourceHandler.HandleListTrainings)
			authRoutes.POST("/resources/trainings", resourceHandler.HandleCreateTraining)
			authRoutes.PUT("/resources/trainings/:id", resourceHandler.HandleUpdateTraining)
			authRoutes.DELETE("/resources/trainings/:id", resourceHandler.HandleDeleteTraining)

			authRoutes.GET("/resources/regulations", resourceHandler.HandleListRegulations)
			authRoutes.POST("/resources/regulations", resourceHandler.HandleCreateRegulation)
			authRoutes.PUT("/resources/regulations/:id", resourceHandler.HandleUpdateRegulation)
			authRoutes.DELETE("/resources/regulations/:id", resourceHandler.HandleDeleteRegulation)

			authRoutes.GET("/resources/links", resourceHandler.HandleListLinks)
			authRoutes.POST("/resources/links", resourceHandler.HandleCreateLink)
			authRoutes.PUT("/resources/links/:id", resourceHandler.HandleUpdateLink)
			authRoutes.DELETE("/resources/links/:id", resourceHandler.HandleDeleteLink)

			authRoutes.GET("/resources/services", resourceHandler.HandleListServices)
			authRoutes.POST("/resources/services", resourceHandler.HandleCreateService)
			authRoutes.PUT("/resources/services/:id", resourceHandler.HandleUpdateService)
			authRoutes.DELETE("/resources/services/:id", resourceHandler.HandleDeleteService)

			authRoutes.GET("/resources/psychologists", resourceHandler.HandleListPsychologists)
			authRoutes.POST("/resources/psychologists", resourceHandler.HandleCreatePsychologist)
			authRoutes.PUT("/resources/psychologists/:id", resourceHandler.HandleUpdatePsychologist)
			authRoutes.DELETE("/resources/psychologists/:id", resourceHandler.HandleDeletePsychologist)

			authRoutes.GET("/users/assignable", userMngHandler.HandleListAssignableUsers)

			authRoutes.GET("/reports/productivity", reportHandler.HandleProductivityReport)
		}

		// Admin routes - management profile only
		adminRoutes := router.Group("/admin/api/v1")
		adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.ManagementMiddleware())
		{
			adminRoutes.POST("/users/create", userMngHandler.HandleCreateUser)
			adminRoutes.GET("/users/paginate", userMngHandler.HandlePaginateUser)
			adminRoutes.GET("/users/get", userMngHandler.HandleGetUser)
			adminRoutes.PUT("/users/update", userMngHandler.HandleUpdateUser)
			adminRoutes.DELETE("/users/delete", userMngHandler.HandleDeleteUser)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
