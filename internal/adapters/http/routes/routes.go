package routes

import (
	"chamahub/internal/adapters/http/handlers"
	"chamahub/internal/adapters/http/middleware"
	"chamahub/internal/adapters/persistence/repositories"
	"chamahub/internal/config"
	"chamahub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	contributionRepo := repositories.NewContributionRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, profileRepo, roleRepo, refreshTokenRepo, cfg)
	memberService := services.NewMemberService(profileRepo, roleRepo, userRepo)
	contributionService := services.NewContributionService(contributionRepo, profileRepo, cfg.Ledger.ListLimit)
	calendarService := services.NewCalendarService(contributionRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)
	eventService := services.NewEventService(eventRepo)
	documentService := services.NewDocumentService(documentRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, memberService, cfg)
	memberHandler := handlers.NewMemberHandler(memberService)
	contributionHandler := handlers.NewContributionHandler(contributionService, calendarService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	eventHandler := handlers.NewEventHandler(eventService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Member routes (authenticated)
	memberRoutes := apiV1.Group("/members")
	memberRoutes.Use(middleware.AuthMiddleware(cfg))
	setupMemberRoutes(memberRoutes, memberHandler)

	// Contribution routes (authenticated)
	contributionRoutes := apiV1.Group("/contributions")
	contributionRoutes.Use(middleware.AuthMiddleware(cfg))
	setupContributionRoutes(contributionRoutes, contributionHandler)

	// Announcement routes (authenticated)
	announcementRoutes := apiV1.Group("/announcements")
	announcementRoutes.Use(middleware.AuthMiddleware(cfg))
	setupAnnouncementRoutes(announcementRoutes, announcementHandler)

	// Event routes (authenticated)
	eventRoutes := apiV1.Group("/events")
	eventRoutes.Use(middleware.AuthMiddleware(cfg))
	setupEventRoutes(eventRoutes, eventHandler)

	// Document routes (authenticated)
	documentRoutes := apiV1.Group("/documents")
	documentRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDocumentRoutes(documentRoutes, documentHandler)

	// Dashboard routes (admin/treasurer)
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.TreasurerOrAdmin())
	dashboardRoutes.Get("/stats", dashboardHandler.Stats)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupMemberRoutes configures member directory routes
func setupMemberRoutes(router fiber.Router, handler *handlers.MemberHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Put("/:id", handler.UpdateProfile)

	// Admin only
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
	router.Get("/:id/roles", middleware.AdminOnly(), handler.GetRoles)
	router.Put("/:id/roles", middleware.AdminOnly(), handler.ReplaceRoles)
}

// setupContributionRoutes configures contribution ledger routes
func setupContributionRoutes(router fiber.Router, handler *handlers.ContributionHandler) {
	// Role scoping happens in the service: members see their own rows,
	// admins and treasurers see the whole ledger.
	router.Get("/", handler.List)
	router.Get("/calendar/:memberId", handler.Calendar)
	router.Get("/:id", handler.Get)

	// Treasurer/Admin
	router.Post("/", middleware.TreasurerOrAdmin(), handler.Record)

	// Admin only
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupAnnouncementRoutes configures announcement routes
func setupAnnouncementRoutes(router fiber.Router, handler *handlers.AnnouncementHandler) {
	router.Get("/", handler.List)

	// Admin only
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupEventRoutes configures event routes
func setupEventRoutes(router fiber.Router, handler *handlers.EventHandler) {
	router.Get("/", handler.List)
	router.Post("/:id/rsvp", handler.RSVP)

	// Admin/Treasurer
	router.Get("/:id/attendance", middleware.TreasurerOrAdmin(), handler.Attendance)

	// Admin only
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
	router.Post("/:id/attendance", middleware.AdminOnly(), handler.MarkAttendance)
}

// setupDocumentRoutes configures document routes
func setupDocumentRoutes(router fiber.Router, handler *handlers.DocumentHandler) {
	router.Get("/", handler.List)

	// Admin only
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}
