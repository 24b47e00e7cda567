// Package server wires the HTTP API on top of a shared store handle.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"alfredoptarigan/ai-recruiter/internal/config"
	"alfredoptarigan/ai-recruiter/internal/handlers"
	"alfredoptarigan/ai-recruiter/internal/repositories"
	"alfredoptarigan/ai-recruiter/internal/services"
)

// multipartOverhead leaves room above MAX_FILE_SIZE for form framing, so an
// oversized resume reaches the handler and is rejected per file.
const multipartOverhead = 1 << 20

// New builds the Fiber app. Every repository shares db.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) *fiber.App {
	// Initialize repositories
	roleRepo := repositories.NewRoleRepository(db)
	applicantRepo := repositories.NewApplicantRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	storeProbe := repositories.NewStoreProbe(db)

	// Initialize services
	resumeService := services.NewResumeService(cfg.Storage.MaxFileSize)
	interviewService := services.NewInterviewService(interviewRepo, log)
	evaluatorService := services.NewEvaluatorService(resultRepo, log)
	diagnosticsService := services.NewDiagnosticsService(storeProbe, cfg.Database)
	codeJudge := services.NewCodeJudge()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(diagnosticsService)
	roleHandler := handlers.NewRoleHandler(roleRepo, log)
	applicationHandler := handlers.NewApplicationHandler(applicantRepo, resumeService)
	interviewHandler := handlers.NewInterviewHandler(interviewService, codeJudge, evaluatorService)
	adminHandler := handlers.NewAdminHandler(applicantRepo, interviewRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      "Lily AI Recruiter API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + multipartOverhead,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "*",
	}))

	// Health
	app.Get("/", healthHandler.HandleRoot)
	app.Get("/test", healthHandler.HandleDiagnostics)

	api := app.Group("/api")

	// Roles
	api.Get("/roles", roleHandler.HandleList)
	api.Get("/roles/:role_id", roleHandler.HandleGet)
	api.Post("/roles", roleHandler.HandleCreate)

	// Applications
	api.Post("/apply", applicationHandler.HandleApply)
	api.Post("/upload-resume", applicationHandler.HandleUploadResume)

	// Interview flow
	api.Post("/interview/start", interviewHandler.HandleStart)
	api.Post("/interview/chat", interviewHandler.HandleChat)
	api.Post("/interview/coding/start", interviewHandler.HandleStartCoding)
	api.Post("/interview/coding/run", interviewHandler.HandleRunCode)
	api.Post("/interview/complete", interviewHandler.HandleComplete)

	// Admin
	api.Get("/admin/applicants", adminHandler.HandleApplicants)
	api.Get("/admin/interviews", adminHandler.HandleInterviews)

	return app
}
