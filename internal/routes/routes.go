package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/cache"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	"github.com/BruksfildServices01/barber-queue/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucMetrics "github.com/BruksfildServices01/barber-queue/internal/usecase/metrics"
	ucQueue "github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, snapshots *cache.Snapshots) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	queueRepo := infraRepo.NewQueueGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — QUEUE
	// ======================================================
	enterQueueUC := ucQueue.NewEnterQueue(queueRepo, auditDispatcher)
	getQueueUC := ucQueue.NewGetQueue(queueRepo)
	updateStatusUC := ucQueue.NewUpdateStatus(queueRepo, auditDispatcher)
	getPositionUC := ucQueue.NewGetPosition(queueRepo)
	getByPhoneUC := ucQueue.NewGetActiveByPhone(queueRepo)

	summaryUC := ucMetrics.NewSummary(queueRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	queueHandler := handlers.NewQueueHandler(
		enterQueueUC,
		getQueueUC,
		updateStatusUC,
		getPositionUC,
		getByPhoneUC,
		snapshots,
	)

	metricsHandler := handlers.NewMetricsHandler(summaryUC)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	adminHandler := handlers.NewAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (cliente sem login)
		// ------------------------------
		api.POST("/queue/enter", queueHandler.Enter)
		api.GET("/queue/by-phone/:telefone", queueHandler.GetByPhone)
		api.GET("/queue/entry/:id/position", queueHandler.GetPosition)
		api.GET("/queue/:barberId", queueHandler.GetQueue)
		api.GET("/queue/:barberId/updates", queueHandler.Updates)

		api.GET("/barbers", barberHandler.List)
		api.GET("/services", serviceHandler.List)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (barbeiro + admin)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/disponivel", barberHandler.UpdateOwnAvailability)

			secured.PATCH("/queue/entry/:id/status", queueHandler.UpdateStatus)

			// ------------------------------
			// 👑 ADMIN
			// ------------------------------
			adminOnly := secured.Group("/")
			adminOnly.Use(middleware.RequireAdmin())
			{
				adminOnly.GET("/metrics", metricsHandler.Summary)

				adminOnly.POST("/services", serviceHandler.Create)
				adminOnly.PATCH("/services/:id", serviceHandler.Update)
				adminOnly.DELETE("/services/:id", serviceHandler.Delete)

				adminOnly.POST("/barbers", barberHandler.Create)
				adminOnly.PATCH("/barbers/:id", barberHandler.Update)
				adminOnly.DELETE("/barbers/:id", barberHandler.Delete)

				adminOnly.POST("/admins", adminHandler.Create)

				adminOnly.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
