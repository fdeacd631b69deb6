package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/manapixels/hair-salon-app-sub002/internal/audit"
	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/config"
	"github.com/manapixels/hair-salon-app-sub002/internal/handlers"
	infraRepo "github.com/manapixels/hair-salon-app-sub002/internal/infra/repository"
	"github.com/manapixels/hair-salon-app-sub002/internal/middleware"
	"github.com/manapixels/hair-salon-app-sub002/internal/storage"
	ucAppointment "github.com/manapixels/hair-salon-app-sub002/internal/usecase/appointment"
	ucSchedule "github.com/manapixels/hair-salon-app-sub002/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	settings *cache.Settings,
	photos *storage.PhotoStore,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	salonRepo := infraRepo.NewSalonGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(salonRepo, settings)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		salonRepo,
		settings,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		salonRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		salonRepo,
		auditDispatcher,
	)

	noShowUC := ucAppointment.NewMarkNoShow(
		salonRepo,
		auditDispatcher,
	)

	assignStylistUC := ucAppointment.NewAssignStylist(
		salonRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(salonRepo)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	blockedSlotsUC := ucSchedule.NewManageBlockedSlots(
		salonRepo,
		auditDispatcher,
	)

	closedDatesUC := ucSchedule.NewManageClosedDates(
		salonRepo,
		settings,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db, settings)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	stylistHandler := handlers.NewStylistHandler(db, settings, photos)

	scheduleHandler := handlers.NewScheduleHandler(
		db,
		settings,
		blockedSlotsUC,
		closedDatesUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		noShowUC,
		assignStylistUC,
		listAppointmentsUC,
		availabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		createAppointmentUC,
		cancelAppointmentUC,
		availabilityUC,
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/stylists", publicHandler.ListStylists)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.PATCH("/:slug/appointments/:reference/cancel", publicHandler.CancelByReference)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// STYLISTS
			// ------------------------------
			secured.GET("/me/stylists", stylistHandler.List)
			secured.POST("/me/stylists", stylistHandler.Create)
			secured.PATCH("/me/stylists/:id", stylistHandler.Update)
			secured.POST("/me/stylists/:id/photo", stylistHandler.UploadPhoto)

			secured.GET("/me/stylists/:id/hours", stylistHandler.GetHours)
			secured.PUT("/me/stylists/:id/hours", stylistHandler.UpdateHours)

			secured.GET("/me/stylists/:id/blocked-dates", stylistHandler.ListBlockedDates)
			secured.POST("/me/stylists/:id/blocked-dates", stylistHandler.AddBlockedDate)
			secured.DELETE("/me/stylists/:id/blocked-dates/:date", stylistHandler.RemoveBlockedDate)

			// ------------------------------
			// SCHEDULE
			// ------------------------------
			secured.GET("/me/schedule/hours", scheduleHandler.GetWeeklyHours)
			secured.PUT("/me/schedule/hours", scheduleHandler.UpdateWeeklyHours)

			secured.GET("/me/schedule/overrides", scheduleHandler.ListOverrides)
			secured.PUT("/me/schedule/overrides", scheduleHandler.PutOverride)
			secured.DELETE("/me/schedule/overrides/:date", scheduleHandler.DeleteOverride)

			secured.GET("/me/schedule/closed-dates", scheduleHandler.ListClosedDates)
			secured.POST("/me/schedule/closed-dates", scheduleHandler.AddClosedDate)
			secured.DELETE("/me/schedule/closed-dates/:date", scheduleHandler.RemoveClosedDate)

			secured.GET("/me/schedule/blocked-slots", scheduleHandler.ListBlockedSlots)
			secured.POST("/me/schedule/blocked-slots", scheduleHandler.BlockSlot)
			secured.DELETE("/me/schedule/blocked-slots", scheduleHandler.UnblockSlot)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)
			secured.PATCH("/me/appointments/:id/stylist", appointmentHandler.AssignStylist)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
