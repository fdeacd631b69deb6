package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/httpresp"
	"github.com/manapixels/hair-salon-app-sub002/internal/middleware"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`

	DurationMin           int `json:"duration_min" binding:"required,min=1"`
	ProcessingStartMin    int `json:"processing_start_min"`
	ProcessingDurationMin int `json:"processing_duration_min"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`

	DurationMin           *int `json:"duration_min"`
	ProcessingStartMin    *int `json:"processing_start_min"`
	ProcessingDurationMin *int `json:"processing_duration_min"`
}

// The processing window must sit inside the service itself: during
// colour developing the stylist is free, but the service still ends on
// schedule.
func validateProcessingWindow(duration, procStart, procDur int) bool {
	if duration <= 0 || procStart < 0 || procDur < 0 {
		return false
	}
	if procDur == 0 {
		return true
	}
	return procStart+procDur <= duration
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("salon_id = ?", salonID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validateProcessingWindow(req.DurationMin, req.ProcessingStartMin, req.ProcessingDurationMin) {
		httperr.BadRequest(c, "invalid_processing_window", "Processing window must fit inside the service duration.")
		return
	}

	service := models.Service{
		SalonID:     salonID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,

		DurationMin:           req.DurationMin,
		ProcessingStartMin:    req.ProcessingStartMin,
		ProcessingDurationMin: req.ProcessingDurationMin,

		Active: true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.ProcessingStartMin != nil {
		service.ProcessingStartMin = *req.ProcessingStartMin
	}
	if req.ProcessingDurationMin != nil {
		service.ProcessingDurationMin = *req.ProcessingDurationMin
	}

	if !validateProcessingWindow(service.DurationMin, service.ProcessingStartMin, service.ProcessingDurationMin) {
		httperr.BadRequest(c, "invalid_processing_window", "Processing window must fit inside the service duration.")
		return
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	c.JSON(http.StatusOK, service)
}
