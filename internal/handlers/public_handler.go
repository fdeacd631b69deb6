package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
	ucAppointment "github.com/manapixels/hair-salon-app-sub002/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	create       *ucAppointment.CreateAppointment
	cancel       *ucAppointment.CancelAppointment
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	availability *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		create:       create,
		cancel:       cancel,
		availability: availability,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	StylistID  *uint  `json:"stylist_id"` // nil = any available stylist
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return nil, false
	}
	return &salon, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("salon_id = ? AND active = true", salon.ID)

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

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// STYLISTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListStylists(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var stylists []models.Stylist
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("id ASC").
		Find(&stylists).Error; err != nil {

		httperr.Internal(c, "failed_to_list_stylists", "Failed to list stylists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"stylists": stylists,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	out, ok := runAvailability(c, h.availability, salon.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:   salon.ID,
		StylistID: req.StylistID,

		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,

		ServiceIDs: req.ServiceIDs,

		Date:  req.Date,
		Time:  req.Time,
		Notes: req.Notes,

		Source: "public",
	})
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference":  ap.Reference,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

////////////////////////////////////////////////////////
// CANCEL BY REFERENCE
////////////////////////////////////////////////////////

func (h *PublicHandler) CancelByReference(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	reference := c.Param("reference")
	if reference == "" {
		httperr.BadRequest(c, "missing_reference", "Booking reference is required.")
		return
	}

	ap, err := h.cancel.ExecuteByReference(c.Request.Context(), salon.ID, reference)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference": ap.Reference,
		"status":    ap.Status,
	})
}
