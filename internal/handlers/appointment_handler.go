package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/middleware"
	ucAppointment "github.com/manapixels/hair-salon-app-sub002/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	cancel       *ucAppointment.CancelAppointment
	complete     *ucAppointment.CompleteAppointment
	noShow       *ucAppointment.MarkNoShow
	assign       *ucAppointment.AssignStylist
	list         *ucAppointment.ListAppointments
	availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	noShow *ucAppointment.MarkNoShow,
	assign *ucAppointment.AssignStylist,
	list *ucAppointment.ListAppointments,
	availability *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		cancel:       cancel,
		complete:     complete,
		noShow:       noShow,
		assign:       assign,
		list:         list,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	StylistID  *uint  `json:"stylist_id"` // nil = any available stylist
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:MM
	Notes string `json:"notes"`
}

type AssignStylistRequest struct {
	StylistID uint `json:"stylist_id" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapCreateErrors turns booking business codes into HTTP responses; the
// public and staff paths share it so a full slot answers the same way
// on both.
func mapCreateErrors(c *gin.Context, err error) {
	codes := map[string]string{
		"invalid_date_or_time":      "Invalid date or time.",
		"too_soon":                  "This time is too close or in the past.",
		"service_not_found":         "One or more services were not found.",
		"invalid_service_duration":  "Service duration is invalid.",
		"invalid_processing_window": "Service processing window is invalid.",
		"stylist_not_found":         "Stylist not found.",
		"salon_closed":              "The salon is closed on this date.",
		"outside_open_hours":        "Outside opening hours.",
		"invalid_slot":              "Time is not on the booking grid.",
		"slot_blocked":              "This slot is blocked.",
		"slot_conflict":             "This slot was just taken.",
	}

	for code, msg := range codes {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, msg)
			return
		}
	}

	httperr.Internal(c, "failed_to_create_appointment", "Failed to create appointment.")
}

// ======================================================
// CREATE (STAFF)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:   salonID,
		StylistID: req.StylistID,

		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,

		ServiceIDs: req.ServiceIDs,

		Date:  req.Date,
		Time:  req.Time,
		Notes: req.Notes,

		Source:  "admin",
		ActorID: &userID,
	})
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	out, ok := runAvailability(c, h.availability, salonID)
	if !ok {
		return
	}

	c.JSON(200, out)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		mapStateErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) AssignStylist(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AssignStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.assign.Execute(c.Request.Context(), salonID, &userID, id, req.StylistID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "stylist_not_found"):
			httperr.BadRequest(c, "stylist_not_found", "Stylist not found.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Only scheduled appointments can be assigned.")
		case httperr.IsBusiness(err, "slot_conflict"):
			httperr.BadRequest(c, "slot_conflict", "The stylist is occupied at this time.")
		default:
			httperr.Internal(c, "failed_to_assign_stylist", "Failed to assign stylist.")
		}
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	stylistID, ok := optionalStylistID(c)
	if !ok {
		return
	}

	items, err := h.list.ByDate(c.Request.Context(), salonID, dateStr, stylistID)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(200, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	stylistID, ok := optionalStylistID(c)
	if !ok {
		return
	}

	items, err := h.list.ByMonth(c.Request.Context(), salonID, year, month, stylistID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": items,
	})
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

func optionalStylistID(c *gin.Context) (*uint, bool) {
	raw := c.Query("stylist_id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return nil, false
	}

	v := uint(id)
	return &v, true
}

func mapStateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Appointment state does not allow this change.")
	default:
		httperr.Internal(c, "appointment_update_failed", "Failed to update appointment.")
	}
}
