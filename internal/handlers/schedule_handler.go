package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/middleware"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
	ucSchedule "github.com/manapixels/hair-salon-app-sub002/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db       *gorm.DB
	settings *cache.Settings

	blockedSlots *ucSchedule.ManageBlockedSlots
	closedDates  *ucSchedule.ManageClosedDates
}

func NewScheduleHandler(
	db *gorm.DB,
	settings *cache.Settings,
	blockedSlots *ucSchedule.ManageBlockedSlots,
	closedDates *ucSchedule.ManageClosedDates,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:           db,
		settings:     settings,
		blockedSlots: blockedSlots,
		closedDates:  closedDates,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WeekdayHoursConfig struct {
	Weekday     int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen      bool   `json:"is_open"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

type WeeklyHoursUpdateRequest struct {
	Days []WeekdayHoursConfig `json:"days" binding:"required"`
}

type OverrideRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	IsOpen      bool   `json:"is_open"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

type ClosedDateRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

type BlockedSlotRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM
}

// validateHoursRange rejects malformed times and inverted ranges before
// they reach the database. Closed entries may leave both fields empty.
func validateHoursRange(isOpen bool, opening, closing string) error {
	if !isOpen {
		return nil
	}

	start, err := clock.Parse(opening)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	end, err := clock.Parse(closing)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	if start >= end {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return nil
}

// ======================================================
// WEEKLY HOURS
// ======================================================

func (h *ScheduleHandler) GetWeeklyHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var hours []models.SalonHours
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_hours", "Failed to load opening hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *ScheduleHandler) UpdateWeeklyHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req WeeklyHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	for _, d := range req.Days {
		if err := validateHoursRange(d.IsOpen, d.OpeningTime, d.ClosingTime); err != nil {
			httperr.BadRequest(c, "invalid_hours", "Opening hours must be valid HH:MM with opening before closing.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salonID).Delete(&models.SalonHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.SalonHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.SalonHours{
				SalonID:     salonID,
				Weekday:     d.Weekday,
				IsOpen:      d.IsOpen,
				OpeningTime: d.OpeningTime,
				ClosingTime: d.ClosingTime,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_hours", "Failed to save opening hours.")
		return
	}

	h.settings.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// DATE OVERRIDES
// ======================================================

func (h *ScheduleHandler) ListOverrides(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var overrides []models.ScheduleOverride
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("date ASC").
		Find(&overrides).Error; err != nil {

		httperr.Internal(c, "failed_to_get_overrides", "Failed to load schedule overrides.")
		return
	}

	c.JSON(http.StatusOK, overrides)
}

func (h *ScheduleHandler) PutOverride(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !clock.ValidDateKey(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if err := validateHoursRange(req.IsOpen, req.OpeningTime, req.ClosingTime); err != nil {
		httperr.BadRequest(c, "invalid_hours", "Override hours must be valid HH:MM with opening before closing.")
		return
	}

	override := models.ScheduleOverride{
		SalonID:     salonID,
		Date:        req.Date,
		IsOpen:      req.IsOpen,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}

	err := h.db.
		Where("salon_id = ? AND date = ?", salonID, req.Date).
		Delete(&models.ScheduleOverride{}).Error
	if err == nil {
		err = h.db.Create(&override).Error
	}
	if err != nil {
		httperr.Internal(c, "failed_to_save_override", "Failed to save schedule override.")
		return
	}

	h.settings.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, override)
}

func (h *ScheduleHandler) DeleteOverride(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	date := c.Param("date")

	if !clock.ValidDateKey(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	if err := h.db.
		Where("salon_id = ? AND date = ?", salonID, date).
		Delete(&models.ScheduleOverride{}).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_override", "Failed to remove schedule override.")
		return
	}

	h.settings.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// CLOSED DATES
// ======================================================

func (h *ScheduleHandler) ListClosedDates(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var dates []models.ClosedDate
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("date ASC").
		Find(&dates).Error; err != nil {

		httperr.Internal(c, "failed_to_get_closed_dates", "Failed to load closed dates.")
		return
	}

	c.JSON(http.StatusOK, dates)
}

func (h *ScheduleHandler) AddClosedDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req ClosedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	err := h.closedDates.Add(c.Request.Context(), salonID, &userID, req.Date, req.Reason)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_add_closed_date", "Failed to add closed date.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) RemoveClosedDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	date := c.Param("date")

	err := h.closedDates.Remove(c.Request.Context(), salonID, &userID, date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_remove_closed_date", "Failed to remove closed date.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BLOCKED SLOTS
// ======================================================

func (h *ScheduleHandler) ListBlockedSlots(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	date := c.Query("date")

	q := h.db.Where("salon_id = ?", salonID)
	if date != "" {
		if !clock.ValidDateKey(date) {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		q = q.Where("date = ?", date)
	}

	var slots []models.BlockedSlot
	if err := q.Order("date ASC, time ASC").Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_get_blocked_slots", "Failed to load blocked slots.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *ScheduleHandler) BlockSlot(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req BlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	err := h.blockedSlots.Block(c.Request.Context(), salonID, &userID, req.Date, req.Time)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Date must be YYYY-MM-DD and time HH:MM.")
			return
		}
		httperr.Internal(c, "failed_to_block_slot", "Failed to block slot.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) UnblockSlot(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req BlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	err := h.blockedSlots.Unblock(c.Request.Context(), salonID, &userID, req.Date, req.Time)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date_or_time") {
			httperr.BadRequest(c, "invalid_date_or_time", "Date must be YYYY-MM-DD and time HH:MM.")
			return
		}
		httperr.Internal(c, "failed_to_unblock_slot", "Failed to unblock slot.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
