package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/httpresp"
	"github.com/manapixels/hair-salon-app-sub002/internal/middleware"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
	"github.com/manapixels/hair-salon-app-sub002/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type StylistHandler struct {
	db       *gorm.DB
	settings *cache.Settings
	photos   *storage.PhotoStore
}

func NewStylistHandler(
	db *gorm.DB,
	settings *cache.Settings,
	photos *storage.PhotoStore,
) *StylistHandler {
	return &StylistHandler{
		db:       db,
		settings: settings,
		photos:   photos,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateStylistRequest struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio"`
}

type UpdateStylistRequest struct {
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	Active      *bool   `json:"active"`
	UseOwnHours *bool   `json:"use_own_hours"`
}

type StylistHoursUpdateRequest struct {
	Days []WeekdayHoursConfig `json:"days" binding:"required"`
}

type StylistBlockedDateRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

func (h *StylistHandler) findStylist(c *gin.Context) (*models.Stylist, bool) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	var stylist models.Stylist
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&stylist).Error; err != nil {

		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return nil, false
	}
	return &stylist, true
}

// ======================================================
// CRUD
// ======================================================

func (h *StylistHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var stylists []models.Stylist
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&stylists).Error; err != nil {

		httperr.Internal(c, "failed_to_list_stylists", "Failed to list stylists.")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	stylist := models.Stylist{
		SalonID: salonID,
		Name:    req.Name,
		Bio:     req.Bio,
		Active:  true,
	}

	if err := h.db.Create(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_create_stylist", "Failed to create stylist.")
		return
	}

	c.JSON(http.StatusCreated, stylist)
}

func (h *StylistHandler) Update(c *gin.Context) {
	stylist, ok := h.findStylist(c)
	if !ok {
		return
	}

	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		stylist.Name = *req.Name
	}
	if req.Bio != nil {
		stylist.Bio = *req.Bio
	}
	if req.Active != nil {
		stylist.Active = *req.Active
	}
	if req.UseOwnHours != nil {
		stylist.UseOwnHours = *req.UseOwnHours
	}

	if err := h.db.Save(stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Failed to update stylist.")
		return
	}

	// UseOwnHours and Active both change the availability snapshot.
	h.settings.Invalidate(c.Request.Context(), stylist.SalonID)

	c.JSON(http.StatusOK, stylist)
}

// ======================================================
// WEEKLY HOURS (PER-STYLIST MODE)
// ======================================================

func (h *StylistHandler) GetHours(c *gin.Context) {
	stylist, ok := h.findStylist(c)
	if !ok {
		return
	}

	var hours []models.StylistHours
	if err := h.db.
		Where("stylist_id = ?", stylist.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_hours", "Failed to load stylist hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *StylistHandler) UpdateHours(c *gin.Context) {
	stylist, ok := h.findStylist(c)
	if !ok {
		return
	}

	var req StylistHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	for _, d := range req.Days {
		if err := validateHoursRange(d.IsOpen, d.OpeningTime, d.ClosingTime); err != nil {
			httperr.BadRequest(c, "invalid_hours", "Stylist hours must be valid HH:MM with opening before closing.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stylist_id = ?", stylist.ID).Delete(&models.StylistHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.StylistHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.StylistHours{
				StylistID:   stylist.ID,
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
		httperr.Internal(c, "failed_to_save_hours", "Failed to save stylist hours.")
		return
	}

	h.settings.Invalidate(c.Request.Context(), stylist.SalonID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// BLOCKED DATES (DAYS OFF)
// ======================================================

func (h *StylistHandler) ListBlockedDates(c *gin.Context) {
	stylist, ok := h.findStylist(c)
	if !ok {
		return
	}

	var dates []models.StylistBlockedDate
	if err := h.db.
		Where("stylist_id = ?", stylist.ID).
		Order("date ASC").
		Find(&dates).Error; err != nil {

		httperr.Internal(c, "failed_to_get_blocked_dates", "Failed to load blocked dates.")
		return
	}

	c.JSON(http.StatusOK, dates)
}

func (h *StylistHandler) AddBlockedDate(c *gin.Context) {
	stylist, ok := h.findStylist(c)
	if !ok {
		return
	}

	var req StylistBlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !clock.ValidDateKey(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	blocked := models.StylistBlockedDate{
		StylistID: stylist.ID,
		Date:      req.Date,
		Reason:    req.Reason,
	}

	// Idempotent: adding the same day off twice is a no-op.
	if err := h.db.
		Where("stylist_id = ? AND date = ?", stylist.ID, req.Date).
		FirstOrCreate(&blocked).Error; err != nil {

		httperr.Internal(c, "failed_to_add_blocked_date", "Failed to add blocked date.")
		return
	}

	h.settings.Invalidate(c.Request.Context(), stylist.SalonID)

	c.JSON(http.StatusOK, blocked)
}

func (h *StylistHandler) RemoveBlockedDate(c *gin.Context) {
	stylist, ok := h.findStylist(c)
	if !ok {
		return
	}

	date := c.Param("date")
	if !clock.ValidDateKey(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	if err := h.db.
		Where("stylist_id = ? AND date = ?", stylist.ID, date).
		Delete(&models.StylistBlockedDate{}).Error; err != nil {

		httperr.Internal(c, "failed_to_remove_blocked_date", "Failed to remove blocked date.")
		return
	}

	h.settings.Invalidate(c.Request.Context(), stylist.SalonID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// PHOTO
// ======================================================

func (h *StylistHandler) UploadPhoto(c *gin.Context) {
	stylist, ok := h.findStylist(c)
	if !ok {
		return
	}

	if h.photos == nil {
		httperr.BadRequest(c, "photos_disabled", "Photo storage is not configured.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}
	defer file.Close()

	url, err := h.photos.UploadStylistPhoto(c.Request.Context(), stylist.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Failed to store photo.")
		return
	}

	stylist.PhotoURL = url
	if err := h.db.Save(stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Failed to save photo URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
