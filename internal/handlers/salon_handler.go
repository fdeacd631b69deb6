package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/manapixels/hair-salon-app-sub002/internal/cache"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	"github.com/manapixels/hair-salon-app-sub002/internal/middleware"
	"github.com/manapixels/hair-salon-app-sub002/internal/models"
	"github.com/manapixels/hair-salon-app-sub002/internal/timezone"
)

type SalonHandler struct {
	db       *gorm.DB
	settings *cache.Settings
}

func NewSalonHandler(db *gorm.DB, settings *cache.Settings) *SalonHandler {
	return &SalonHandler{db: db, settings: settings}
}

type UpdateSalonRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	Timezone *string `json:"timezone"`

	PerStylistMode     *bool `json:"per_stylist_mode"`
	SlotGranularityMin *int  `json:"slot_granularity_min"`
	MinAdvanceMinutes  *int  `json:"min_advance_minutes"`
}

func (h *SalonHandler) GetMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Failed to load salon.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "salon_not_found", "Salon not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_salon", "Failed to load salon.")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		salon.Timezone = *req.Timezone
	}

	if req.PerStylistMode != nil {
		salon.PerStylistMode = *req.PerStylistMode
	}

	if req.SlotGranularityMin != nil {
		if *req.SlotGranularityMin <= 0 || *req.SlotGranularityMin > 240 {
			httperr.BadRequest(c, "invalid_slot_granularity", "Slot granularity must be between 1 and 240 minutes.")
			return
		}
		salon.SlotGranularityMin = *req.SlotGranularityMin
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Minimum advance must be zero or positive (minutes).")
			return
		}
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Failed to save salon settings.")
		return
	}

	// Scheduling mode and granularity feed the availability snapshot.
	h.settings.Invalidate(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, salon)
}
