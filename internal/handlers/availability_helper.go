package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/manapixels/hair-salon-app-sub002/internal/dto"
	"github.com/manapixels/hair-salon-app-sub002/internal/httperr"
	ucAppointment "github.com/manapixels/hair-salon-app-sub002/internal/usecase/appointment"
)

// runAvailability backs both the staff and public availability endpoints:
// same query contract (date, service_ids, optional stylist_id), same error
// mapping.
func runAvailability(
	c *gin.Context,
	uc *ucAppointment.GetAvailability,
	salonID uint,
) (*dto.AvailabilityDTO, bool) {

	dateStr := c.Query("date")
	serviceIDsStr := c.Query("service_ids")

	if dateStr == "" || serviceIDsStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and services are required.")
		return nil, false
	}

	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "Service ids must be a comma-separated list of integers.")
		return nil, false
	}

	stylistID, ok := optionalStylistID(c)
	if !ok {
		return nil, false
	}

	out, err := uc.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		SalonID:    salonID,
		StylistID:  stylistID,
		ServiceIDs: serviceIDs,
		Date:       dateStr,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "One or more services were not found.")
		case httperr.IsBusiness(err, "stylist_not_found"):
			httperr.BadRequest(c, "stylist_not_found", "Stylist not found.")
		case httperr.IsBusiness(err, "invalid_service_duration"),
			httperr.IsBusiness(err, "invalid_processing_window"):
			httperr.BadRequest(c, "invalid_service", "Selected services are misconfigured.")
		default:
			httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		}
		return nil, false
	}

	return out, true
}

func parseServiceIDs(raw string) ([]uint, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}

	if len(ids) == 0 {
		return nil, strconv.ErrSyntax
	}
	return ids, nil
}
