package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harshitgawli/Turf-Booking/internal/httperr"
)

// writeBookingError maps business codes from the booking core onto the HTTP
// error surface. Anything unrecognised is an internal failure.
func writeBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "slot_not_found":
		httperr.NotFound(c, "slot_not_found", "Slot not found.")
	case "slot_conflict":
		httperr.Conflict(c, "slot_conflict", "Slot is not in the required state.")
	case "day_already_generated":
		httperr.Conflict(c, "day_already_generated", "Slots for this date already exist.")
	case "slot_already_available":
		httperr.BadRequest(c, "slot_already_available", "Slot is already available.")
	case "not_slot_holder":
		httperr.Forbidden(c, "not_slot_holder", "Slot is reserved by another user.")
	case "invalid_payment_signature":
		httperr.Forbidden(c, "invalid_payment_signature", "Payment verification failed.")
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
	case "invalid_status_filter":
		httperr.BadRequest(c, "invalid_status_filter", "Unknown status filter.")
	case "missing_customer":
		httperr.BadRequest(c, "missing_customer", "Customer name and mobile are required.")
	case "invalid_image":
		httperr.BadRequest(c, "invalid_image", "Unsupported or corrupt image.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
