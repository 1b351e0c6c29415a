package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/dto"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/httpresp"
	"github.com/harshitgawli/Turf-Booking/internal/middleware"
	"github.com/harshitgawli/Turf-Booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	generate *booking.GenerateDaySlots
	reserve  *booking.ReserveSlot
	confirm  *booking.ConfirmBooking
	cancel   *booking.CancelBooking
	offline  *booking.OfflineBook
	list     *booking.ListSlots
	mine     *booking.MyBookings
	bookings *booking.ListBookings
}

func NewSlotHandler(
	generate *booking.GenerateDaySlots,
	reserve *booking.ReserveSlot,
	confirm *booking.ConfirmBooking,
	cancel *booking.CancelBooking,
	offline *booking.OfflineBook,
	list *booking.ListSlots,
	mine *booking.MyBookings,
	bookings *booking.ListBookings,
) *SlotHandler {
	return &SlotHandler{
		generate: generate,
		reserve:  reserve,
		confirm:  confirm,
		cancel:   cancel,
		offline:  offline,
		list:     list,
		mine:     mine,
		bookings: bookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type GenerateDayRequest struct {
	Date string `json:"date" binding:"required"`
}

type OfflineBookRequest struct {
	Name   string `json:"name" binding:"required"`
	Mobile string `json:"mobile" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *SlotHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		Date:   c.Query("date"),
		Status: domain.Status(c.Query("status")),
	}

	slots, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// USER
// ======================================================

func (h *SlotHandler) Reserve(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	updated, code, err := h.reserve.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":      "Slot reserved. Quote the request code to confirm your booking.",
		"slot":         updated,
		"request_code": code,
	})
}

func (h *SlotHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	slots, err := h.mine.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// ADMIN
// ======================================================

func (h *SlotHandler) GenerateDay(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req GenerateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date is required.")
		return
	}

	slots, err := h.generate.Execute(c.Request.Context(), adminID, req.Date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Day slots created",
		"date":    req.Date,
		"slots":   slots,
	})
}

func (h *SlotHandler) Confirm(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	updated, err := h.confirm.Execute(c.Request.Context(), adminID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":        "Booking confirmed",
		"slot":           updated,
		"booking_number": updated.BookingNumber,
	})
}

func (h *SlotHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	updated, err := h.cancel.Execute(c.Request.Context(), adminID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Booking cancelled, slot is available again",
		"slot":    updated,
	})
}

func (h *SlotHandler) OfflineBook(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := slotIDParam(c)
	if !ok {
		return
	}

	var req OfflineBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_customer", "Customer name and mobile are required.")
		return
	}

	updated, err := h.offline.Execute(c.Request.Context(), adminID, booking.OfflineBookInput{
		SlotID: id,
		Name:   req.Name,
		Mobile: req.Mobile,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":        "Offline booking recorded",
		"slot":           updated,
		"booking_number": updated.BookingNumber,
	})
}

func (h *SlotHandler) AllBookings(c *gin.Context) {
	h.listBookings(c, false)
}

func (h *SlotHandler) PendingBookings(c *gin.Context) {
	h.listBookings(c, true)
}

func (h *SlotHandler) listBookings(c *gin.Context, pendingOnly bool) {
	slots, err := h.bookings.Execute(c.Request.Context(), pendingOnly)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	out := make([]dto.BookingDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.ToBookingDTO(s))
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func slotIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Slot id must be numeric.")
		return 0, false
	}
	return uint(id), true
}
