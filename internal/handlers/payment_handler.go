package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/harshitgawli/Turf-Booking/internal/httperr"
	"github.com/harshitgawli/Turf-Booking/internal/httpresp"
	"github.com/harshitgawli/Turf-Booking/internal/middleware"
	"github.com/harshitgawli/Turf-Booking/internal/usecase/payment"
)

type PaymentHandler struct {
	createOrder *payment.CreateOrder
	verify      *payment.VerifyAndConfirm
}

func NewPaymentHandler(
	createOrder *payment.CreateOrder,
	verify *payment.VerifyAndConfirm,
) *PaymentHandler {
	return &PaymentHandler{
		createOrder: createOrder,
		verify:      verify,
	}
}

// --------- Requests ---------

type CreateOrderRequest struct {
	SlotID uint `json:"slot_id" binding:"required"`
}

type VerifyPaymentRequest struct {
	SlotID    uint   `json:"slot_id" binding:"required"`
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// --------- Handlers ---------

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "slot_id is required.")
		return
	}

	order, err := h.createOrder.Execute(c.Request.Context(), userID, req.SlotID)
	if err != nil {
		if httperr.BusinessCode(err) != "" {
			writeBookingError(c, err)
			return
		}
		httperr.Internal(c, "payment_provider_error", "Could not create payment order.")
		return
	}

	httpresp.Created(c, order)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "order_id, payment_id, signature and slot_id are required.")
		return
	}

	updated, err := h.verify.Execute(c.Request.Context(), userID, payment.VerifyInput{
		SlotID:    req.SlotID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":        "Payment verified, booking confirmed",
		"slot":           updated,
		"booking_number": updated.BookingNumber,
	})
}
