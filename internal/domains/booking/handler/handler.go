package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"karzone-backend/internal/domains/booking/model"
	"karzone-backend/internal/domains/booking/service"
	"karzone-backend/internal/shared/middleware"
	"karzone-backend/internal/shared/response"
	"karzone-backend/pkg/logger"
)

type BookingHandler struct {
	bookingService service.ServiceInterface
}

func NewBookingHandler(bookingService service.ServiceInterface) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking creates a new booking
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ListMyBookings lists the caller's bookings, newest first
// GET /api/v1/bookings/my-bookings
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	resp, err := h.bookingService.ListMyBookings(c.Request.Context(), userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// CancelBooking cancels a booking (terminal, idempotent)
// PUT /api/v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	resp, err := h.bookingService.CancelBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// DeleteBooking permanently removes a cancelled booking
// DELETE /api/v1/bookings/:id
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), userID, bookingID); err != nil {
		h.respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking removed"})
}

// UpdateBooking edits the two mutable contact fields
// PUT /api/v1/bookings/:id
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	var req model.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bookingService.UpdateBooking(c.Request.Context(), userID, bookingID, req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetReceipt streams the payment receipt PDF
// GET /api/v1/bookings/:id/receipt
func (h *BookingHandler) GetReceipt(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking ID")
		return
	}

	pdf, err := h.bookingService.GetReceipt(c.Request.Context(), userID, bookingID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt_%s.pdf"`, bookingID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// respondBookingError maps domain errors to the error taxonomy:
// NotFound 404, Forbidden 403, business-rule rejections 400, validation 400,
// anything unanticipated collapses to a logged 500.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var bookingErr *model.BookingError
	if errors.As(err, &bookingErr) {
		switch bookingErr.Code {
		case model.ErrCodeBookingNotFound, model.ErrCodeCarNotFound:
			response.ErrorResponse(c, http.StatusNotFound, bookingErr.Code, bookingErr.Message)
		case model.ErrCodeForbidden:
			response.ErrorResponse(c, http.StatusForbidden, bookingErr.Code, bookingErr.Message)
		default:
			response.ErrorResponse(c, http.StatusBadRequest, bookingErr.Code, bookingErr.Message)
		}
		return
	}

	if isValidationError(err) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	logger.Error("booking operation failed", err)
	response.InternalServerError(c, "Server error")
}

func isValidationError(err error) bool {
	if _, ok := err.(validation.Errors); ok {
		return true
	}
	_, ok := err.(validation.ErrorObject)
	return ok
}
