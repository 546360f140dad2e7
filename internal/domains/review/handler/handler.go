package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"karzone-backend/internal/domains/review/model"
	"karzone-backend/internal/domains/review/service"
	"karzone-backend/internal/shared/middleware"
	"karzone-backend/internal/shared/response"
	"karzone-backend/pkg/logger"
)

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview submits a review for a completed booking
// POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// GetCarReviews lists all reviews for a car, newest first. Public.
// GET /api/v1/reviews/car/:carId
func (h *ReviewHandler) GetCarReviews(c *gin.Context) {
	carID, err := strconv.Atoi(c.Param("carId"))
	if err != nil {
		response.BadRequest(c, "Invalid car ID")
		return
	}

	reviews, err := h.reviewService.GetCarReviews(c.Request.Context(), carID)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// GetCarRatingSummary returns the cached average rating and count. Public.
// GET /api/v1/reviews/car/:carId/summary
func (h *ReviewHandler) GetCarRatingSummary(c *gin.Context) {
	carID, err := strconv.Atoi(c.Param("carId"))
	if err != nil {
		response.BadRequest(c, "Invalid car ID")
		return
	}

	summary, err := h.reviewService.GetCarRatingSummary(c.Request.Context(), carID)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// GetMyReviews lists the caller's reviews, newest first
// GET /api/v1/reviews/my-reviews
func (h *ReviewHandler) GetMyReviews(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	reviews, err := h.reviewService.GetMyReviews(c.Request.Context(), userID)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// UpdateReview edits the caller's own review
// PUT /api/v1/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), userID, reviewID, req)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, review)
}

// DeleteReview removes the caller's own review
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		h.respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

// respondReviewError maps domain errors onto HTTP: missing resources 404,
// ownership failures 403, a duplicate review 409, business-rule rejections
// and validation 400, everything else a logged 500.
func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		switch reviewErr.Code {
		case model.ErrCodeReviewNotFound, model.ErrCodeBookingNotFound:
			response.ErrorResponse(c, http.StatusNotFound, reviewErr.Code, reviewErr.Message)
		case model.ErrCodeForbidden:
			response.ErrorResponse(c, http.StatusForbidden, reviewErr.Code, reviewErr.Message)
		case model.ErrCodeAlreadyReviewed:
			response.ErrorResponse(c, http.StatusConflict, reviewErr.Code, reviewErr.Message)
		default:
			response.ErrorResponse(c, http.StatusBadRequest, reviewErr.Code, reviewErr.Message)
		}
		return
	}

	if isValidationError(err) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	logger.Error("review operation failed", err)
	response.InternalServerError(c, "Server error")
}

func isValidationError(err error) bool {
	if _, ok := err.(validation.Errors); ok {
		return true
	}
	_, ok := err.(validation.ErrorObject)
	return ok
}
