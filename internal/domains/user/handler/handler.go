package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"karzone-backend/internal/domains/user/model"
	"karzone-backend/internal/domains/user/service"
	"karzone-backend/internal/shared/middleware"
	"karzone-backend/internal/shared/response"
	"karzone-backend/pkg/logger"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Signup registers a new user
// POST /api/v1/auth/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case err == model.ErrEmailAlreadyExists:
			response.Conflict(c, "Email already registered")
		case isValidationError(err):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		default:
			logger.Error("signup failed", err)
			response.InternalServerError(c, "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login authenticates a user
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case err == model.ErrInvalidCredentials:
			response.Unauthorized(c, "Invalid email or password")
		case isValidationError(err):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		default:
			logger.Error("login failed", err)
			response.InternalServerError(c, "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetMe returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	u, err := h.userService.GetMe(c.Request.Context(), userID)
	if err != nil {
		if err == model.ErrUserNotFound {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error("get me failed", err)
		response.InternalServerError(c, "Server error")
		return
	}

	response.Success(c, http.StatusOK, u)
}

// GetUsers lists all registered users
// GET /api/v1/auth/users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("list users failed", err)
		response.InternalServerError(c, "Server error")
		return
	}

	response.Success(c, http.StatusOK, users)
}

func isValidationError(err error) bool {
	if _, ok := err.(validation.Errors); ok {
		return true
	}
	_, ok := err.(validation.ErrorObject)
	return ok
}
