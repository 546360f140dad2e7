package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"karzone-backend/internal/domains/catalog/model"
	"karzone-backend/internal/domains/catalog/repository"
	"karzone-backend/internal/shared/response"
)

type CarHandler struct {
	cars repository.CarRepository
}

func NewCarHandler(cars repository.CarRepository) *CarHandler {
	return &CarHandler{cars: cars}
}

// ListCars lists the catalog
// GET /api/v1/cars
func (h *CarHandler) ListCars(c *gin.Context) {
	response.Success(c, http.StatusOK, h.cars.List())
}

// GetCar gets one car by id
// GET /api/v1/cars/:id
func (h *CarHandler) GetCar(c *gin.Context) {
	carID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid car ID")
		return
	}

	car, err := h.cars.GetByID(carID)
	if err != nil {
		if err == model.ErrCarNotFound {
			response.NotFound(c, "Car not found")
			return
		}
		response.InternalServerError(c, "Failed to load car")
		return
	}

	response.Success(c, http.StatusOK, car)
}
