package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"karzone-backend/internal/shared/middleware"
	"karzone-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins, c.Config.App.Environment),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupCarRoutes(v1, c)
		setupBookingRoutes(v1, c)
		setupReviewRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", c.UserHandler.Signup)
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.GetMe)
		auth.GET("/users", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.GetUsers)
	}
}

// ========================================
// CAR ROUTES
// ========================================
func setupCarRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cars := v1.Group("/cars")
	{
		cars.GET("", c.CarHandler.ListCars)
		cars.GET("/:id", c.CarHandler.GetCar)
	}
}

// ========================================
// BOOKING ROUTES
// ========================================
func setupBookingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	bookings := v1.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		bookings.POST("", c.BookingHandler.CreateBooking)
		bookings.GET("/my-bookings", c.BookingHandler.ListMyBookings)
		bookings.PUT("/:id", c.BookingHandler.UpdateBooking)
		bookings.PUT("/:id/cancel", c.BookingHandler.CancelBooking)
		bookings.DELETE("/:id", c.BookingHandler.DeleteBooking)
		bookings.GET("/:id/receipt", c.BookingHandler.GetReceipt)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Public review routes
	reviews := v1.Group("/reviews")
	{
		reviews.GET("/car/:carId", c.ReviewHandler.GetCarReviews)
		reviews.GET("/car/:carId/summary", c.ReviewHandler.GetCarRatingSummary)
	}

	// User review routes
	userReviews := v1.Group("/reviews")
	userReviews.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		userReviews.POST("", c.ReviewHandler.CreateReview)
		userReviews.GET("/my-reviews", c.ReviewHandler.GetMyReviews)
		userReviews.PUT("/:id", c.ReviewHandler.UpdateReview)
		userReviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
