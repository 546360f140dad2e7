package main

import (
	"github.com/hibiken/asynq"

	"karzone-backend/internal/domains/booking/job"
	"karzone-backend/internal/shared"
	"karzone-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	confirmationEmail *job.ConfirmationEmailHandler
	completePast      *job.CompletePastBookingsHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		confirmationEmail: job.NewConfirmationEmailHandler(c.BookingRepo, c.Email),
		completePast:      job.NewCompletePastBookingsHandler(c.BookingRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeBookingConfirmationEmail, h.confirmationEmail.ProcessTask)
	mux.HandleFunc(shared.TypeCompletePastBookings, h.completePast.ProcessTask)
}
