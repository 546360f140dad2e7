package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"karzone-backend/internal/domains/booking/job"
	"karzone-backend/internal/domains/booking/model"
	"karzone-backend/internal/domains/booking/repository"
	catalogmodel "karzone-backend/internal/domains/catalog/model"
	"karzone-backend/internal/shared"
	"karzone-backend/pkg/logger"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	catalog     CarCatalog
	enqueuer    TaskEnqueuer // nil disables background work (tests, worker-less deploys)
	receipts    ReceiptGenerator
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	catalog CarCatalog,
	enqueuer TaskEnqueuer,
	receipts ReceiptGenerator,
) ServiceInterface {
	return &bookingService{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		enqueuer:    enqueuer,
		receipts:    receipts,
		now:         time.Now,
	}
}

// =====================================================
// CREATE BOOKING
// =====================================================

func (s *bookingService) CreateBooking(
	ctx context.Context,
	userID uuid.UUID,
	req model.CreateBookingRequest,
) (*model.BookingResponse, error) {
	// Step 1: Validate request field by field
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Parse and order-check the date range
	pickupDate, err := model.ParseDate(req.PickupDate)
	if err != nil {
		return nil, model.NewInvalidDatesError()
	}
	returnDate, err := model.ParseDate(req.ReturnDate)
	if err != nil {
		return nil, model.NewInvalidDatesError()
	}
	if returnDate.Before(pickupDate) {
		return nil, model.NewInvalidDatesError()
	}

	// Step 3: Resolve the car against the catalog
	car, err := s.catalog.GetByID(req.CarID)
	if err != nil {
		if err == catalogmodel.ErrCarNotFound {
			return nil, model.NewCarNotFoundError()
		}
		return nil, fmt.Errorf("resolve car: %w", err)
	}

	// Step 4: Recompute pricing server-side; the client totals are not trusted
	totalDays := model.CalculateTotalDays(pickupDate, returnDate)
	totalPrice := model.CalculateTotalPrice(car.PricePerDay, totalDays)
	if req.TotalDays != totalDays || !req.TotalPrice.Equal(totalPrice) {
		return nil, model.NewPriceMismatchError(totalDays, totalPrice.StringFixed(2))
	}

	// Step 5: Build the booking; car details snapshot from the catalog record
	booking := &model.Booking{
		ID:             uuid.New(),
		UserID:         userID,
		CarID:          car.ID,
		CarName:        car.Name,
		CarType:        car.Type,
		CarImage:       car.Image,
		PickupDate:     pickupDate,
		ReturnDate:     returnDate,
		PickupLocation: req.PickupLocation,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		TotalDays:      totalDays,
		TotalPrice:     totalPrice,
		Status:         model.StatusConfirmed,
		PaymentMethod:  model.PaymentMethod(req.PaymentMethod),
		TransactionID:  req.TransactionID,
		CreatedAt:      s.now(),
	}

	// Step 6: Persist
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Step 7: Queue the confirmation email (best effort)
	s.enqueueConfirmationEmail(ctx, booking.ID)

	resp := model.NewBookingResponse(booking, s.now())
	return &resp, nil
}

func (s *bookingService) enqueueConfirmationEmail(ctx context.Context, bookingID uuid.UUID) {
	if s.enqueuer == nil {
		return
	}

	task, err := job.NewConfirmationEmailTask(bookingID)
	if err != nil {
		logger.Error("build confirmation email task", err)
		return
	}

	_, err = s.enqueuer.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueBooking),
		asynq.MaxRetry(3),
	)
	if err != nil {
		// The booking is already persisted; a lost mail is not a failure
		logger.Error("enqueue confirmation email", err)
	}
}

// =====================================================
// LIST MY BOOKINGS
// =====================================================

func (s *bookingService) ListMyBookings(ctx context.Context, userID uuid.UUID) ([]model.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	now := s.now()
	responses := make([]model.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, model.NewBookingResponse(b, now))
	}

	return responses, nil
}

// =====================================================
// CANCEL BOOKING
// =====================================================

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*model.BookingResponse, error) {
	// Step 1: Load and check ownership
	booking, err := s.getOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	// Step 2: Cancelling twice is an explicit no-op; cancelled is terminal
	if booking.Status == model.StatusCancelled {
		resp := model.NewBookingResponse(booking, s.now())
		return &resp, nil
	}

	// Step 3: Persist the one-way transition
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, model.StatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = model.StatusCancelled

	resp := model.NewBookingResponse(booking, s.now())
	return &resp, nil
}

// =====================================================
// DELETE BOOKING
// =====================================================

func (s *bookingService) DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := s.getOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	// Hard rule: a booking must be cancelled before it can be removed
	if booking.Status != model.StatusCancelled {
		return model.NewNotCancelledError()
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return nil
}

// =====================================================
// UPDATE BOOKING
// =====================================================

func (s *bookingService) UpdateBooking(
	ctx context.Context,
	userID, bookingID uuid.UUID,
	req model.UpdateBookingRequest,
) (*model.BookingResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load and check ownership
	booking, err := s.getOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	// Step 3: Apply the two mutable fields; everything else stays frozen
	if req.PickupLocation != nil {
		booking.PickupLocation = *req.PickupLocation
	}
	if req.Phone != nil {
		booking.Phone = *req.Phone
	}

	// Step 4: Persist
	if err := s.bookingRepo.UpdateContact(ctx, bookingID, booking.PickupLocation, booking.Phone); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	resp := model.NewBookingResponse(booking, s.now())
	return &resp, nil
}

// =====================================================
// RECEIPT
// =====================================================

func (s *bookingService) GetReceipt(ctx context.Context, userID, bookingID uuid.UUID) ([]byte, error) {
	booking, err := s.getOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	pdf, err := s.receipts.Generate(booking)
	if err != nil {
		return nil, fmt.Errorf("generate receipt: %w", err)
	}

	return pdf, nil
}

// getOwnedBooking loads a booking and enforces the ownership discipline
// shared by every mutating operation.
func (s *bookingService) getOwnedBooking(ctx context.Context, userID, bookingID uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if err == model.ErrBookingNotFound {
			return nil, model.NewBookingNotFoundError()
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.IsOwnedBy(userID) {
		return nil, model.NewForbiddenError()
	}

	return booking, nil
}
