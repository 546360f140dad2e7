package email

import (
	"context"
	"fmt"
	"net/smtp"
)

// BookingConfirmationData carries everything the confirmation mail renders.
type BookingConfirmationData struct {
	Email          string
	FullName       string
	CarName        string
	PickupDate     string
	ReturnDate     string
	PickupLocation string
	TotalDays      int
	TotalPrice     string
	TransactionID  string
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, data BookingConfirmationData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendBookingConfirmation(ctx context.Context, data BookingConfirmationData) error {
	subject := "Your KarZone booking is confirmed"
	body := fmt.Sprintf(`Hi %s,

Your booking is confirmed. Here are the details:

  Car:             %s
  Pickup:          %s at %s
  Return:          %s
  Duration:        %d day(s)
  Total:           INR %s
  Transaction ID:  %s

You can manage this booking from the "My Bookings" page.

Safe travels,
The KarZone team`,
		data.FullName,
		data.CarName,
		data.PickupDate, data.PickupLocation,
		data.ReturnDate,
		data.TotalDays,
		data.TotalPrice,
		data.TransactionID,
	)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))
	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg)
}
