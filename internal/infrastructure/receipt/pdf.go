package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"karzone-backend/internal/domains/booking/model"
)

// PDFGenerator renders a payment receipt for a booking.
type PDFGenerator struct {
	companyName string
}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{companyName: "KarZone Car Rentals"}
}

// Generate renders the receipt and returns the PDF bytes.
func (g *PDFGenerator) Generate(booking *model.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, g.companyName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(190, 8, "Booking Payment Receipt")
	pdf.Ln(12)

	// Receipt details
	pdf.SetFont("Arial", "", 12)
	rows := [][2]string{
		{"Booking ID", booking.ID.String()},
		{"Transaction ID", booking.TransactionID},
		{"Payment Method", string(booking.PaymentMethod)},
		{"Booked On", booking.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Customer", booking.FullName},
		{"Car", fmt.Sprintf("%s (%s)", booking.CarName, booking.CarType)},
		{"Pickup", fmt.Sprintf("%s, %s", booking.PickupDate.Format("2006-01-02"), booking.PickupLocation)},
		{"Return", booking.ReturnDate.Format("2006-01-02")},
		{"Duration", fmt.Sprintf("%d day(s)", booking.TotalDays)},
		{"Amount Paid", fmt.Sprintf("INR %s", booking.TotalPrice.StringFixed(2))},
	}

	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(60, 10, row[0])
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(130, 10, row[1])
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(190, 8, "This receipt was generated for a simulated payment. No real charge was made.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
