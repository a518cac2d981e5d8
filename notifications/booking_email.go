package notifications

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// BookingEmailData carries the fields summarized in the confirmation email.
// Everything except Recipient is optional and falls back to a readable
// default so a partially-filled booking still produces a usable email.
type BookingEmailData struct {
	Recipient       string
	TravelerName    string
	DestinationName string
	Location        string
	TrekDate        string
	Phone           string
	NumberOfPeople  int
	Duration        string
	Difficulty      string
	PricePerPerson  float64
	TotalAmount     float64
	Currency        string
	SpecialRequests string
	ManageURL       string
	Reference       string
}

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1a5d3a;">Your Trek is Booked!</h1>
  <p>Hi {{.TravelerName}},</p>
  <p>We have received your reservation for <b>{{.DestinationName}}</b>{{if .Location}} in {{.Location}}{{end}}. Here is a summary:</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 6px 0;"><b>Booking Reference</b></td><td>{{.Reference}}</td></tr>
    <tr><td style="padding: 6px 0;"><b>Trek Date</b></td><td>{{.TrekDate}}</td></tr>
    <tr><td style="padding: 6px 0;"><b>Travelers</b></td><td>{{.NumberOfPeople}}</td></tr>
    <tr><td style="padding: 6px 0;"><b>Contact Phone</b></td><td>{{.Phone}}</td></tr>
    <tr><td style="padding: 6px 0;"><b>Duration</b></td><td>{{.Duration}}</td></tr>
    <tr><td style="padding: 6px 0;"><b>Difficulty</b></td><td>{{.Difficulty}}</td></tr>
    <tr><td style="padding: 6px 0;"><b>Cost per Person</b></td><td>{{printf "%.2f" .PricePerPerson}} {{.Currency}}</td></tr>
    <tr><td style="padding: 6px 0;"><b>Total</b></td><td><b>{{printf "%.2f" .TotalAmount}} {{.Currency}}</b></td></tr>
  </table>
  {{if .SpecialRequests}}<p><b>Special requests:</b> {{.SpecialRequests}}</p>{{end}}
  <p><a href="{{.ManageURL}}" style="color: #1a5d3a;">Manage your booking</a></p>
  <p>Happy trails,<br/>The Trekmandu Team</p>
</div>`))

// RenderBookingConfirmation validates the payload, applies fallbacks and
// renders the confirmation HTML. A missing recipient is an error before any
// rendering happens.
func RenderBookingConfirmation(data BookingEmailData) (subject string, html string, err error) {
	if data.Recipient == "" {
		return "", "", errors.New("recipient email is required")
	}

	if data.TravelerName == "" {
		data.TravelerName = "Traveler"
	}
	if data.DestinationName == "" {
		data.DestinationName = "your destination"
	}
	if data.TrekDate == "" {
		data.TrekDate = "To be confirmed"
	}
	if data.Duration == "" {
		data.Duration = "5-7 Days"
	}
	if data.Difficulty == "" {
		data.Difficulty = "Moderate"
	}
	if data.Currency == "" {
		data.Currency = "USD"
	}
	if data.NumberOfPeople <= 0 {
		data.NumberOfPeople = 1
	}

	var buf bytes.Buffer
	if err := bookingConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render booking email: %v", err)
	}

	subject = fmt.Sprintf("Booking Received: %s", data.DestinationName)
	return subject, buf.String(), nil
}
