package notifications

import (
	"strings"
	"testing"
)

func TestRenderBookingConfirmationRequiresRecipient(t *testing.T) {
	_, _, err := RenderBookingConfirmation(BookingEmailData{
		TravelerName:    "Asha",
		DestinationName: "Annapurna Base Camp",
	})
	if err == nil {
		t.Fatal("expected error for missing recipient, got nil")
	}
	if err.Error() != "recipient email is required" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestRenderBookingConfirmationFallbacks(t *testing.T) {
	subject, html, err := RenderBookingConfirmation(BookingEmailData{
		Recipient: "traveler@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, "Traveler") {
		t.Error("expected fallback traveler name in email body")
	}
	if !strings.Contains(html, "5-7 Days") {
		t.Error("expected fallback duration in email body")
	}
	if !strings.Contains(subject, "your destination") {
		t.Errorf("expected fallback destination in subject, got %q", subject)
	}
}

func TestRenderBookingConfirmationFullPayload(t *testing.T) {
	subject, html, err := RenderBookingConfirmation(BookingEmailData{
		Recipient:       "asha@example.com",
		TravelerName:    "Asha Gurung",
		DestinationName: "Everest Base Camp",
		Location:        "Khumbu, Nepal",
		TrekDate:        "October 2026",
		Phone:           "+977-9800000000",
		NumberOfPeople:  3,
		Duration:        "14 Days",
		Difficulty:      "challenging",
		PricePerPerson:  1000,
		TotalAmount:     3000,
		Currency:        "USD",
		SpecialRequests: "Vegetarian meals",
		ManageURL:       "https://trekmandu.example/bookings/abc",
		Reference:       "TRK-8A2C9F",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if subject != "Booking Received: Everest Base Camp" {
		t.Errorf("unexpected subject: %q", subject)
	}
	for _, want := range []string{"Everest Base Camp", "TRK-8A2C9F", "3000.00", "1000.00", "Vegetarian meals", "October 2026"} {
		if !strings.Contains(html, want) {
			t.Errorf("email body missing %q", want)
		}
	}
}
