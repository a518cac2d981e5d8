package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arjunkoirala/trekmandu/models"
	"github.com/gofiber/fiber/v2"
)

func TestDeriveTotal(t *testing.T) {
	destination := models.Destination{Price: 1000}

	total, err := deriveTotal(destination, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3000 {
		t.Errorf("deriveTotal = %v, want 3000", total)
	}
}

func TestDeriveTotalAcceptsMatchingClientTotal(t *testing.T) {
	destination := models.Destination{Price: 1000}

	clientTotal := 3000.0
	if _, err := deriveTotal(destination, 3, &clientTotal); err != nil {
		t.Errorf("matching client total rejected: %v", err)
	}

	// Within rounding tolerance.
	nearTotal := 3000.005
	if _, err := deriveTotal(destination, 3, &nearTotal); err != nil {
		t.Errorf("client total within tolerance rejected: %v", err)
	}
}

func TestDeriveTotalRejectsMismatchedClientTotal(t *testing.T) {
	destination := models.Destination{Price: 1000}

	clientTotal := 2500.0
	if _, err := deriveTotal(destination, 3, &clientTotal); err == nil {
		t.Fatal("expected rejection of mismatched client total, got nil")
	}
}

// A checkout retry that switches providers must repoint the reused
// payment row, or the provider-scoped lookups will never find it again.
// References from the earlier attempt survive so a late completion of the
// old session still matches.
func TestRetargetPaymentSwitchesProvider(t *testing.T) {
	sessionID := "cs_first_attempt"
	payment := models.Payment{Provider: "stripe", ProviderSessionID: &sessionID}

	retargetPayment(&payment, "razorpay")

	if payment.Provider != "razorpay" {
		t.Errorf("Provider = %q, want %q", payment.Provider, "razorpay")
	}
	if payment.ProviderSessionID == nil || *payment.ProviderSessionID != sessionID {
		t.Error("earlier provider session reference was dropped")
	}
}

// An unauthenticated request must be rejected before any storage access:
// the handlers run here with no database connected at all.
func TestBookingEndpointsRequireIdentity(t *testing.T) {
	app := fiber.New()
	app.Post("/bookings", CreateBooking)
	app.Post("/bookings/checkout", CheckoutBooking)
	app.Get("/bookings/me", GetMyBookings)

	body := `{"destination_id":"0e1f4d37-92c3-4a7f-9a57-30c6aafcb111","traveler_name":"Asha Gurung","traveler_email":"asha@example.com","traveler_phone":"+9779800000000","number_of_people":3,"trek_date":"October 2026"}`

	for _, path := range []string{"/bookings", "/bookings/checkout"} {
		req := httptest.NewRequest("POST", path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request to %s failed: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s without identity: got status %d, want 401", path, resp.StatusCode)
		}
	}

	req := httptest.NewRequest("GET", "/bookings/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("GET /bookings/me without identity: got status %d, want 401", resp.StatusCode)
	}
}
