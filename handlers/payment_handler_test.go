package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

const testWebhookSecret = "whsec_handler_test"

func useTestWebhookSecret(t *testing.T) {
	t.Helper()
	orig := stripeWebhookSecret
	stripeWebhookSecret = func() (string, error) { return testWebhookSecret, nil }
	t.Cleanup(func() { stripeWebhookSecret = orig })
}

func signWebhookBody(body string) string {
	timestamp := "1756700000"
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(timestamp + "." + body))
	return "t=" + timestamp + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

// A completed-session event whose signature does not check out must be
// rejected before any storage access: the handler runs here with no
// database connected at all.
func TestStripeWebhookRejectsUnsignedEvent(t *testing.T) {
	useTestWebhookSecret(t)
	app := fiber.New()
	app.Post("/payments/webhook", HandleStripeWebhook)

	body := `{"type":"checkout.session.completed","data":{"object":{"id":"cs_test_forged"}}}`

	cases := []struct {
		name      string
		signature string
	}{
		{"no header", ""},
		{"garbage header", "t=1756700000,v1=deadbeef"},
		{"signature over a different body", signWebhookBody(`{"type":"checkout.session.completed"}`)},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/payments/webhook", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if tc.signature != "" {
			req.Header.Set("Stripe-Signature", tc.signature)
		}

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("%s: got status %d, want 400", tc.name, resp.StatusCode)
		}
	}
}

// Events other than checkout.session.completed are acknowledged without
// touching storage.
func TestStripeWebhookIgnoresOtherEvents(t *testing.T) {
	useTestWebhookSecret(t)
	app := fiber.New()
	app.Post("/payments/webhook", HandleStripeWebhook)

	body := `{"type":"payment_intent.created","data":{"object":{"id":"pi_123"}}}`
	req := httptest.NewRequest("POST", "/payments/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signWebhookBody(body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("got status %d, want 200", resp.StatusCode)
	}
}

func TestStripeWebhookRejectsMalformedPayload(t *testing.T) {
	useTestWebhookSecret(t)
	app := fiber.New()
	app.Post("/payments/webhook", HandleStripeWebhook)

	body := "not json"
	req := httptest.NewRequest("POST", "/payments/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signWebhookBody(body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("got status %d, want 400", resp.StatusCode)
	}
}
