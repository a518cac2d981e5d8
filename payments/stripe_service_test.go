package payments

import "testing"

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		major float64
		minor int64
	}{
		{3000, 300000},
		{1000, 100000},
		{49.99, 4999},
		{0.01, 1},
		{10.005, 1001},
	}

	for _, tc := range cases {
		if got := ToMinorUnits(tc.major); got != tc.minor {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tc.major, got, tc.minor)
		}
	}
}

func TestVerifyStripeWebhookSignature(t *testing.T) {
	secret := "whsec_test_secret"
	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_123"}}}`)
	sig := computeStripeWebhookSignature("1756700000", payload, secret)

	header := "t=1756700000,v1=" + sig
	if !VerifyStripeWebhookSignature(payload, header, secret) {
		t.Error("valid signature rejected")
	}

	// Extra candidates from secret rotation: any one match is enough.
	rotated := "t=1756700000,v1=deadbeef,v1=" + sig
	if !VerifyStripeWebhookSignature(payload, rotated, secret) {
		t.Error("valid signature among rotation candidates rejected")
	}

	if VerifyStripeWebhookSignature([]byte(`{"type":"tampered"}`), header, secret) {
		t.Error("signature accepted for a payload it does not cover")
	}
	if VerifyStripeWebhookSignature(payload, "t=1756700001,v1="+sig, secret) {
		t.Error("signature accepted under a different timestamp")
	}
	if VerifyStripeWebhookSignature(payload, header, "whsec_other") {
		t.Error("signature accepted under the wrong secret")
	}
	if VerifyStripeWebhookSignature(payload, "", secret) {
		t.Error("empty signature header accepted")
	}
	if VerifyStripeWebhookSignature(payload, "t=1756700000", secret) {
		t.Error("header without any v1 candidate accepted")
	}
}

func TestCreateCheckoutSessionMissingCredentials(t *testing.T) {
	// No Stripe env vars set: the call must fail with a configuration
	// error before any provider request is attempted.
	_, err := CreateCheckoutSession(CheckoutSessionParams{
		AmountMajorUnits: 3000,
		Currency:         "USD",
		CustomerEmail:    "traveler@example.com",
	})
	if err == nil {
		t.Fatal("expected configuration error with missing Stripe credentials, got nil")
	}
}

func TestCreateRazorpayOrderMissingCredentials(t *testing.T) {
	_, err := CreateRazorpayOrder(3000, "INR", "TRK-TEST01")
	if err == nil {
		t.Fatal("expected configuration error with missing Razorpay credentials, got nil")
	}
}
