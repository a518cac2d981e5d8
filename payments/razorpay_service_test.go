package payments

import "testing"

func TestComputeRazorpaySignature(t *testing.T) {
	sig := computeRazorpaySignature("order_abc123", "pay_xyz789", "testsecret")
	if len(sig) != 64 {
		t.Fatalf("expected 64-char hex signature, got %d chars", len(sig))
	}

	// Deterministic for the same inputs.
	if again := computeRazorpaySignature("order_abc123", "pay_xyz789", "testsecret"); again != sig {
		t.Errorf("signature not deterministic: %s vs %s", sig, again)
	}

	// Any input change must change the signature.
	if other := computeRazorpaySignature("order_abc124", "pay_xyz789", "testsecret"); other == sig {
		t.Error("different order id produced identical signature")
	}
	if other := computeRazorpaySignature("order_abc123", "pay_xyz789", "othersecret"); other == sig {
		t.Error("different secret produced identical signature")
	}
}
