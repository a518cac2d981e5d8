package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const stripeAPIBase = "https://api.stripe.com"

type CheckoutSessionParams struct {
	// AmountMajorUnits is the total in whole currency units; conversion to
	// the provider's minor-unit convention happens here and nowhere else.
	AmountMajorUnits float64
	Currency         string
	CustomerEmail    string
	ProductName      string
	SuccessURL       string
	CancelURL        string
	IdempotencyKey   string
	Metadata         map[string]string
}

type CheckoutSession struct {
	SessionID      string `json:"session_id"`
	CheckoutURL    string `json:"checkout_url"`
	PublishableKey string `json:"publishable_key"`
}

type stripeSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ToMinorUnits converts a major-unit amount to the smallest currency unit.
func ToMinorUnits(amountMajorUnits float64) int64 {
	return int64(math.Round(amountMajorUnits * 100))
}

// VerifyStripeWebhookSignature checks the Stripe-Signature header of a
// webhook delivery: HMAC-SHA256 over "<timestamp>.<payload>" with the
// endpoint signing secret. The header may carry several v1 candidates
// during secret rotation; any one match is enough.
func VerifyStripeWebhookSignature(payload []byte, sigHeader, secret string) bool {
	timestamp, candidates := parseStripeSignatureHeader(sigHeader)
	if timestamp == "" || len(candidates) == 0 {
		return false
	}

	expected := computeStripeWebhookSignature(timestamp, payload, secret)
	for _, candidate := range candidates {
		if hmac.Equal([]byte(expected), []byte(candidate)) {
			return true
		}
	}
	return false
}

func parseStripeSignatureHeader(sigHeader string) (timestamp string, candidates []string) {
	for _, part := range strings.Split(sigHeader, ",") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}
		switch pair[0] {
		case "t":
			timestamp = pair[1]
		case "v1":
			candidates = append(candidates, pair[1])
		}
	}
	return timestamp, candidates
}

func computeStripeWebhookSignature(timestamp string, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func CreateCheckoutSession(params CheckoutSessionParams) (*CheckoutSession, error) {
	secretKey, publishableKey, err := StripeCredentials()
	if err != nil {
		return nil, err
	}

	if params.AmountMajorUnits <= 0 {
		return nil, fmt.Errorf("checkout amount must be positive, got %.2f", params.AmountMajorUnits)
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("customer_email", params.CustomerEmail)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(params.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(ToMinorUnits(params.AmountMajorUnits), 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequest("POST", stripeAPIBase+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout request: %v", err)
	}
	req.SetBasicAuth(secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if params.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", params.IdempotencyKey)
	}

	resp, err := Client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Stripe: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Stripe response: %v", err)
	}

	var session stripeSessionResponse
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Stripe response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Stripe API error: Status %d, Body: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("stripe rejected checkout session: %s", session.Error.Message)
	}

	return &CheckoutSession{
		SessionID:      session.ID,
		CheckoutURL:    session.URL,
		PublishableKey: publishableKey,
	}, nil
}
