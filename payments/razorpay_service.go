package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

const razorpayAPIBase = "https://api.razorpay.com"

type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateRazorpayOrder creates an order for the given major-unit amount.
// Razorpay expects the amount in the smallest unit (paise for INR).
func CreateRazorpayOrder(amountMajorUnits float64, currency string, receipt string) (*RazorpayOrder, error) {
	keyID, keySecret, err := RazorpayCredentials()
	if err != nil {
		return nil, err
	}

	if amountMajorUnits <= 0 {
		return nil, fmt.Errorf("order amount must be positive, got %.2f", amountMajorUnits)
	}

	payload := map[string]interface{}{
		"amount":   ToMinorUnits(amountMajorUnits),
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %v", err)
	}

	req, err := http.NewRequest("POST", razorpayAPIBase+"/v1/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %v", err)
	}
	req.SetBasicAuth(keyID, keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := Client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("Razorpay API error: Status %d, Body: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("razorpay rejected order: %s", string(respBody))
	}

	var order RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order response: %v", err)
	}
	return &order, nil
}

// VerifyRazorpaySignature checks the HMAC-SHA256 signature Razorpay sends
// back after a successful checkout.
func VerifyRazorpaySignature(orderID, paymentID, signature string) (bool, error) {
	_, keySecret, err := RazorpayCredentials()
	if err != nil {
		return false, err
	}

	expected := computeRazorpaySignature(orderID, paymentID, keySecret)
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

func computeRazorpaySignature(orderID, paymentID, keySecret string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
