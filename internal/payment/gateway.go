package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway creates orders at the external payment processor. The order
// object is returned as the gateway sends it.
type Gateway interface {
	CreateOrder(amountPaise int64, currency, receipt string) (map[string]any, error)
}

// RazorpayGateway wraps the Razorpay SDK client. One instance is built
// at startup and shared across requests.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		secret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(amountPaise int64, currency, receipt string) (map[string]any, error) {
	data := map[string]any{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	return g.client.Order.Create(data, nil)
}

// Secret exposes the key secret for signature verification.
func (g *RazorpayGateway) Secret() string { return g.secret }

// VerifySignature checks the checkout callback signature: HMAC-SHA256 of
// "<order_id>|<payment_id>" keyed with the API secret, hex encoded.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
