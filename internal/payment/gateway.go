package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// GatewayOrder is an order object in the payment processor's system,
// distinct from the local orders row.
type GatewayOrder struct {
	ID       string
	Amount   int64 // paise
	Currency string
	Receipt  string
	Status   string
}

type CreateOrderInput struct {
	AmountPaise int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// Gateway abstracts the payment processor. The implementation is picked
// once at startup: RazorpayGateway when credentials are configured,
// MockGateway otherwise.
type Gateway interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*GatewayOrder, error)
	// VerifySignature is the sole authenticity check for payment
	// completion; it must pass before an order is marked paid.
	VerifySignature(orderID, paymentID, signature string) bool
	IsMock() bool
}

// ComputeSignature returns the hex HMAC-SHA256 of "orderID|paymentID"
// keyed with the gateway secret, the scheme Razorpay uses for checkout
// callbacks.
func ComputeSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func signatureMatches(secret, orderID, paymentID, signature string) bool {
	expected := ComputeSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
