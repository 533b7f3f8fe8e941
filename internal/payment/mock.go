package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// MockGateway fabricates gateway responses for environments without
// Razorpay credentials. It enables end-to-end checkout testing, not a
// security boundary.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) CreateOrder(_ context.Context, in CreateOrderInput) (*GatewayOrder, error) {
	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}
	return &GatewayOrder{
		ID:       fmt.Sprintf("order_mock_%d_%s", time.Now().UnixMilli(), randomSuffix(9)),
		Amount:   in.AmountPaise,
		Currency: currency,
		Receipt:  in.Receipt,
		Status:   "created",
	}, nil
}

// VerifySignature always passes in mock mode.
func (g *MockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return true
}

func (g *MockGateway) IsMock() bool {
	return true
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
