package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"inovitaz_backend/internal/logger"
)

// RazorpayGateway talks to the live Razorpay API.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, in CreateOrderInput) (*GatewayOrder, error) {
	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   in.AmountPaise,
		"currency": currency,
		"receipt":  in.Receipt,
	}
	if len(in.Notes) > 0 {
		notes := make(map[string]interface{}, len(in.Notes))
		for k, v := range in.Notes {
			notes[k] = v
		}
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		// Gateway errors are logged in full but surface as a generic
		// failure so provider details never reach the client.
		logger.CtxWithError(ctx, "razorpay create order failed", err, "receipt", in.Receipt)
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	order := &GatewayOrder{
		Currency: currency,
		Receipt:  in.Receipt,
		Amount:   in.AmountPaise,
	}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order create: response missing order id")
	}
	return order, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signatureMatches(g.keySecret, orderID, paymentID, signature)
}

func (g *RazorpayGateway) IsMock() bool {
	return false
}
