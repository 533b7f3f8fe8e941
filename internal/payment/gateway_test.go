package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature_Deterministic(t *testing.T) {
	sig1 := ComputeSignature("secret", "order_abc", "pay_xyz")
	sig2 := ComputeSignature("secret", "order_abc", "pay_xyz")

	assert.Equal(t, sig1, sig2)
	assert.Len(t, sig1, 64, "hex SHA-256 output")
}

func TestComputeSignature_ChangesWithInputs(t *testing.T) {
	base := ComputeSignature("secret", "order_abc", "pay_xyz")

	assert.NotEqual(t, base, ComputeSignature("other", "order_abc", "pay_xyz"))
	assert.NotEqual(t, base, ComputeSignature("secret", "order_abd", "pay_xyz"))
	assert.NotEqual(t, base, ComputeSignature("secret", "order_abc", "pay_xyw"))
}

func TestSignatureMatches(t *testing.T) {
	sig := ComputeSignature("secret", "order_abc", "pay_xyz")

	assert.True(t, signatureMatches("secret", "order_abc", "pay_xyz", sig))
	assert.False(t, signatureMatches("secret", "order_abc", "pay_xyz", sig+"0"))
	assert.False(t, signatureMatches("secret", "order_abc", "pay_xyz", ""))
}

func TestMockGateway_CreateOrder(t *testing.T) {
	g := NewMockGateway()

	order, err := g.CreateOrder(context.Background(), CreateOrderInput{
		AmountPaise: 49900,
		Receipt:     "order_p1_123",
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "order_mock_"))
	assert.Equal(t, int64(49900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "created", order.Status)
	assert.Equal(t, "order_p1_123", order.Receipt)
}

func TestMockGateway_UniqueOrderIDs(t *testing.T) {
	g := NewMockGateway()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		order, err := g.CreateOrder(context.Background(), CreateOrderInput{AmountPaise: 100})
		assert.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate mock order id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestMockGateway_VerifyAlwaysPasses(t *testing.T) {
	g := NewMockGateway()

	assert.True(t, g.VerifySignature("any", "thing", "at-all"))
	assert.True(t, g.IsMock())
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	g := &RazorpayGateway{keySecret: "test_secret"}

	valid := ComputeSignature("test_secret", "order_live_1", "pay_live_1")
	assert.True(t, g.VerifySignature("order_live_1", "pay_live_1", valid))
	assert.False(t, g.VerifySignature("order_live_1", "pay_live_1", "tampered"))
	assert.False(t, g.IsMock())
}
