package services_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/stretchr/testify/assert"
)

// ---- fake gateway ----

type fakeGateway struct {
	resp     map[string]interface{}
	err      error
	calls    int
	lastData map[string]interface{}
}

func (g *fakeGateway) CreateOrder(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	g.calls++
	g.lastData = data
	return g.resp, g.err
}

// ---- tests ----

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{0.1, 10},
		{10.99, 1099},
		{499.50, 49950},
		{1200, 120000},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, services.ToMinorUnits(tc.price), "price %v", tc.price)
	}
}

func TestCreateOrder_Success(t *testing.T) {
	gw := &fakeGateway{resp: map[string]interface{}{"id": "order_xyz", "status": "created"}}
	svc := services.NewPaymentService(gw, "testsecret", "INR")

	order, err := svc.CreateOrder(context.Background(), 499.50)
	assert.NoError(t, err)
	assert.Equal(t, "order_xyz", order.ID)
	assert.Equal(t, int64(49950), order.AmountMinorUnits)
	assert.Equal(t, "INR", order.CurrencyCode)
	assert.Equal(t, "created", order.Status)
	assert.True(t, strings.HasPrefix(order.ReceiptTag, "receipt_"))

	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, int64(49950), gw.lastData["amount"])
	assert.Equal(t, "INR", gw.lastData["currency"])
	assert.Equal(t, order.ReceiptTag, gw.lastData["receipt"])
}

func TestCreateOrder_ReceiptsAreUnique(t *testing.T) {
	gw := &fakeGateway{resp: map[string]interface{}{"id": "order_xyz", "status": "created"}}
	svc := services.NewPaymentService(gw, "testsecret", "INR")

	a, err := svc.CreateOrder(context.Background(), 100)
	assert.NoError(t, err)
	b, err := svc.CreateOrder(context.Background(), 100)
	assert.NoError(t, err)
	assert.NotEqual(t, a.ReceiptTag, b.ReceiptTag)
}

func TestCreateOrder_InvalidPrice(t *testing.T) {
	for _, price := range []float64{-1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		gw := &fakeGateway{resp: map[string]interface{}{"id": "order_xyz"}}
		svc := services.NewPaymentService(gw, "testsecret", "INR")

		_, err := svc.CreateOrder(context.Background(), price)
		assert.ErrorIs(t, err, services.ErrInvalidInput, "price %v", price)
		assert.Equal(t, 0, gw.calls, "gateway must not be called for price %v", price)
	}
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	svc := services.NewPaymentService(gw, "testsecret", "INR")

	_, err := svc.CreateOrder(context.Background(), 100)
	assert.ErrorIs(t, err, services.ErrGateway)
}

func TestCreateOrder_MissingOrderID(t *testing.T) {
	gw := &fakeGateway{resp: map[string]interface{}{"status": "created"}}
	svc := services.NewPaymentService(gw, "testsecret", "INR")

	_, err := svc.CreateOrder(context.Background(), 100)
	assert.ErrorIs(t, err, services.ErrGateway)
}

func TestSignature_KnownVector(t *testing.T) {
	// HMAC-SHA256("testsecret", "order_A|pay_B")
	want := "809dd46ab0718d04b9007f9351e823bef552fc419186f0524cd1e884f54581be"
	assert.Equal(t, want, services.Signature("testsecret", "order_A", "pay_B"))
}

func TestVerifyPayment_Match(t *testing.T) {
	svc := services.NewPaymentService(nil, "testsecret", "INR")
	sig := services.Signature("testsecret", "order_A", "pay_B")

	ok, err := svc.VerifyPayment(services.VerificationRequest{
		OrderID: "order_A", PaymentID: "pay_B", ClientSignature: sig,
	})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPayment_UppercaseHexAccepted(t *testing.T) {
	svc := services.NewPaymentService(nil, "testsecret", "INR")
	sig := strings.ToUpper(services.Signature("testsecret", "order_A", "pay_B"))

	ok, err := svc.VerifyPayment(services.VerificationRequest{
		OrderID: "order_A", PaymentID: "pay_B", ClientSignature: sig,
	})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPayment_Mismatch(t *testing.T) {
	svc := services.NewPaymentService(nil, "testsecret", "INR")
	sig := services.Signature("testsecret", "order_A", "pay_B")

	// Flip the last hex digit.
	last := sig[len(sig)-1]
	flipped := byte('0')
	if last == '0' {
		flipped = '1'
	}
	tampered := sig[:len(sig)-1] + string(flipped)

	ok, err := svc.VerifyPayment(services.VerificationRequest{
		OrderID: "order_A", PaymentID: "pay_B", ClientSignature: tampered,
	})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPayment_MalformedSignatureRejected(t *testing.T) {
	svc := services.NewPaymentService(nil, "testsecret", "INR")

	for _, sig := range []string{
		strings.Repeat("z", 64), // not hex
		"abcd",                  // wrong length
		services.Signature("testsecret", "order_A", "pay_B") + "00",
	} {
		ok, err := svc.VerifyPayment(services.VerificationRequest{
			OrderID: "order_A", PaymentID: "pay_B", ClientSignature: sig,
		})
		assert.NoError(t, err, "signature %q", sig)
		assert.False(t, ok, "signature %q", sig)
	}
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	svc := services.NewPaymentService(nil, "testsecret", "INR")

	cases := []services.VerificationRequest{
		{PaymentID: "pay_B", ClientSignature: "aa"},
		{OrderID: "order_A", ClientSignature: "aa"},
		{OrderID: "order_A", PaymentID: "pay_B"},
		{},
	}
	for _, req := range cases {
		_, err := svc.VerifyPayment(req)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	}
}

func TestVerifyPayment_NoSecret(t *testing.T) {
	svc := services.NewPaymentService(nil, "", "INR")

	_, err := svc.VerifyPayment(services.VerificationRequest{
		OrderID: "order_A", PaymentID: "pay_B", ClientSignature: "aa",
	})
	assert.ErrorIs(t, err, services.ErrMisconfigured)
}
