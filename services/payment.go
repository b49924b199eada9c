package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Payment error taxonomy. Controllers match these with errors.Is and map
// them to HTTP responses; a failed signature check is NOT an error (see
// VerifyPayment).
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMisconfigured = errors.New("payment secret not configured")
	ErrGateway       = errors.New("payment gateway error")
)

// OrderGateway creates orders at the payment gateway. The map shapes follow
// the Razorpay SDK's request/response contract.
type OrderGateway interface {
	CreateOrder(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
}

// OrderHandle is the gateway order returned to the checkout frontend.
type OrderHandle struct {
	ID               string
	AmountMinorUnits int64
	CurrencyCode     string
	ReceiptTag       string
	Status           string
}

// VerificationRequest is the (order, payment, signature) triple submitted by
// the client after checkout.
type VerificationRequest struct {
	OrderID         string
	PaymentID       string
	ClientSignature string
}

// PaymentService owns order creation and payment-signature verification.
// It holds only read-only configuration and is safe for concurrent use.
type PaymentService struct {
	gateway  OrderGateway
	secret   string
	currency string
}

func NewPaymentService(gateway OrderGateway, secret, currency string) *PaymentService {
	return &PaymentService{gateway: gateway, secret: secret, currency: currency}
}

// ToMinorUnits converts a major-unit price (rupees) to the gateway's minor
// units (paise), rounding half away from zero. The minor-unit amount sent to
// the gateway is always derived here; caller-supplied minor units are never
// trusted.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateOrder validates the quoted price, converts it to minor units and
// requests an order from the gateway. The price must be a finite,
// non-negative number.
func (s *PaymentService) CreateOrder(ctx context.Context, price float64) (*OrderHandle, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number", ErrInvalidInput)
	}

	receipt := "receipt_" + uuid.NewString()
	amount := ToMinorUnits(price)

	body, err := s.gateway.CreateOrder(ctx, map[string]interface{}{
		"amount":   amount,
		"currency": s.currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("%w: response missing order id", ErrGateway)
	}
	status, _ := body["status"].(string)

	return &OrderHandle{
		ID:               id,
		AmountMinorUnits: amount,
		CurrencyCode:     s.currency,
		ReceiptTag:       receipt,
		Status:           status,
	}, nil
}

// Signature computes the lowercase hex HMAC-SHA256 of "orderID|paymentID"
// under the given secret. This is the signature Razorpay attaches to a
// completed checkout.
func Signature(secret, orderID, paymentID string) string {
	return hex.EncodeToString(signatureBytes(secret, orderID, paymentID))
}

func signatureBytes(secret, orderID, paymentID string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return mac.Sum(nil)
}

// VerifyPayment recomputes the expected checkout signature and compares it
// against the client-submitted one in constant time. It returns (false, nil)
// for a well-formed request whose signature simply does not match; errors
// are reserved for malformed requests and missing configuration.
func (s *PaymentService) VerifyPayment(req VerificationRequest) (bool, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.ClientSignature == "" {
		return false, fmt.Errorf("%w: order id, payment id and signature are required", ErrInvalidInput)
	}
	if s.secret == "" {
		return false, ErrMisconfigured
	}

	expected := signatureBytes(s.secret, req.OrderID, req.PaymentID)

	submitted, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(req.ClientSignature)))
	if err != nil || len(submitted) != len(expected) {
		// Not valid hex of the right length; rejected without saying which.
		return false, nil
	}

	// hmac.Equal runs in constant time regardless of where the inputs differ.
	return hmac.Equal(expected, submitted), nil
}
