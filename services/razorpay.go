package services

import (
	"context"

	"github.com/razorpay/razorpay-go"
)

// RazorpayGateway implements OrderGateway using the Razorpay SDK.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder creates a new order in Razorpay. The SDK call is synchronous;
// if the caller's context is already cancelled the result is simply
// discarded by the caller.
func (g *RazorpayGateway) CreateOrder(_ context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	return g.client.Order.Create(data, nil)
}
