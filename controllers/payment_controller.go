package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentController is the HTTP boundary of the payment core. All failures
// are converted to the JSON shapes the checkout frontend expects; no gateway
// or configuration detail ever reaches a response body.
type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type createOrderRequest struct {
	// The storefront sends "price"; "amount" is the historical field name
	// and is treated as equivalent.
	Price  *float64 `json:"price"`
	Amount *float64 `json:"amount"`
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// CreateOrder handles POST /api/payment/create-order.
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	price := req.Price
	if price == nil {
		price = req.Amount
	}
	if price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	order, err := pc.Payments.CreateOrder(c.Request.Context(), *price)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price"})
			return
		}
		zap.L().Error("Order creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       order.ID,
		"amount":   order.AmountMinorUnits,
		"currency": order.CurrencyCode,
		"receipt":  order.ReceiptTag,
		"status":   order.Status,
	})
}

// VerifyPayment handles POST /api/payment/verify. A rejected signature is a
// normal negative result (400 with the legacy message), distinct from a
// malformed request or a server-side misconfiguration.
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	var missing []string
	if req.RazorpayOrderID == "" {
		missing = append(missing, "razorpay_order_id")
	}
	if req.RazorpayPaymentID == "" {
		missing = append(missing, "razorpay_payment_id")
	}
	if req.RazorpaySignature == "" {
		missing = append(missing, "razorpay_signature")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	verified, err := pc.Payments.VerifyPayment(services.VerificationRequest{
		OrderID:         req.RazorpayOrderID,
		PaymentID:       req.RazorpayPaymentID,
		ClientSignature: req.RazorpaySignature,
	})
	if err != nil {
		if errors.Is(err, services.ErrMisconfigured) {
			zap.L().Error("Payment verification misconfigured", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Payment verification unavailable"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if !verified {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid signature sent!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified successfully"})
}
